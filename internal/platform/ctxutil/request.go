package ctxutil

import "context"

type requestDataKey struct{}

// RequestData carries the authenticated caller through a request context.
// UserID is the user's public id; the core only authorizes against it.
type RequestData struct {
	UserID       string
	UserName     string
	TokenString  string
	RefreshToken string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey{})
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}
