package services

import (
	"context"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/platform/ctxutil"
)

// caller extracts the authenticated user from the request context. Every core
// operation authorizes against an already-resolved caller id; authentication
// happened in the middleware.
func caller(ctx context.Context, op string) (*ctxutil.RequestData, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == "" {
		return nil, aggregates.NewError(aggregates.CodeForbidden, op, "no authenticated caller", nil)
	}
	return rd, nil
}

// requireRole checks the caller's role in the project against the role policy.
func requireRole(p *project.Project, userID string, action project.Action, op string) error {
	if !p.RoleOf(userID).Permits(action) {
		return aggregates.NewError(aggregates.CodeForbidden, op, "you do not have the required permissions", nil)
	}
	return nil
}
