package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	storeredis "github.com/VidsSkids/epitrello-backend/internal/clients/redis"
	"github.com/VidsSkids/epitrello-backend/internal/data/repos"
	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
	"github.com/VidsSkids/epitrello-backend/internal/platform/ctxutil"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

// AuthService owns credentials and tokens. Access tokens are signed JWTs
// carrying the user's public id and name; refresh tokens are opaque and live
// in the token store until they expire or are revoked on logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*repos.User, error)
	Login(ctx context.Context, name, password string) (access string, refresh string, err error)
	Refresh(ctx context.Context) (access string, refresh string, err error)
	Logout(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	AccessTTL() time.Duration
}

type authService struct {
	log        *logger.Logger
	userRepo   repos.UserRepo
	tokens     storeredis.TokenStore
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	tokens storeredis.TokenStore,
	jwtSecret string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		log:        baseLog.With("service", "AuthService"),
		userRepo:   userRepo,
		tokens:     tokens,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *authService) AccessTTL() time.Duration { return s.accessTTL }

func (s *authService) Register(ctx context.Context, name, email, password string) (*repos.User, error) {
	const op = "AuthService.Register"
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || password == "" {
		return nil, aggregates.NewError(aggregates.CodeValidation, op, "name and password are required", nil)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, aggregates.NewError(aggregates.CodeInternal, op, "failed to hash password", err)
	}
	u := &repos.User{
		ID:       uuid.New(),
		PublicID: uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Provider: "local",
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if aggregates.IsCode(err, aggregates.CodeConflict) {
			return nil, aggregates.NewError(aggregates.CodeConflict, op, "username already taken", err)
		}
		return nil, err
	}
	s.log.Info("user registered", "user_id", u.PublicID)
	return u, nil
}

func (s *authService) Login(ctx context.Context, name, password string) (string, string, error) {
	const op = "AuthService.Login"
	u, err := s.userRepo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if aggregates.IsCode(err, aggregates.CodeNotFound) {
			return "", "", aggregates.NewError(aggregates.CodeForbidden, op, "invalid credentials", nil)
		}
		return "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", "", aggregates.NewError(aggregates.CodeForbidden, op, "invalid credentials", nil)
	}
	return s.issueTokens(ctx, u, op)
}

func (s *authService) Refresh(ctx context.Context) (string, string, error) {
	const op = "AuthService.Refresh"
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.RefreshToken == "" {
		return "", "", aggregates.NewError(aggregates.CodeForbidden, op, "refresh token required", nil)
	}
	userID, err := s.tokens.Resolve(ctx, rd.RefreshToken)
	if err != nil {
		return "", "", aggregates.NewError(aggregates.CodeForbidden, op, "refresh token unknown or expired", err)
	}
	u, err := s.userRepo.GetByPublicID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	// Rotate: the presented refresh token is single use.
	if err := s.tokens.Revoke(ctx, rd.RefreshToken); err != nil {
		s.log.Warn("failed to revoke rotated refresh token", "error", err)
	}
	return s.issueTokens(ctx, u, op)
}

func (s *authService) Logout(ctx context.Context) error {
	const op = "AuthService.Logout"
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.RefreshToken == "" {
		return aggregates.NewError(aggregates.CodeForbidden, op, "refresh token required", nil)
	}
	if err := s.tokens.Revoke(ctx, rd.RefreshToken); err != nil {
		return aggregates.NewError(aggregates.CodeInternal, op, "failed to revoke refresh token", err)
	}
	return nil
}

func (s *authService) issueTokens(ctx context.Context, u *repos.User, op string) (string, string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":   u.PublicID,
		"name": u.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", "", aggregates.NewError(aggregates.CodeInternal, op, "failed to sign access token", err)
	}
	refresh := uuid.NewString()
	if err := s.tokens.Put(ctx, refresh, u.PublicID, s.refreshTTL); err != nil {
		return "", "", aggregates.NewError(aggregates.CodeInternal, op, "failed to store refresh token", err)
	}
	return access, refresh, nil
}

// SetContextFromToken verifies the access token and attaches the caller's
// identity to the context. The middleware calls this once per request.
func (s *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	const op = "AuthService.SetContextFromToken"
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, aggregates.NewError(aggregates.CodeForbidden, op, "unexpected signing method", nil)
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return ctx, aggregates.NewError(aggregates.CodeForbidden, op, "invalid or expired token", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, aggregates.NewError(aggregates.CodeForbidden, op, "invalid token claims", nil)
	}
	userID, _ := claims["id"].(string)
	userName, _ := claims["name"].(string)
	if userID == "" {
		return ctx, aggregates.NewError(aggregates.CodeForbidden, op, "token missing subject", nil)
	}
	rd := &ctxutil.RequestData{
		UserID:      userID,
		UserName:    userName,
		TokenString: tokenString,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}
