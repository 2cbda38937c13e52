package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/VidsSkids/epitrello-backend/internal/platform/ctxutil"
	"github.com/VidsSkids/epitrello-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	u, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondCreated(c, gin.H{"id": u.PublicID, "name": u.Name})
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	access, refresh, err := h.authService.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"expires_in":    int(h.authService.AccessTTL().Seconds()),
	})
}

// POST /refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx, ok := h.contextWithRefreshToken(c)
	if !ok {
		return
	}
	access, refresh, err := h.authService.Refresh(ctx)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"expires_in":    int(h.authService.AccessTTL().Seconds()),
	})
}

// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, ok := h.contextWithRefreshToken(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(ctx); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "logged out successfully"})
}

// contextWithRefreshToken copies the refresh token from the request body into
// the caller's request data so the service never touches the transport.
func (h *AuthHandler) contextWithRefreshToken(c *gin.Context) (ctx context.Context, ok bool) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		RespondBadRequest(c, "refresh_token is required")
		return nil, false
	}
	ctx = c.Request.Context()
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		rd = &ctxutil.RequestData{}
	}
	clone := *rd
	clone.RefreshToken = req.RefreshToken
	return ctxutil.WithRequestData(ctx, &clone), true
}
