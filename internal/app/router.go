package app

import (
	"github.com/gin-gonic/gin"

	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
	"github.com/VidsSkids/epitrello-backend/internal/server"
)

func wireRouter(log *logger.Logger, h Handlers, mw Middleware) *gin.Engine {
	log.Info("Wiring router...")
	return server.NewRouter(server.RouterConfig{
		Log:              log,
		AuthMiddleware:   mw.Auth,
		AuthHandler:      h.Auth,
		UserHandler:      h.User,
		ProjectHandler:   h.Project,
		ColumnHandler:    h.Column,
		CardHandler:      h.Card,
		ChecklistHandler: h.Checklist,
		TagHandler:       h.Tag,
	})
}
