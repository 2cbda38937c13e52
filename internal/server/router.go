package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/VidsSkids/epitrello-backend/internal/handlers"
	"github.com/VidsSkids/epitrello-backend/internal/middleware"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *middleware.AuthMiddleware

	AuthHandler      *handlers.AuthHandler
	UserHandler      *handlers.UserHandler
	ProjectHandler   *handlers.ProjectHandler
	ColumnHandler    *handlers.ColumnHandler
	CardHandler      *handlers.CardHandler
	ChecklistHandler *handlers.ChecklistHandler
	TagHandler       *handlers.TagHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("epitrello"))
	r.Use(middleware.AttachTraceContext())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(cfg.Log))

	r.GET("/healthcheck", handlers.HealthCheck)

	if cfg.AuthHandler != nil {
		r.POST("/register", cfg.AuthHandler.Register)
		r.POST("/login", cfg.AuthHandler.Login)
	}

	protected := r.Group("/")
	if cfg.AuthMiddleware != nil {
		protected.Use(cfg.AuthMiddleware.RequireAuth())
	}

	if cfg.AuthHandler != nil {
		protected.POST("/refresh", cfg.AuthHandler.Refresh)
		protected.POST("/logout", cfg.AuthHandler.Logout)
	}

	if cfg.UserHandler != nil {
		protected.GET("/user", cfg.UserHandler.GetMe)
		protected.DELETE("/user", cfg.UserHandler.DeleteMe)
	}

	api := protected.Group("/api")

	if cfg.ProjectHandler != nil {
		projects := api.Group("/projects")
		projects.POST("", cfg.ProjectHandler.Create)
		projects.GET("", cfg.ProjectHandler.List)
		projects.GET("/invitations", cfg.ProjectHandler.Invitations)
		projects.GET("/sent", cfg.ProjectHandler.SentInvitations)
		projects.GET("/:id", cfg.ProjectHandler.Get)
		projects.DELETE("/:id", cfg.ProjectHandler.Delete)
		projects.POST("/:id/invite", cfg.ProjectHandler.Invite)
		projects.POST("/:id/accept", cfg.ProjectHandler.Accept)
		projects.POST("/:id/decline", cfg.ProjectHandler.Decline)
		projects.POST("/:id/revokeInvitation", cfg.ProjectHandler.RevokeInvitation)
		projects.POST("/:id/leave", cfg.ProjectHandler.Leave)
		projects.POST("/:id/remove/:memberId", cfg.ProjectHandler.RemoveMember)
		projects.PATCH("/:id/members/:memberId/role", cfg.ProjectHandler.ChangeRole)
	}

	if cfg.ColumnHandler != nil {
		columns := api.Group("/projects/:id/columns")
		columns.POST("", cfg.ColumnHandler.Create)
		columns.PATCH("/:columnId", cfg.ColumnHandler.Rename)
		columns.PATCH("/:columnId/reorder", cfg.ColumnHandler.Reorder)
		columns.DELETE("/:columnId", cfg.ColumnHandler.Delete)
	}

	if cfg.CardHandler != nil {
		cards := api.Group("/projects/:id/columns/:columnId/cards")
		cards.POST("", cfg.CardHandler.Create)
		cards.GET("/:cardId", cfg.CardHandler.Get)
		cards.PATCH("/:cardId", cfg.CardHandler.Update)
		cards.DELETE("/:cardId", cfg.CardHandler.Delete)
		cards.POST("/:cardId/toggleDone", cfg.CardHandler.ToggleDone)
		cards.PATCH("/:cardId/reorder", cfg.CardHandler.Reorder)
	}

	if cfg.ChecklistHandler != nil {
		checklists := api.Group("/projects/:id/columns/:columnId/cards/:cardId/checklists")
		checklists.POST("", cfg.ChecklistHandler.Create)
		checklists.PATCH("/:checklistId", cfg.ChecklistHandler.Rename)
		checklists.DELETE("/:checklistId", cfg.ChecklistHandler.Delete)
		checklists.POST("/:checklistId/items", cfg.ChecklistHandler.CreateItem)
		checklists.PATCH("/:checklistId/items/:itemId", cfg.ChecklistHandler.UpdateItem)
		checklists.DELETE("/:checklistId/items/:itemId", cfg.ChecklistHandler.DeleteItem)
	}

	if cfg.TagHandler != nil {
		tags := api.Group("/projects/:id/tags")
		tags.POST("", cfg.TagHandler.Create)
		tags.PATCH("/:tagId", cfg.TagHandler.Update)
		tags.DELETE("/:tagId", cfg.TagHandler.Delete)
		tags.POST("/attach/:tagId/:cardId", cfg.TagHandler.Attach)
		tags.POST("/detach/:tagId/:cardId", cfg.TagHandler.Detach)
	}

	return r
}
