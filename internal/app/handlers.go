package app

import (
	"github.com/VidsSkids/epitrello-backend/internal/handlers"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Project   *handlers.ProjectHandler
	Column    *handlers.ColumnHandler
	Card      *handlers.CardHandler
	Checklist *handlers.ChecklistHandler
	Tag       *handlers.TagHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(s.Auth),
		User:      handlers.NewUserHandler(s.User),
		Project:   handlers.NewProjectHandler(s.Project),
		Column:    handlers.NewColumnHandler(s.Board),
		Card:      handlers.NewCardHandler(s.Board),
		Checklist: handlers.NewChecklistHandler(s.Checklist),
		Tag:       handlers.NewTagHandler(s.Tag),
	}
}
