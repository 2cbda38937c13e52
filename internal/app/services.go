package app

import (
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
	"github.com/VidsSkids/epitrello-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	User      services.UserService
	Project   services.ProjectService
	Board     services.BoardService
	Checklist services.ChecklistService
	Tag       services.TagService
}

func wireServices(log *logger.Logger, cfg Config, r Repos, c Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:      services.NewAuthService(log, r.User, c.Tokens, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		User:      services.NewUserService(log, r.User),
		Project:   services.NewProjectService(log, r.Projects, r.User),
		Board:     services.NewBoardService(log, r.Projects),
		Checklist: services.NewChecklistService(log, r.Projects),
		Tag:       services.NewTagService(log, r.Projects),
	}
}
