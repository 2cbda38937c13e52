package app

import (
	"gorm.io/gorm"

	"github.com/VidsSkids/epitrello-backend/internal/data/repos"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

type Repos struct {
	User     repos.UserRepo
	Projects repos.ProjectStore
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:     repos.NewUserRepo(db, log),
		Projects: repos.NewProjectStore(db, log),
	}
}
