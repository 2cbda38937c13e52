package services

import (
	"context"

	"github.com/VidsSkids/epitrello-backend/internal/data/repos"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

type UserService interface {
	GetMe(ctx context.Context) (*repos.User, error)
	DeleteMe(ctx context.Context) error
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (s *userService) GetMe(ctx context.Context) (*repos.User, error) {
	const op = "UserService.GetMe"
	rd, err := caller(ctx, op)
	if err != nil {
		return nil, err
	}
	return s.userRepo.GetByPublicID(ctx, rd.UserID)
}

func (s *userService) DeleteMe(ctx context.Context) error {
	const op = "UserService.DeleteMe"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, rd.UserID); err != nil {
		return err
	}
	s.log.Info("user deleted", "user_id", rd.UserID)
	return nil
}
