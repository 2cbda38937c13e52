package services

import (
	"context"
	"time"

	"github.com/VidsSkids/epitrello-backend/internal/data/repos"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

// TagService is the tag registry. Deleting a tag sweeps the reference out of
// every card before the single aggregate save, so no reader ever observes a
// deleted tag still attached.
type TagService interface {
	Create(ctx context.Context, projectID, name, color string) (*project.Tag, error)
	Update(ctx context.Context, projectID, tagID string, patch project.TagPatch) (*project.Tag, error)
	Delete(ctx context.Context, projectID, tagID string) error
	Assign(ctx context.Context, projectID, cardID, tagID string) error
	Unassign(ctx context.Context, projectID, cardID, tagID string) error
}

type tagService struct {
	log   *logger.Logger
	store repos.ProjectStore
}

func NewTagService(baseLog *logger.Logger, store repos.ProjectStore) TagService {
	return &tagService{
		log:   baseLog.With("service", "TagService"),
		store: store,
	}
}

func (s *tagService) loadForWrite(ctx context.Context, projectID, op string) (*project.Project, error) {
	rd, err := caller(ctx, op)
	if err != nil {
		return nil, err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(p, rd.UserID, project.ActionWrite, op); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *tagService) Create(ctx context.Context, projectID, name, color string) (*project.Tag, error) {
	const op = "TagService.Create"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	tag, err := p.AddTag(name, color, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Update(ctx context.Context, projectID, tagID string, patch project.TagPatch) (*project.Tag, error) {
	const op = "TagService.Update"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	tag, err := p.UpdateTag(tagID, patch)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, projectID, tagID string) error {
	const op = "TagService.Delete"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return err
	}
	p.DeleteTag(tagID)
	return s.store.Save(ctx, p)
}

func (s *tagService) Assign(ctx context.Context, projectID, cardID, tagID string) error {
	const op = "TagService.Assign"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return err
	}
	if err := p.AssignTag(cardID, tagID); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *tagService) Unassign(ctx context.Context, projectID, cardID, tagID string) error {
	const op = "TagService.Unassign"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return err
	}
	if err := p.UnassignTag(cardID, tagID); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}
