package services

import (
	"context"

	"github.com/VidsSkids/epitrello-backend/internal/data/repos"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

// ChecklistService owns the checklist→item leaves of the board hierarchy. The
// owning card is located by scanning all columns; the aggregate is saved whole
// after every mutation.
type ChecklistService interface {
	Create(ctx context.Context, projectID, cardID, title string) (*project.Checklist, error)
	Rename(ctx context.Context, projectID, cardID, checklistID, title string) (*project.Checklist, error)
	Delete(ctx context.Context, projectID, cardID, checklistID string) error

	CreateItem(ctx context.Context, projectID, cardID, checklistID, content string) (*project.ChecklistItem, error)
	UpdateItem(ctx context.Context, projectID, cardID, checklistID, itemID string, patch project.ChecklistItemPatch) (*project.ChecklistItem, error)
	DeleteItem(ctx context.Context, projectID, cardID, checklistID, itemID string) error
}

type checklistService struct {
	log   *logger.Logger
	store repos.ProjectStore
}

func NewChecklistService(baseLog *logger.Logger, store repos.ProjectStore) ChecklistService {
	return &checklistService{
		log:   baseLog.With("service", "ChecklistService"),
		store: store,
	}
}

func (s *checklistService) loadForWrite(ctx context.Context, projectID, op string) (*project.Project, error) {
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

func (s *checklistService) Create(ctx context.Context, projectID, cardID, title string) (*project.Checklist, error) {
	const op = "ChecklistService.Create"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	cl, err := p.AddChecklist(cardID, title)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return cl, nil
}

func (s *checklistService) Rename(ctx context.Context, projectID, cardID, checklistID, title string) (*project.Checklist, error) {
	const op = "ChecklistService.Rename"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	cl, err := p.RenameChecklist(cardID, checklistID, title)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return cl, nil
}

func (s *checklistService) Delete(ctx context.Context, projectID, cardID, checklistID string) error {
	const op = "ChecklistService.Delete"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return err
	}
	if err := p.DeleteChecklist(cardID, checklistID); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *checklistService) CreateItem(ctx context.Context, projectID, cardID, checklistID, content string) (*project.ChecklistItem, error) {
	const op = "ChecklistService.CreateItem"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	item, err := p.AddChecklistItem(cardID, checklistID, content)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *checklistService) UpdateItem(ctx context.Context, projectID, cardID, checklistID, itemID string, patch project.ChecklistItemPatch) (*project.ChecklistItem, error) {
	const op = "ChecklistService.UpdateItem"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	item, err := p.UpdateChecklistItem(cardID, checklistID, itemID, patch)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *checklistService) DeleteItem(ctx context.Context, projectID, cardID, checklistID, itemID string) error {
	const op = "ChecklistService.DeleteItem"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return err
	}
	if err := p.DeleteChecklistItem(cardID, checklistID, itemID); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}
