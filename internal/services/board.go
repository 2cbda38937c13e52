package services

import (
	"context"
	"time"

	"github.com/VidsSkids/epitrello-backend/internal/data/repos"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

// BoardService owns the column→card part of the board hierarchy. Each mutation
// loads the project, checks write permission, applies the structural change in
// memory and persists the whole aggregate back.
type BoardService interface {
	CreateColumn(ctx context.Context, projectID, name string) (*project.Column, error)
	RenameColumn(ctx context.Context, projectID, columnID, name string) (*project.Column, error)
	DeleteColumn(ctx context.Context, projectID, columnID string) error
	ReorderColumn(ctx context.Context, projectID, columnID string, newPosition int) ([]project.Column, error)

	CreateCard(ctx context.Context, projectID, columnID, title string) (*project.Card, error)
	GetCard(ctx context.Context, projectID, columnID, cardID string) (*project.Card, error)
	UpdateCard(ctx context.Context, projectID, columnID, cardID string, patch project.CardPatch) (*project.Card, error)
	DeleteCard(ctx context.Context, projectID, columnID, cardID string) error
	ToggleCardDone(ctx context.Context, projectID, columnID, cardID string) (*project.Card, error)
	ReorderCard(ctx context.Context, projectID, columnID, cardID string, newIndex int, newColumnID string) error
}

type boardService struct {
	log   *logger.Logger
	store repos.ProjectStore
}

func NewBoardService(baseLog *logger.Logger, store repos.ProjectStore) BoardService {
	return &boardService{
		log:   baseLog.With("service", "BoardService"),
		store: store,
	}
}

// loadForWrite loads the aggregate and checks the caller may mutate the board.
func (s *boardService) loadForWrite(ctx context.Context, projectID, op string) (*project.Project, error) {
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

func (s *boardService) CreateColumn(ctx context.Context, projectID, name string) (*project.Column, error) {
	const op = "BoardService.CreateColumn"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	col := p.AddColumn(name, time.Now().UTC())
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return col, nil
}

func (s *boardService) RenameColumn(ctx context.Context, projectID, columnID, name string) (*project.Column, error) {
	const op = "BoardService.RenameColumn"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	col, err := p.RenameColumn(columnID, name)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return col, nil
}

func (s *boardService) DeleteColumn(ctx context.Context, projectID, columnID string) error {
	const op = "BoardService.DeleteColumn"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return err
	}
	p.DeleteColumn(columnID)
	return s.store.Save(ctx, p)
}

func (s *boardService) ReorderColumn(ctx context.Context, projectID, columnID string, newPosition int) ([]project.Column, error) {
	const op = "BoardService.ReorderColumn"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	if err := p.ReorderColumn(columnID, newPosition); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return p.Columns, nil
}

func (s *boardService) CreateCard(ctx context.Context, projectID, columnID, title string) (*project.Card, error) {
	const op = "BoardService.CreateCard"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	card, err := p.AddCard(columnID, title, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *boardService) GetCard(ctx context.Context, projectID, columnID, cardID string) (*project.Card, error) {
	const op = "BoardService.GetCard"
	rd, err := caller(ctx, op)
	if err != nil {
		return nil, err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(p, rd.UserID, project.ActionRead, op); err != nil {
		return nil, err
	}
	return p.CardIn(columnID, cardID)
}

func (s *boardService) UpdateCard(ctx context.Context, projectID, columnID, cardID string, patch project.CardPatch) (*project.Card, error) {
	const op = "BoardService.UpdateCard"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	card, err := p.UpdateCard(columnID, cardID, patch)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *boardService) DeleteCard(ctx context.Context, projectID, columnID, cardID string) error {
	const op = "BoardService.DeleteCard"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return err
	}
	if err := p.DeleteCard(columnID, cardID); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *boardService) ToggleCardDone(ctx context.Context, projectID, columnID, cardID string) (*project.Card, error) {
	const op = "BoardService.ToggleCardDone"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return nil, err
	}
	card, err := p.ToggleCardDone(columnID, cardID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *boardService) ReorderCard(ctx context.Context, projectID, columnID, cardID string, newIndex int, newColumnID string) error {
	const op = "BoardService.ReorderCard"
	p, err := s.loadForWrite(ctx, projectID, op)
	if err != nil {
		return err
	}
	if err := p.MoveCard(columnID, cardID, newIndex, newColumnID); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}
