package services

import (
	"context"
	"time"

	"github.com/VidsSkids/epitrello-backend/internal/data/repos"
	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

// ProjectSummary is the shape returned for project creation and listings.
type ProjectSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InvitationView is a pending invitation as seen by the invitee.
type InvitationView struct {
	ProjectID   string    `json:"projectId"`
	ProjectName string    `json:"projectName"`
	InvitedBy   string    `json:"invitedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SentInvitationView is a pending invitation as seen by the inviter.
type SentInvitationView struct {
	ProjectID   string    `json:"projectId"`
	ProjectName string    `json:"projectName"`
	InviteeName string    `json:"inviteeName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectService is the membership ledger: project lifecycle, invitations and
// role management. Every mutation is one load→mutate→save cycle on the
// aggregate document.
type ProjectService interface {
	Create(ctx context.Context, name string) (*ProjectSummary, error)
	Get(ctx context.Context, projectID string) (*project.Project, error)
	ListForUser(ctx context.Context) ([]*project.Project, error)
	InvitationsForUser(ctx context.Context) ([]InvitationView, error)
	SentInvitations(ctx context.Context) ([]SentInvitationView, error)
	Invite(ctx context.Context, projectID, inviteeName string) error
	Accept(ctx context.Context, projectID string) error
	Decline(ctx context.Context, projectID string) error
	Revoke(ctx context.Context, projectID, inviteeName string) error
	ChangeRole(ctx context.Context, projectID, targetUserID, newRole string) error
	RemoveMember(ctx context.Context, projectID, targetUserID string) error
	Leave(ctx context.Context, projectID string) error
	Delete(ctx context.Context, projectID string) error
}

type projectService struct {
	log      *logger.Logger
	store    repos.ProjectStore
	userRepo repos.UserRepo
}

func NewProjectService(baseLog *logger.Logger, store repos.ProjectStore, userRepo repos.UserRepo) ProjectService {
	return &projectService{
		log:      baseLog.With("service", "ProjectService"),
		store:    store,
		userRepo: userRepo,
	}
}

func (s *projectService) Create(ctx context.Context, name string) (*ProjectSummary, error) {
	const op = "ProjectService.Create"
	rd, err := caller(ctx, op)
	if err != nil {
		return nil, err
	}
	p, err := project.New(name, rd.UserID, rd.UserName, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("project created", "project_id", p.ID, "owner_id", p.OwnerID)
	return &ProjectSummary{
		ID:        p.ID,
		Name:      p.Name,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func (s *projectService) Get(ctx context.Context, projectID string) (*project.Project, error) {
	const op = "ProjectService.Get"
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
	return p, nil
}

func (s *projectService) ListForUser(ctx context.Context) ([]*project.Project, error) {
	const op = "ProjectService.ListForUser"
	rd, err := caller(ctx, op)
	if err != nil {
		return nil, err
	}
	return s.store.ListByMember(ctx, rd.UserID)
}

func (s *projectService) InvitationsForUser(ctx context.Context) ([]InvitationView, error) {
	const op = "ProjectService.InvitationsForUser"
	rd, err := caller(ctx, op)
	if err != nil {
		return nil, err
	}
	u, err := s.userRepo.GetByPublicID(ctx, rd.UserID)
	if err != nil {
		return nil, err
	}
	projects, err := s.store.ListByInviteeName(ctx, u.Name)
	if err != nil {
		return nil, err
	}
	out := make([]InvitationView, 0, len(projects))
	for _, p := range projects {
		for _, inv := range p.Invitations {
			if inv.Name == u.Name {
				out = append(out, InvitationView{
					ProjectID:   p.ID,
					ProjectName: p.Name,
					InvitedBy:   inv.InvitedBy,
					CreatedAt:   inv.CreatedAt,
				})
				break
			}
		}
	}
	return out, nil
}

func (s *projectService) SentInvitations(ctx context.Context) ([]SentInvitationView, error) {
	const op = "ProjectService.SentInvitations"
	rd, err := caller(ctx, op)
	if err != nil {
		return nil, err
	}
	projects, err := s.store.ListByInviter(ctx, rd.UserID)
	if err != nil {
		return nil, err
	}
	out := []SentInvitationView{}
	for _, p := range projects {
		for _, inv := range p.Invitations {
			if inv.InvitedBy == rd.UserID {
				out = append(out, SentInvitationView{
					ProjectID:   p.ID,
					ProjectName: p.Name,
					InviteeName: inv.Name,
					CreatedAt:   inv.CreatedAt,
				})
			}
		}
	}
	return out, nil
}

func (s *projectService) Invite(ctx context.Context, projectID, inviteeName string) error {
	const op = "ProjectService.Invite"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := requireRole(p, rd.UserID, project.ActionInvite, op); err != nil {
		return err
	}
	invitee, err := s.userRepo.GetByName(ctx, inviteeName)
	if err != nil {
		if aggregates.IsCode(err, aggregates.CodeNotFound) {
			return aggregates.NewError(aggregates.CodeNotFound, op, "invited user not found", err)
		}
		return err
	}
	if err := p.AddInvitation(inviteeName, invitee.PublicID, rd.UserID, time.Now().UTC()); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *projectService) Accept(ctx context.Context, projectID string) error {
	const op = "ProjectService.Accept"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	u, err := s.userRepo.GetByPublicID(ctx, rd.UserID)
	if err != nil {
		return err
	}
	already, err := p.AcceptInvitation(u.PublicID, u.Name)
	if err != nil {
		return err
	}
	if already {
		s.log.Debug("invitation consumed by existing member", "project_id", p.ID, "user_id", u.PublicID)
	}
	return s.store.Save(ctx, p)
}

func (s *projectService) Decline(ctx context.Context, projectID string) error {
	const op = "ProjectService.Decline"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	u, err := s.userRepo.GetByPublicID(ctx, rd.UserID)
	if err != nil {
		return err
	}
	if err := p.RemoveInvitation(u.Name); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *projectService) Revoke(ctx context.Context, projectID, inviteeName string) error {
	const op = "ProjectService.Revoke"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := requireRole(p, rd.UserID, project.ActionInvite, op); err != nil {
		return err
	}
	if err := p.RemoveInvitation(inviteeName); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *projectService) ChangeRole(ctx context.Context, projectID, targetUserID, newRole string) error {
	const op = "ProjectService.ChangeRole"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	role, ok := project.ParseRole(newRole)
	if !ok {
		return aggregates.NewError(aggregates.CodeValidation, op, "role must be one of: Reader, Contributer, Administrator", nil)
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := p.ChangeRole(rd.UserID, targetUserID, role); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *projectService) RemoveMember(ctx context.Context, projectID, targetUserID string) error {
	const op = "ProjectService.RemoveMember"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := p.RemoveMember(rd.UserID, targetUserID); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *projectService) Leave(ctx context.Context, projectID string) error {
	const op = "ProjectService.Leave"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := p.Leave(rd.UserID); err != nil {
		return err
	}
	return s.store.Save(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, projectID string) error {
	const op = "ProjectService.Delete"
	rd, err := caller(ctx, op)
	if err != nil {
		return err
	}
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if p.OwnerID != rd.UserID {
		return aggregates.NewError(aggregates.CodeForbidden, op, "only the project owner can delete the project", nil)
	}
	if err := s.store.Delete(ctx, p.ID); err != nil {
		return err
	}
	s.log.Info("project deleted", "project_id", p.ID)
	return nil
}
