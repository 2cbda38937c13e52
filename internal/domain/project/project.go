package project

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

// Project is the aggregate root. Columns, tags, members and invitations are
// embedded in one document; array order is display order.
type Project struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	OwnerID     string       `json:"ownerId"`
	Members     []Member     `json:"members"`
	Invitations []Invitation `json:"invitations"`
	Columns     []Column     `json:"columns"`
	Tags        []Tag        `json:"tags"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Version is maintained by the store for compare-and-set saves. It is not
	// part of the document payload.
	Version int `json:"-"`
}

type Member struct {
	UserID   string `json:"userId"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role"`
}

// Invitation is keyed by invitee name: the invitee may not be resolvable to an
// id at invite time in all flows.
type Invitation struct {
	Name      string    `json:"name"`
	InvitedBy string    `json:"invitedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type Column struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cards     []Card    `json:"cards"`
	CreatedAt time.Time `json:"createdAt"`
}

type Card struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	IsDone      bool        `json:"isDone"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
	StartDate   *time.Time  `json:"startDate,omitempty"`
	AssignedTo  []string    `json:"assignedTo"`
	TagIDs      []string    `json:"tagIds"`
	Checklists  []Checklist `json:"checklists"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type Checklist struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

type ChecklistItem struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	IsChecked  bool       `json:"isChecked"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	AssignedTo []string   `json:"assignedTo"`
}

type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates a project whose only member is the owner.
func New(name, ownerID, ownerName string, now time.Time) (*Project, error) {
	const op = "Project.Create"
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, aggregates.NewError(aggregates.CodeValidation, op, "project name is required", nil)
	}
	if strings.TrimSpace(ownerID) == "" {
		return nil, aggregates.NewError(aggregates.CodeValidation, op, "owner id is required", nil)
	}
	return &Project{
		ID:      uuid.NewString(),
		Name:    name,
		OwnerID: ownerID,
		Members: []Member{
			{UserID: ownerID, Username: ownerName, Role: RoleOwner},
		},
		Invitations: []Invitation{},
		Columns:     []Column{},
		Tags:        []Tag{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// MemberByID returns the member entry for a user id, or nil.
func (p *Project) MemberByID(userID string) *Member {
	for i := range p.Members {
		if p.Members[i].UserID == userID {
			return &p.Members[i]
		}
	}
	return nil
}

// RoleOf returns the caller's role, or the empty role when not a member.
func (p *Project) RoleOf(userID string) Role {
	if m := p.MemberByID(userID); m != nil {
		return m.Role
	}
	return ""
}

func (p *Project) invitationIndex(name string) int {
	for i := range p.Invitations {
		if p.Invitations[i].Name == name {
			return i
		}
	}
	return -1
}
