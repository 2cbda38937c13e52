package project

import (
	"fmt"
	"time"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

// AddInvitation records a pending invitation for inviteeName. The caller has
// already resolved the invitee through the user directory and verified
// membership status; this guards the aggregate-local invariants.
func (p *Project) AddInvitation(inviteeName, inviteeID, invitedBy string, now time.Time) error {
	const op = "Project.Members.Invite"
	if p.MemberByID(inviteeID) != nil {
		return aggregates.NewError(aggregates.CodeConflict, op, "user already a member", nil)
	}
	if p.invitationIndex(inviteeName) >= 0 {
		return aggregates.NewError(aggregates.CodeConflict, op, "invitation already sent", nil)
	}
	p.Invitations = append(p.Invitations, Invitation{
		Name:      inviteeName,
		InvitedBy: invitedBy,
		CreatedAt: now,
	})
	return nil
}

// AcceptInvitation removes the invitation matching the user's name and adds the
// user as Reader. Accepting when already a member only consumes the invitation
// (race between two accepts must not duplicate members).
func (p *Project) AcceptInvitation(userID, username string) (alreadyMember bool, err error) {
	const op = "Project.Members.Accept"
	idx := p.invitationIndex(username)
	if idx < 0 {
		return false, aggregates.NewError(aggregates.CodeNotFound, op, "invitation not found", nil)
	}
	p.Invitations = append(p.Invitations[:idx], p.Invitations[idx+1:]...)
	if p.MemberByID(userID) != nil {
		return true, nil
	}
	p.Members = append(p.Members, Member{UserID: userID, Username: username, Role: RoleReader})
	return false, nil
}

// RemoveInvitation drops the invitation keyed by invitee name.
func (p *Project) RemoveInvitation(inviteeName string) error {
	const op = "Project.Members.RemoveInvitation"
	idx := p.invitationIndex(inviteeName)
	if idx < 0 {
		return aggregates.NewError(aggregates.CodeNotFound, op, "invitation not found", nil)
	}
	p.Invitations = append(p.Invitations[:idx], p.Invitations[idx+1:]...)
	return nil
}

// ChangeRole overwrites the target member's role. Ownership is not transferable
// through this path and the owner's own role is immutable; an administrator
// cannot demote a peer administrator.
func (p *Project) ChangeRole(changerID, targetUserID string, newRole Role) error {
	const op = "Project.Members.ChangeRole"
	if newRole == RoleOwner {
		return aggregates.NewError(aggregates.CodeValidation, op, "owner role cannot be assigned", nil)
	}
	changer := p.MemberByID(changerID)
	if changer == nil || !changer.Role.Permits(ActionManage) {
		return aggregates.NewError(aggregates.CodeForbidden, op, "not allowed to change roles", nil)
	}
	target := p.MemberByID(targetUserID)
	if target == nil {
		return aggregates.NewError(aggregates.CodeNotFound, op, "target member not found", nil)
	}
	if target.Role == RoleOwner {
		return aggregates.NewError(aggregates.CodeForbidden, op, "the owner's role cannot be changed", nil)
	}
	if changer.Role == RoleAdministrator && target.Role == RoleAdministrator && newRole != RoleAdministrator {
		return aggregates.NewError(aggregates.CodeForbidden, op, "administrator cannot demote another administrator", nil)
	}
	target.Role = newRole
	return nil
}

// RemoveMember deletes the target's member entry. The owner is un-removable and
// administrators cannot remove peer administrators.
func (p *Project) RemoveMember(removerID, targetUserID string) error {
	const op = "Project.Members.Remove"
	remover := p.MemberByID(removerID)
	if remover == nil || !remover.Role.Permits(ActionManage) {
		return aggregates.NewError(aggregates.CodeForbidden, op, "not allowed to remove members", nil)
	}
	idx := -1
	for i := range p.Members {
		if p.Members[i].UserID == targetUserID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return aggregates.NewError(aggregates.CodeNotFound, op, "target member not found", nil)
	}
	target := p.Members[idx]
	if target.Role == RoleOwner {
		return aggregates.NewError(aggregates.CodeForbidden, op, "cannot remove the owner of the project", nil)
	}
	if remover.Role == RoleAdministrator && target.Role == RoleAdministrator {
		return aggregates.NewError(aggregates.CodeForbidden, op, "administrator cannot remove another administrator", nil)
	}
	p.Members = append(p.Members[:idx], p.Members[idx+1:]...)
	return nil
}

// Leave removes the caller's own member entry. The owner must transfer or
// delete the project instead.
func (p *Project) Leave(userID string) error {
	const op = "Project.Members.Leave"
	idx := -1
	for i := range p.Members {
		if p.Members[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return aggregates.NewError(aggregates.CodeNotFound, op, "you are not a member of this project", nil)
	}
	if p.Members[idx].Role == RoleOwner {
		return aggregates.NewError(aggregates.CodeForbidden, op, "owner cannot leave the project", nil)
	}
	p.Members = append(p.Members[:idx], p.Members[idx+1:]...)
	return nil
}

// CheckInvariants verifies the owner-uniqueness rule. Intended for tests and
// store-side sanity checks before a save.
func (p *Project) CheckInvariants() error {
	const op = "Project.Invariants"
	owners := 0
	seen := make(map[string]struct{}, len(p.Members))
	for _, m := range p.Members {
		if _, dup := seen[m.UserID]; dup {
			return aggregates.NewError(aggregates.CodeInternal, op, fmt.Sprintf("duplicate member %s", m.UserID), nil)
		}
		seen[m.UserID] = struct{}{}
		if m.Role == RoleOwner {
			owners++
			if m.UserID != p.OwnerID {
				return aggregates.NewError(aggregates.CodeInternal, op, "owner member does not match ownerId", nil)
			}
		}
	}
	if owners != 1 {
		return aggregates.NewError(aggregates.CodeInternal, op, fmt.Sprintf("expected exactly one owner, found %d", owners), nil)
	}
	return nil
}
