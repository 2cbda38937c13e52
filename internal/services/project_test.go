package services

import (
	"testing"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
)

func wantCode(t *testing.T, err error, code aggregates.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if !aggregates.IsCode(err, code) {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

func newProjectService(t *testing.T) (ProjectService, *fakeProjectStore, *fakeUserRepo) {
	t.Helper()
	store := newFakeProjectStore()
	users := newFakeUserRepo()
	return NewProjectService(testLogger(t), store, users), store, users
}

func TestProjectCreateAndGet(t *testing.T) {
	t.Parallel()
	svc, _, users := newProjectService(t)
	users.add("owner-1", "alice")

	summary, err := svc.Create(ctxAs("owner-1", "alice"), "board")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if summary.OwnerID != "owner-1" || summary.Name != "board" {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	p, err := svc.Get(ctxAs("owner-1", "alice"), summary.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.RoleOf("owner-1") != project.RoleOwner {
		t.Fatalf("creator is not owner: %+v", p.Members)
	}

	_, err = svc.Get(ctxAs("stranger", "mallory"), summary.ID)
	wantCode(t, err, aggregates.CodeForbidden)
}

func TestProjectCreateRequiresCaller(t *testing.T) {
	t.Parallel()
	svc, _, _ := newProjectService(t)

	_, err := svc.Create(ctxAs("", ""), "board")
	wantCode(t, err, aggregates.CodeForbidden)
}

func TestInviteAcceptFlow(t *testing.T) {
	t.Parallel()
	svc, _, users := newProjectService(t)
	users.add("owner-1", "alice")
	users.add("user-2", "bob")

	summary, err := svc.Create(ctxAs("owner-1", "alice"), "board")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Invite(ctxAs("owner-1", "alice"), summary.ID, "bob"); err != nil {
		t.Fatalf("invite: %v", err)
	}
	err = svc.Invite(ctxAs("owner-1", "alice"), summary.ID, "bob")
	wantCode(t, err, aggregates.CodeConflict)

	err = svc.Invite(ctxAs("owner-1", "alice"), summary.ID, "ghost")
	wantCode(t, err, aggregates.CodeNotFound)

	views, err := svc.InvitationsForUser(ctxAs("user-2", "bob"))
	if err != nil {
		t.Fatalf("invitations: %v", err)
	}
	if len(views) != 1 || views[0].ProjectID != summary.ID || views[0].InvitedBy != "owner-1" {
		t.Fatalf("unexpected invitation views: %+v", views)
	}

	sent, err := svc.SentInvitations(ctxAs("owner-1", "alice"))
	if err != nil {
		t.Fatalf("sent: %v", err)
	}
	if len(sent) != 1 || sent[0].InviteeName != "bob" {
		t.Fatalf("unexpected sent views: %+v", sent)
	}

	if err := svc.Accept(ctxAs("user-2", "bob"), summary.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	p, err := svc.Get(ctxAs("user-2", "bob"), summary.ID)
	if err != nil {
		t.Fatalf("get after accept: %v", err)
	}
	if p.RoleOf("user-2") != project.RoleReader {
		t.Fatalf("expected Reader, got %q", p.RoleOf("user-2"))
	}
	if len(p.Invitations) != 0 {
		t.Fatalf("invitation not consumed: %+v", p.Invitations)
	}
}

func TestInviteRequiresPermission(t *testing.T) {
	t.Parallel()
	svc, _, users := newProjectService(t)
	users.add("owner-1", "alice")
	users.add("user-2", "bob")
	users.add("user-3", "carol")

	summary, _ := svc.Create(ctxAs("owner-1", "alice"), "board")
	if err := svc.Invite(ctxAs("owner-1", "alice"), summary.ID, "bob"); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if err := svc.Accept(ctxAs("user-2", "bob"), summary.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// A Reader may not invite.
	err := svc.Invite(ctxAs("user-2", "bob"), summary.ID, "carol")
	wantCode(t, err, aggregates.CodeForbidden)
}

func TestDeclineAndRevoke(t *testing.T) {
	t.Parallel()
	svc, _, users := newProjectService(t)
	users.add("owner-1", "alice")
	users.add("user-2", "bob")

	summary, _ := svc.Create(ctxAs("owner-1", "alice"), "board")
	if err := svc.Invite(ctxAs("owner-1", "alice"), summary.ID, "bob"); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if err := svc.Decline(ctxAs("user-2", "bob"), summary.ID); err != nil {
		t.Fatalf("decline: %v", err)
	}
	err := svc.Decline(ctxAs("user-2", "bob"), summary.ID)
	wantCode(t, err, aggregates.CodeNotFound)

	if err := svc.Invite(ctxAs("owner-1", "alice"), summary.ID, "bob"); err != nil {
		t.Fatalf("re-invite: %v", err)
	}
	if err := svc.Revoke(ctxAs("owner-1", "alice"), summary.ID, "bob"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	views, err := svc.InvitationsForUser(ctxAs("user-2", "bob"))
	if err != nil {
		t.Fatalf("invitations: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("invitation survived revoke: %+v", views)
	}
}

func TestChangeRoleValidatesRoleString(t *testing.T) {
	t.Parallel()
	svc, _, users := newProjectService(t)
	users.add("owner-1", "alice")

	summary, _ := svc.Create(ctxAs("owner-1", "alice"), "board")

	err := svc.ChangeRole(ctxAs("owner-1", "alice"), summary.ID, "user-2", "SuperAdmin")
	wantCode(t, err, aggregates.CodeValidation)

	err = svc.ChangeRole(ctxAs("owner-1", "alice"), summary.ID, "user-2", "Owner")
	wantCode(t, err, aggregates.CodeValidation)
}

func TestChangeRoleCannotDemoteOwner(t *testing.T) {
	t.Parallel()
	svc, store, users := newProjectService(t)
	users.add("owner-1", "alice")
	users.add("user-2", "bob")

	summary, _ := svc.Create(ctxAs("owner-1", "alice"), "board")
	if err := svc.Invite(ctxAs("owner-1", "alice"), summary.ID, "bob"); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if err := svc.Accept(ctxAs("user-2", "bob"), summary.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := svc.ChangeRole(ctxAs("owner-1", "alice"), summary.ID, "user-2", "Administrator"); err != nil {
		t.Fatalf("promote: %v", err)
	}

	err := svc.ChangeRole(ctxAs("user-2", "bob"), summary.ID, "owner-1", "Reader")
	wantCode(t, err, aggregates.CodeForbidden)

	p, err := store.GetByID(ctxAs("owner-1", "alice"), summary.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := p.RoleOf("owner-1"); got != project.RoleOwner {
		t.Fatalf("expected Owner, got %q", got)
	}
	if err := p.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestDeleteRequiresOwner(t *testing.T) {
	t.Parallel()
	svc, store, users := newProjectService(t)
	users.add("owner-1", "alice")
	users.add("user-2", "bob")

	summary, _ := svc.Create(ctxAs("owner-1", "alice"), "board")
	if err := svc.Invite(ctxAs("owner-1", "alice"), summary.ID, "bob"); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if err := svc.Accept(ctxAs("user-2", "bob"), summary.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := svc.ChangeRole(ctxAs("owner-1", "alice"), summary.ID, "user-2", "Administrator"); err != nil {
		t.Fatalf("promote: %v", err)
	}

	// Even an administrator cannot delete the project.
	err := svc.Delete(ctxAs("user-2", "bob"), summary.ID)
	wantCode(t, err, aggregates.CodeForbidden)

	if err := svc.Delete(ctxAs("owner-1", "alice"), summary.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctxAs("owner-1", "alice"), summary.ID); !aggregates.IsCode(err, aggregates.CodeNotFound) {
		t.Fatalf("project survived delete: %v", err)
	}
}

func TestListForUser(t *testing.T) {
	t.Parallel()
	svc, _, users := newProjectService(t)
	users.add("owner-1", "alice")
	users.add("user-2", "bob")

	if _, err := svc.Create(ctxAs("owner-1", "alice"), "first"); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if _, err := svc.Create(ctxAs("owner-1", "alice"), "second"); err != nil {
		t.Fatalf("create second: %v", err)
	}
	if _, err := svc.Create(ctxAs("user-2", "bob"), "other"); err != nil {
		t.Fatalf("create other: %v", err)
	}

	mine, err := svc.ListForUser(ctxAs("owner-1", "alice"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(mine))
	}
}
