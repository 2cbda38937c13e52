package services

import (
	"context"
	"testing"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

type boardFixture struct {
	board    BoardService
	projects ProjectService
	store    *fakeProjectStore
	owner    context.Context
	reader   context.Context
	project  string
}

// newBoardFixture builds a project owned by alice with bob as Reader.
func newBoardFixture(t *testing.T) *boardFixture {
	t.Helper()
	store := newFakeProjectStore()
	users := newFakeUserRepo()
	users.add("owner-1", "alice")
	users.add("user-2", "bob")
	log := testLogger(t)
	projects := NewProjectService(log, store, users)
	board := NewBoardService(log, store)

	owner := ctxAs("owner-1", "alice")
	reader := ctxAs("user-2", "bob")
	summary, err := projects.Create(owner, "board")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if err := projects.Invite(owner, summary.ID, "bob"); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if err := projects.Accept(reader, summary.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	return &boardFixture{
		board:    board,
		projects: projects,
		store:    store,
		owner:    owner,
		reader:   reader,
		project:  summary.ID,
	}
}

func TestBoardMutationsRequireWrite(t *testing.T) {
	t.Parallel()
	fx := newBoardFixture(t)

	_, err := fx.board.CreateColumn(fx.reader, fx.project, "todo")
	wantCode(t, err, aggregates.CodeForbidden)

	col, err := fx.board.CreateColumn(fx.owner, fx.project, "todo")
	if err != nil {
		t.Fatalf("create column: %v", err)
	}

	// Reading is open to every member.
	card, err := fx.board.CreateCard(fx.owner, fx.project, col.ID, "task")
	if err != nil {
		t.Fatalf("create card: %v", err)
	}
	if _, err := fx.board.GetCard(fx.reader, fx.project, col.ID, card.ID); err != nil {
		t.Fatalf("reader get card: %v", err)
	}
	_, err = fx.board.GetCard(ctxAs("stranger", "mallory"), fx.project, col.ID, card.ID)
	wantCode(t, err, aggregates.CodeForbidden)
}

func TestBoardMutationsPersist(t *testing.T) {
	t.Parallel()
	fx := newBoardFixture(t)

	col, err := fx.board.CreateColumn(fx.owner, fx.project, "todo")
	if err != nil {
		t.Fatalf("create column: %v", err)
	}
	card, err := fx.board.CreateCard(fx.owner, fx.project, col.ID, "task")
	if err != nil {
		t.Fatalf("create card: %v", err)
	}
	if _, err := fx.board.ToggleCardDone(fx.owner, fx.project, col.ID, card.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// Reload from the store: every mutation must have been saved.
	p, err := fx.store.GetByID(fx.owner, fx.project)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, err := p.CardIn(col.ID, card.ID)
	if err != nil {
		t.Fatalf("card in reloaded doc: %v", err)
	}
	if !got.IsDone {
		t.Fatal("toggle was not persisted")
	}
}

func TestBoardReorderThroughService(t *testing.T) {
	t.Parallel()
	fx := newBoardFixture(t)

	first, _ := fx.board.CreateColumn(fx.owner, fx.project, "a")
	if _, err := fx.board.CreateColumn(fx.owner, fx.project, "b"); err != nil {
		t.Fatalf("create b: %v", err)
	}

	columns, err := fx.board.ReorderColumn(fx.owner, fx.project, first.ID, 1)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if len(columns) != 2 || columns[1].ID != first.ID {
		t.Fatalf("unexpected order: %+v", columns)
	}

	_, err = fx.board.ReorderColumn(fx.owner, fx.project, first.ID, 7)
	wantCode(t, err, aggregates.CodeValidation)
}

func TestBoardMoveCardAcrossColumns(t *testing.T) {
	t.Parallel()
	fx := newBoardFixture(t)

	src, _ := fx.board.CreateColumn(fx.owner, fx.project, "todo")
	dst, _ := fx.board.CreateColumn(fx.owner, fx.project, "done")
	card, err := fx.board.CreateCard(fx.owner, fx.project, src.ID, "task")
	if err != nil {
		t.Fatalf("create card: %v", err)
	}

	if err := fx.board.ReorderCard(fx.owner, fx.project, src.ID, card.ID, 0, dst.ID); err != nil {
		t.Fatalf("move: %v", err)
	}

	p, err := fx.store.GetByID(fx.owner, fx.project)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, err := p.CardIn(dst.ID, card.ID); err != nil {
		t.Fatalf("card not in destination: %v", err)
	}
	if _, err := p.CardIn(src.ID, card.ID); !aggregates.IsCode(err, aggregates.CodeNotFound) {
		t.Fatalf("card still in source: %v", err)
	}
}
