package services

import (
	"testing"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

func TestTagLifecycleThroughService(t *testing.T) {
	t.Parallel()
	fx := newBoardFixture(t)
	tags := NewTagService(testLogger(t), fx.store)

	col, _ := fx.board.CreateColumn(fx.owner, fx.project, "todo")
	card, err := fx.board.CreateCard(fx.owner, fx.project, col.ID, "task")
	if err != nil {
		t.Fatalf("create card: %v", err)
	}

	tag, err := tags.Create(fx.owner, fx.project, "bug", "#ff0000")
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	_, err = tags.Create(fx.owner, fx.project, "bug", "#00ff00")
	wantCode(t, err, aggregates.CodeConflict)

	_, err = tags.Create(fx.reader, fx.project, "feature", "#00ff00")
	wantCode(t, err, aggregates.CodeForbidden)

	if err := tags.Assign(fx.owner, fx.project, card.ID, tag.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	err = tags.Assign(fx.owner, fx.project, card.ID, "ghost")
	wantCode(t, err, aggregates.CodeNotFound)

	if err := tags.Delete(fx.owner, fx.project, tag.ID); err != nil {
		t.Fatalf("delete tag: %v", err)
	}

	p, err := fx.store.GetByID(fx.owner, fx.project)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if p.TagByID(tag.ID) != nil {
		t.Fatal("tag still registered after delete")
	}
	got, err := p.CardIn(col.ID, card.ID)
	if err != nil {
		t.Fatalf("card: %v", err)
	}
	if len(got.TagIDs) != 0 {
		t.Fatalf("card still references deleted tag: %v", got.TagIDs)
	}
}
