package services

import (
	"testing"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
)

func TestChecklistLifecycleThroughService(t *testing.T) {
	t.Parallel()
	fx := newBoardFixture(t)
	checklists := NewChecklistService(testLogger(t), fx.store)

	col, _ := fx.board.CreateColumn(fx.owner, fx.project, "todo")
	card, err := fx.board.CreateCard(fx.owner, fx.project, col.ID, "task")
	if err != nil {
		t.Fatalf("create card: %v", err)
	}

	_, err = checklists.Create(fx.reader, fx.project, card.ID, "steps")
	wantCode(t, err, aggregates.CodeForbidden)

	cl, err := checklists.Create(fx.owner, fx.project, card.ID, "steps")
	if err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	item, err := checklists.CreateItem(fx.owner, fx.project, card.ID, cl.ID, "step one")
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	checked := true
	if _, err := checklists.UpdateItem(fx.owner, fx.project, card.ID, cl.ID, item.ID, project.ChecklistItemPatch{IsChecked: &checked}); err != nil {
		t.Fatalf("update item: %v", err)
	}

	p, err := fx.store.GetByID(fx.owner, fx.project)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	reloaded, err := p.CardByID(card.ID)
	if err != nil {
		t.Fatalf("card: %v", err)
	}
	if len(reloaded.Checklists) != 1 || len(reloaded.Checklists[0].Items) != 1 {
		t.Fatalf("unexpected checklist shape: %+v", reloaded.Checklists)
	}
	if !reloaded.Checklists[0].Items[0].IsChecked {
		t.Fatal("item check was not persisted")
	}

	_, err = checklists.Create(fx.owner, fx.project, "ghost", "steps")
	wantCode(t, err, aggregates.CodeNotFound)
}
