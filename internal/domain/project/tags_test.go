package project

import (
	"testing"
	"time"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

func TestAddTagDuplicateNameConflicts(t *testing.T) {
	t.Parallel()
	p := newTestProject(t)

	if _, err := p.AddTag("bug", "#ff0000", time.Now()); err != nil {
		t.Fatalf("add tag: %v", err)
	}
	_, err := p.AddTag("bug", "#00ff00", time.Now())
	wantCode(t, err, aggregates.CodeConflict)
	if len(p.Tags) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(p.Tags))
	}
}

func TestUpdateTag(t *testing.T) {
	t.Parallel()
	p := newTestProject(t)
	tag, _ := p.AddTag("bug", "#ff0000", time.Now())

	color := "#0000ff"
	got, err := p.UpdateTag(tag.ID, TagPatch{Color: &color})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "bug" || got.Color != "#0000ff" {
		t.Fatalf("patch not merged: %+v", got)
	}

	_, err = p.UpdateTag("ghost", TagPatch{})
	wantCode(t, err, aggregates.CodeNotFound)
}

func TestAssignAndUnassignTag(t *testing.T) {
	t.Parallel()
	p, cardID := projectWithCard(t)
	tag, _ := p.AddTag("bug", "#ff0000", time.Now())

	if err := p.AssignTag(cardID, tag.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	// idempotent
	if err := p.AssignTag(cardID, tag.ID); err != nil {
		t.Fatalf("assign again: %v", err)
	}
	card, _ := p.CardByID(cardID)
	if len(card.TagIDs) != 1 || card.TagIDs[0] != tag.ID {
		t.Fatalf("unexpected tag refs: %v", card.TagIDs)
	}

	err := p.AssignTag(cardID, "ghost")
	wantCode(t, err, aggregates.CodeNotFound)
	err = p.AssignTag("ghost", tag.ID)
	wantCode(t, err, aggregates.CodeNotFound)

	if err := p.UnassignTag(cardID, tag.ID); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if err := p.UnassignTag(cardID, tag.ID); err != nil {
		t.Fatalf("unassign absent: %v", err)
	}
	card, _ = p.CardByID(cardID)
	if len(card.TagIDs) != 0 {
		t.Fatalf("tag refs not cleared: %v", card.TagIDs)
	}
}

func TestDeleteTagSweepsAllCards(t *testing.T) {
	t.Parallel()
	p := newTestProject(t)
	now := time.Now()
	colA := p.AddColumn("todo", now)
	colB := p.AddColumn("doing", now)
	a1, _ := p.AddCard(colA.ID, "a1", now)
	a2, _ := p.AddCard(colA.ID, "a2", now)
	b1, _ := p.AddCard(colB.ID, "b1", now)
	doomed, _ := p.AddTag("bug", "#ff0000", now)
	keeper, _ := p.AddTag("feature", "#00ff00", now)

	for _, cardID := range []string{a1.ID, a2.ID, b1.ID} {
		if err := p.AssignTag(cardID, doomed.ID); err != nil {
			t.Fatalf("assign doomed to %s: %v", cardID, err)
		}
	}
	if err := p.AssignTag(a1.ID, keeper.ID); err != nil {
		t.Fatalf("assign keeper: %v", err)
	}

	p.DeleteTag(doomed.ID)

	if p.TagByID(doomed.ID) != nil {
		t.Fatal("tag still registered")
	}
	for _, col := range p.Columns {
		for _, card := range col.Cards {
			for _, id := range card.TagIDs {
				if id == doomed.ID {
					t.Fatalf("card %s still references deleted tag", card.Title)
				}
			}
		}
	}
	card, _ := p.CardByID(a1.ID)
	if len(card.TagIDs) != 1 || card.TagIDs[0] != keeper.ID {
		t.Fatalf("unrelated tag ref lost: %v", card.TagIDs)
	}
}
