package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

// CardPatch is a partial card update. A non-nil field replaces the card's field
// entirely; nil fields are left untouched.
type CardPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	IsDone      *bool      `json:"isDone"`
	DueDate     *time.Time `json:"dueDate"`
	StartDate   *time.Time `json:"startDate"`
	AssignedTo  *[]string  `json:"assignedTo"`
	TagIDs      *[]string  `json:"tagIds"`
}

// ColumnByID returns the column with the given id, or nil.
func (p *Project) ColumnByID(columnID string) *Column {
	for i := range p.Columns {
		if p.Columns[i].ID == columnID {
			return &p.Columns[i]
		}
	}
	return nil
}

// AddColumn appends a new empty column.
func (p *Project) AddColumn(name string, now time.Time) *Column {
	p.Columns = append(p.Columns, Column{
		ID:        uuid.NewString(),
		Name:      name,
		Cards:     []Card{},
		CreatedAt: now,
	})
	return &p.Columns[len(p.Columns)-1]
}

// RenameColumn sets the column's display name.
func (p *Project) RenameColumn(columnID, name string) (*Column, error) {
	const op = "Project.Board.RenameColumn"
	col := p.ColumnByID(columnID)
	if col == nil {
		return nil, aggregates.NewError(aggregates.CodeNotFound, op, "column not found", nil)
	}
	col.Name = name
	return col, nil
}

// DeleteColumn filters the column (and the cards it owns) out of the project.
func (p *Project) DeleteColumn(columnID string) {
	kept := p.Columns[:0]
	for _, col := range p.Columns {
		if col.ID != columnID {
			kept = append(kept, col)
		}
	}
	p.Columns = kept
}

// ReorderColumn splices the column out of its current position and inserts it
// at newPosition. Out-of-range positions fail; they are never clamped.
func (p *Project) ReorderColumn(columnID string, newPosition int) error {
	const op = "Project.Board.ReorderColumn"
	idx := -1
	for i := range p.Columns {
		if p.Columns[i].ID == columnID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return aggregates.NewError(aggregates.CodeNotFound, op, "column not found", nil)
	}
	if newPosition < 0 || newPosition >= len(p.Columns) {
		return aggregates.NewError(aggregates.CodeValidation, op, "invalid new position", nil)
	}
	col := p.Columns[idx]
	p.Columns = append(p.Columns[:idx], p.Columns[idx+1:]...)
	p.Columns = append(p.Columns[:newPosition], append([]Column{col}, p.Columns[newPosition:]...)...)
	return nil
}

// AddCard appends a new card to the column.
func (p *Project) AddCard(columnID, title string, now time.Time) (*Card, error) {
	const op = "Project.Board.AddCard"
	col := p.ColumnByID(columnID)
	if col == nil {
		return nil, aggregates.NewError(aggregates.CodeNotFound, op, "column not found", nil)
	}
	col.Cards = append(col.Cards, Card{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "",
		IsDone:      false,
		AssignedTo:  []string{},
		TagIDs:      []string{},
		Checklists:  []Checklist{},
		CreatedAt:   now,
	})
	return &col.Cards[len(col.Cards)-1], nil
}

// CardIn locates a card inside a specific column.
func (p *Project) CardIn(columnID, cardID string) (*Card, error) {
	const op = "Project.Board.GetCard"
	col := p.ColumnByID(columnID)
	if col == nil {
		return nil, aggregates.NewError(aggregates.CodeNotFound, op, "column not found", nil)
	}
	for i := range col.Cards {
		if col.Cards[i].ID == cardID {
			return &col.Cards[i], nil
		}
	}
	return nil, aggregates.NewError(aggregates.CodeNotFound, op, "card not found", nil)
}

// CardByID scans every column for the card. The ordered arrays are the source
// of truth; there is no id index.
func (p *Project) CardByID(cardID string) (*Card, error) {
	const op = "Project.Board.FindCard"
	for i := range p.Columns {
		cards := p.Columns[i].Cards
		for j := range cards {
			if cards[j].ID == cardID {
				return &cards[j], nil
			}
		}
	}
	return nil, aggregates.NewError(aggregates.CodeNotFound, op, "card not found", nil)
}

// UpdateCard merges the patch onto the card.
func (p *Project) UpdateCard(columnID, cardID string, patch CardPatch) (*Card, error) {
	card, err := p.CardIn(columnID, cardID)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		card.Title = *patch.Title
	}
	if patch.Description != nil {
		card.Description = *patch.Description
	}
	if patch.IsDone != nil {
		card.IsDone = *patch.IsDone
	}
	if patch.DueDate != nil {
		card.DueDate = patch.DueDate
	}
	if patch.StartDate != nil {
		card.StartDate = patch.StartDate
	}
	if patch.AssignedTo != nil {
		card.AssignedTo = *patch.AssignedTo
	}
	if patch.TagIDs != nil {
		card.TagIDs = *patch.TagIDs
	}
	return card, nil
}

// DeleteCard filters the card out of the column.
func (p *Project) DeleteCard(columnID, cardID string) error {
	const op = "Project.Board.DeleteCard"
	col := p.ColumnByID(columnID)
	if col == nil {
		return aggregates.NewError(aggregates.CodeNotFound, op, "column not found", nil)
	}
	kept := col.Cards[:0]
	for _, c := range col.Cards {
		if c.ID != cardID {
			kept = append(kept, c)
		}
	}
	col.Cards = kept
	return nil
}

// ToggleCardDone flips the card's done flag.
func (p *Project) ToggleCardDone(columnID, cardID string) (*Card, error) {
	card, err := p.CardIn(columnID, cardID)
	if err != nil {
		return nil, err
	}
	card.IsDone = !card.IsDone
	return card, nil
}

// MoveCard removes the card from its column and re-inserts it at newIndex.
// When newColumnID is set and differs from columnID the card lands in the
// destination column instead. Moving is remove-then-insert; a card lives in
// exactly one column at a time.
func (p *Project) MoveCard(columnID, cardID string, newIndex int, newColumnID string) error {
	const op = "Project.Board.MoveCard"
	col := p.ColumnByID(columnID)
	if col == nil {
		return aggregates.NewError(aggregates.CodeNotFound, op, "column not found", nil)
	}
	idx := -1
	for i := range col.Cards {
		if col.Cards[i].ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return aggregates.NewError(aggregates.CodeNotFound, op, "card not found", nil)
	}

	target := col
	if newColumnID != "" && newColumnID != columnID {
		target = p.ColumnByID(newColumnID)
		if target == nil {
			return aggregates.NewError(aggregates.CodeNotFound, op, "target column not found", nil)
		}
	}

	card := col.Cards[idx]
	col.Cards = append(col.Cards[:idx], col.Cards[idx+1:]...)
	if newIndex < 0 || newIndex > len(target.Cards) {
		// put the card back before rejecting the index
		col.Cards = append(col.Cards[:idx], append([]Card{card}, col.Cards[idx:]...)...)
		return aggregates.NewError(aggregates.CodeValidation, op, "invalid new index", nil)
	}
	target.Cards = append(target.Cards[:newIndex], append([]Card{card}, target.Cards[newIndex:]...)...)
	return nil
}
