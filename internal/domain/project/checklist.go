package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

// ChecklistItemPatch is a partial checklist-item update; non-nil fields replace
// the item's fields wholesale.
type ChecklistItemPatch struct {
	Content    *string    `json:"content"`
	IsChecked  *bool      `json:"isChecked"`
	DueDate    *time.Time `json:"dueDate"`
	AssignedTo *[]string  `json:"assignedTo"`
}

func (p *Project) checklistOf(cardID, checklistID, op string) (*Checklist, error) {
	card, err := p.CardByID(cardID)
	if err != nil {
		return nil, aggregates.NewError(aggregates.CodeNotFound, op, "card not found", nil)
	}
	for i := range card.Checklists {
		if card.Checklists[i].ID == checklistID {
			return &card.Checklists[i], nil
		}
	}
	return nil, aggregates.NewError(aggregates.CodeNotFound, op, "checklist not found", nil)
}

// AddChecklist appends an empty checklist under the card.
func (p *Project) AddChecklist(cardID, title string) (*Checklist, error) {
	const op = "Project.Board.AddChecklist"
	card, err := p.CardByID(cardID)
	if err != nil {
		return nil, aggregates.NewError(aggregates.CodeNotFound, op, "card not found", nil)
	}
	card.Checklists = append(card.Checklists, Checklist{
		ID:    uuid.NewString(),
		Title: title,
		Items: []ChecklistItem{},
	})
	return &card.Checklists[len(card.Checklists)-1], nil
}

// RenameChecklist sets the checklist title.
func (p *Project) RenameChecklist(cardID, checklistID, title string) (*Checklist, error) {
	const op = "Project.Board.RenameChecklist"
	cl, err := p.checklistOf(cardID, checklistID, op)
	if err != nil {
		return nil, err
	}
	cl.Title = title
	return cl, nil
}

// DeleteChecklist filters the checklist out of the card.
func (p *Project) DeleteChecklist(cardID, checklistID string) error {
	const op = "Project.Board.DeleteChecklist"
	card, err := p.CardByID(cardID)
	if err != nil {
		return aggregates.NewError(aggregates.CodeNotFound, op, "card not found", nil)
	}
	kept := card.Checklists[:0]
	for _, cl := range card.Checklists {
		if cl.ID != checklistID {
			kept = append(kept, cl)
		}
	}
	card.Checklists = kept
	return nil
}

// AddChecklistItem appends an unchecked item to the checklist.
func (p *Project) AddChecklistItem(cardID, checklistID, content string) (*ChecklistItem, error) {
	const op = "Project.Board.AddChecklistItem"
	cl, err := p.checklistOf(cardID, checklistID, op)
	if err != nil {
		return nil, err
	}
	cl.Items = append(cl.Items, ChecklistItem{
		ID:         uuid.NewString(),
		Content:    content,
		IsChecked:  false,
		AssignedTo: []string{},
	})
	return &cl.Items[len(cl.Items)-1], nil
}

// UpdateChecklistItem merges the patch onto the item.
func (p *Project) UpdateChecklistItem(cardID, checklistID, itemID string, patch ChecklistItemPatch) (*ChecklistItem, error) {
	const op = "Project.Board.UpdateChecklistItem"
	cl, err := p.checklistOf(cardID, checklistID, op)
	if err != nil {
		return nil, err
	}
	var item *ChecklistItem
	for i := range cl.Items {
		if cl.Items[i].ID == itemID {
			item = &cl.Items[i]
			break
		}
	}
	if item == nil {
		return nil, aggregates.NewError(aggregates.CodeNotFound, op, "checklist item not found", nil)
	}
	if patch.Content != nil {
		item.Content = *patch.Content
	}
	if patch.IsChecked != nil {
		item.IsChecked = *patch.IsChecked
	}
	if patch.DueDate != nil {
		item.DueDate = patch.DueDate
	}
	if patch.AssignedTo != nil {
		item.AssignedTo = *patch.AssignedTo
	}
	return item, nil
}

// DeleteChecklistItem filters the item out of the checklist.
func (p *Project) DeleteChecklistItem(cardID, checklistID, itemID string) error {
	const op = "Project.Board.DeleteChecklistItem"
	cl, err := p.checklistOf(cardID, checklistID, op)
	if err != nil {
		return err
	}
	kept := cl.Items[:0]
	for _, it := range cl.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	cl.Items = kept
	return nil
}
