package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

// TagPatch is a partial tag update.
type TagPatch struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// TagByID returns the tag with the given id, or nil.
func (p *Project) TagByID(tagID string) *Tag {
	for i := range p.Tags {
		if p.Tags[i].ID == tagID {
			return &p.Tags[i]
		}
	}
	return nil
}

// AddTag appends a tag; tag names are unique within a project.
func (p *Project) AddTag(name, color string, now time.Time) (*Tag, error) {
	const op = "Project.Tags.Add"
	for i := range p.Tags {
		if p.Tags[i].Name == name {
			return nil, aggregates.NewError(aggregates.CodeConflict, op, "tag name already exists", nil)
		}
	}
	p.Tags = append(p.Tags, Tag{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
	})
	return &p.Tags[len(p.Tags)-1], nil
}

// UpdateTag merges the patch onto the tag.
func (p *Project) UpdateTag(tagID string, patch TagPatch) (*Tag, error) {
	const op = "Project.Tags.Update"
	tag := p.TagByID(tagID)
	if tag == nil {
		return nil, aggregates.NewError(aggregates.CodeNotFound, op, "tag not found", nil)
	}
	if patch.Name != nil {
		tag.Name = *patch.Name
	}
	if patch.Color != nil {
		tag.Color = *patch.Color
	}
	return tag, nil
}

// DeleteTag removes the tag and sweeps its id out of every card in every
// column. Cards hold weak references to tags, so the cascade runs in a single
// pass before the one aggregate save.
func (p *Project) DeleteTag(tagID string) {
	kept := p.Tags[:0]
	for _, t := range p.Tags {
		if t.ID != tagID {
			kept = append(kept, t)
		}
	}
	p.Tags = kept

	for i := range p.Columns {
		cards := p.Columns[i].Cards
		for j := range cards {
			ids := cards[j].TagIDs[:0]
			for _, id := range cards[j].TagIDs {
				if id != tagID {
					ids = append(ids, id)
				}
			}
			cards[j].TagIDs = ids
		}
	}
}

// AssignTag adds the tag id to the card's references. Assigning an already
// present tag is a no-op.
func (p *Project) AssignTag(cardID, tagID string) error {
	const op = "Project.Tags.Assign"
	card, err := p.CardByID(cardID)
	if err != nil {
		return aggregates.NewError(aggregates.CodeNotFound, op, "card not found", nil)
	}
	if p.TagByID(tagID) == nil {
		return aggregates.NewError(aggregates.CodeNotFound, op, "tag not found in project", nil)
	}
	for _, id := range card.TagIDs {
		if id == tagID {
			return nil
		}
	}
	card.TagIDs = append(card.TagIDs, tagID)
	return nil
}

// UnassignTag drops the tag id from the card's references; removing an absent
// id is a no-op, not an error.
func (p *Project) UnassignTag(cardID, tagID string) error {
	const op = "Project.Tags.Unassign"
	card, err := p.CardByID(cardID)
	if err != nil {
		return aggregates.NewError(aggregates.CodeNotFound, op, "card not found", nil)
	}
	kept := card.TagIDs[:0]
	for _, id := range card.TagIDs {
		if id != tagID {
			kept = append(kept, id)
		}
	}
	card.TagIDs = kept
	return nil
}
