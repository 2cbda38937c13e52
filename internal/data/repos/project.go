package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
	"github.com/VidsSkids/epitrello-backend/internal/domain/project"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

// ProjectRecord is the single-row-per-project document layout: the whole
// aggregate lives in the Doc column, with a version counter for
// compare-and-set saves.
type ProjectRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UUID      string         `gorm:"size:64;uniqueIndex;not null"`
	OwnerID   string         `gorm:"size:64;index;not null"`
	Name      string         `gorm:"not null"`
	Version   int            `gorm:"not null;default:0"`
	Doc       datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProjectRecord) TableName() string { return "project" }

// ProjectStore owns load/save/delete for the project aggregate document.
type ProjectStore interface {
	GetByID(ctx context.Context, id string) (*project.Project, error)
	ListByMember(ctx context.Context, userID string) ([]*project.Project, error)
	ListByInviteeName(ctx context.Context, name string) ([]*project.Project, error)
	ListByInviter(ctx context.Context, userID string) ([]*project.Project, error)
	Create(ctx context.Context, p *project.Project) error
	Save(ctx context.Context, p *project.Project) error
	Delete(ctx context.Context, id string) error
}

type projectStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectStore(db *gorm.DB, baseLog *logger.Logger) ProjectStore {
	return &projectStore{db: db, log: baseLog.With("repo", "ProjectStore")}
}

func (r *projectStore) GetByID(ctx context.Context, id string) (*project.Project, error) {
	const op = "ProjectStore.GetByID"
	q := r.db.WithContext(ctx).Where("uuid = ?", id)
	// lookup accepts the external stable id or the internal storage id
	if internal, err := uuid.Parse(id); err == nil {
		q = r.db.WithContext(ctx).Where("uuid = ? OR id = ?", id, internal)
	}
	var rec ProjectRecord
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, aggregates.NewError(aggregates.CodeNotFound, op, "project not found", err)
		}
		return nil, MapStoreError(op, err)
	}
	return recordToProject(op, &rec)
}

func (r *projectStore) Create(ctx context.Context, p *project.Project) error {
	const op = "ProjectStore.Create"
	raw, err := json.Marshal(p)
	if err != nil {
		return aggregates.Wrap(aggregates.CodeInternal, op, err)
	}
	rec := ProjectRecord{
		ID:        uuid.New(),
		UUID:      p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Version:   0,
		Doc:       datatypes.JSON(raw),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return MapStoreError(op, err)
	}
	p.Version = 0
	return nil
}

// Save persists the whole aggregate with a version guard: the update only
// lands when the stored version still matches the one the caller loaded.
func (r *projectStore) Save(ctx context.Context, p *project.Project) error {
	const op = "ProjectStore.Save"
	now := time.Now().UTC()
	p.UpdatedAt = now
	raw, err := json.Marshal(p)
	if err != nil {
		return aggregates.Wrap(aggregates.CodeInternal, op, err)
	}
	res := r.db.WithContext(ctx).
		Model(&ProjectRecord{}).
		Where("uuid = ? AND version = ?", p.ID, p.Version).
		Updates(map[string]any{
			"doc":        datatypes.JSON(raw),
			"name":       p.Name,
			"version":    p.Version + 1,
			"updated_at": now,
		})
	if res.Error != nil {
		return MapStoreError(op, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ProjectRecord{}).Where("uuid = ?", p.ID).Count(&count).Error; err != nil {
			return MapStoreError(op, err)
		}
		if count == 0 {
			return aggregates.NewError(aggregates.CodeNotFound, op, "project not found", nil)
		}
		return aggregates.NewError(aggregates.CodeConflict, op, "project changed concurrently, reload and retry", nil)
	}
	p.Version++
	return nil
}

func (r *projectStore) Delete(ctx context.Context, id string) error {
	const op = "ProjectStore.Delete"
	res := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&ProjectRecord{})
	if res.Error != nil {
		return MapStoreError(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return aggregates.NewError(aggregates.CodeNotFound, op, "project not found", nil)
	}
	return nil
}

func (r *projectStore) ListByMember(ctx context.Context, userID string) ([]*project.Project, error) {
	const op = "ProjectStore.ListByMember"
	return r.listByDocMatch(ctx, op, "members", "userId", userID)
}

func (r *projectStore) ListByInviteeName(ctx context.Context, name string) ([]*project.Project, error) {
	const op = "ProjectStore.ListByInviteeName"
	return r.listByDocMatch(ctx, op, "invitations", "name", name)
}

func (r *projectStore) ListByInviter(ctx context.Context, userID string) ([]*project.Project, error) {
	const op = "ProjectStore.ListByInviter"
	return r.listByDocMatch(ctx, op, "invitations", "invitedBy", userID)
}

// listByDocMatch finds projects whose doc array contains an element with the
// given field value. Postgres uses jsonb containment; sqlite walks json_each.
func (r *projectStore) listByDocMatch(ctx context.Context, op, arrayField, elemField, value string) ([]*project.Project, error) {
	q := r.db.WithContext(ctx).Model(&ProjectRecord{})
	if r.db.Dialector.Name() == "sqlite" {
		expr := fmt.Sprintf(
			"EXISTS (SELECT 1 FROM json_each(doc, '$.%s') WHERE json_extract(json_each.value, '$.%s') = ?)",
			arrayField, elemField,
		)
		q = q.Where(expr, value)
	} else {
		needle, err := json.Marshal([]map[string]string{{elemField: value}})
		if err != nil {
			return nil, aggregates.Wrap(aggregates.CodeInternal, op, err)
		}
		q = q.Where(fmt.Sprintf("doc->'%s' @> ?::jsonb", arrayField), string(needle))
	}

	var recs []ProjectRecord
	if err := q.Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, MapStoreError(op, err)
	}
	out := make([]*project.Project, 0, len(recs))
	for i := range recs {
		p, err := recordToProject(op, &recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func recordToProject(op string, rec *ProjectRecord) (*project.Project, error) {
	var p project.Project
	if err := json.Unmarshal(rec.Doc, &p); err != nil {
		return nil, aggregates.Wrap(aggregates.CodeInternal, op, err)
	}
	p.ID = rec.UUID
	p.Version = rec.Version
	p.CreatedAt = rec.CreatedAt
	p.UpdatedAt = rec.UpdatedAt
	return &p, nil
}
