package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

// User is the directory record. PublicID is the identifier the rest of the
// system sees; the row id never leaves the store.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	PublicID  string    `gorm:"size:64;uniqueIndex;not null" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Email     string    `gorm:"index" json:"email,omitempty"`
	Password  string    `gorm:"" json:"-"`
	Provider  string    `gorm:"size:16;not null;default:local" json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "user" }

// UserRepo is the user directory: name→user and id→user resolution plus
// account creation and deletion.
type UserRepo interface {
	Create(ctx context.Context, u *User) error
	GetByName(ctx context.Context, name string) (*User, error)
	GetByPublicID(ctx context.Context, publicID string) (*User, error)
	Delete(ctx context.Context, publicID string) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) Create(ctx context.Context, u *User) error {
	const op = "UserRepo.Create"
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return MapStoreError(op, err)
	}
	return nil
}

func (r *userRepo) GetByName(ctx context.Context, name string) (*User, error) {
	const op = "UserRepo.GetByName"
	var u User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, aggregates.NewError(aggregates.CodeNotFound, op, "user not found", err)
		}
		return nil, MapStoreError(op, err)
	}
	return &u, nil
}

func (r *userRepo) GetByPublicID(ctx context.Context, publicID string) (*User, error) {
	const op = "UserRepo.GetByPublicID"
	var u User
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, aggregates.NewError(aggregates.CodeNotFound, op, "user not found", err)
		}
		return nil, MapStoreError(op, err)
	}
	return &u, nil
}

func (r *userRepo) Delete(ctx context.Context, publicID string) error {
	const op = "UserRepo.Delete"
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&User{})
	if res.Error != nil {
		return MapStoreError(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return aggregates.NewError(aggregates.CodeNotFound, op, "user not found", nil)
	}
	return nil
}
