package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

// MapStoreError maps infrastructure failures into aggregate error codes so the
// layers above never see driver-specific errors.
func MapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var aggErr *aggregates.Error
	if errors.As(err, &aggErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return aggregates.Wrap(aggregates.CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return aggregates.Wrap(aggregates.CodeRetryable, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return aggregates.Wrap(aggregates.CodeConflict, op, err) // unique_violation
		case "40001", "40P01", "55P03":
			return aggregates.Wrap(aggregates.CodeRetryable, op, err) // serialization/deadlock/lock_not_available
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return aggregates.Wrap(aggregates.CodeConflict, op, err)
	case strings.Contains(msg, "deadlock"), strings.Contains(msg, "timeout"), strings.Contains(msg, "temporar"):
		return aggregates.Wrap(aggregates.CodeRetryable, op, err)
	default:
		return aggregates.Wrap(aggregates.CodeInternal, op, err)
	}
}
