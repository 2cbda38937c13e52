package repos

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/VidsSkids/epitrello-backend/internal/domain/aggregates"
)

func TestMapStoreError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want aggregates.ErrorCode
	}{
		{"record not found", gorm.ErrRecordNotFound, aggregates.CodeNotFound},
		{"context canceled", context.Canceled, aggregates.CodeRetryable},
		{"deadline exceeded", context.DeadlineExceeded, aggregates.CodeRetryable},
		{"unique violation", &pgconn.PgError{Code: "23505"}, aggregates.CodeConflict},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, aggregates.CodeRetryable},
		{"deadlock detected", &pgconn.PgError{Code: "40P01"}, aggregates.CodeRetryable},
		{"duplicate key text", errors.New("ERROR: duplicate key value violates constraint"), aggregates.CodeConflict},
		{"timeout text", errors.New("connection timeout"), aggregates.CodeRetryable},
		{"unknown", errors.New("boom"), aggregates.CodeInternal},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MapStoreError("TestOp", tc.err)
			if !aggregates.IsCode(got, tc.want) {
				t.Fatalf("got=%v want code=%s", got, tc.want)
			}
		})
	}
}

func TestMapStoreErrorPassesThroughAggregateErrors(t *testing.T) {
	t.Parallel()

	orig := aggregates.NewError(aggregates.CodeForbidden, "Op", "nope", nil)
	got := MapStoreError("TestOp", orig)
	if got != orig {
		t.Fatalf("aggregate error was rewrapped: %v", got)
	}

	wrapped := fmt.Errorf("outer: %w", orig)
	if !aggregates.IsCode(MapStoreError("TestOp", wrapped), aggregates.CodeForbidden) {
		t.Fatal("wrapped aggregate error lost its code")
	}
}

func TestMapStoreErrorNil(t *testing.T) {
	t.Parallel()
	if got := MapStoreError("TestOp", nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
