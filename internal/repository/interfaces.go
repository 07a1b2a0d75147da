package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/inputtree/internal/domain"
)

var (
	// ErrNothingToUndo is returned by Undo when no earlier forest is recorded.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo is returned by Redo when no undone forest is recorded.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// ForestRepo owns the current forest. Callers replace the forest exactly once
// per logical operation and never modify a forest they received.
type ForestRepo interface {
	Get(ctx context.Context) (domain.Forest, error)
	Replace(ctx context.Context, f domain.Forest) error
	// Update applies fn to the current forest under the write lock. When fn
	// returns an error nothing is stored and history is unchanged.
	Update(ctx context.Context, fn func(domain.Forest) (domain.Forest, error)) (domain.Forest, error)
	// Seed resets the store to f, clears history, and captures the root token.
	Seed(ctx context.Context, f domain.Forest) error
	// RootToken is the ID of the first root at seed time.
	RootToken(ctx context.Context) (string, error)
}

// HistoryRepo steps back and forth through replaced forests.
type HistoryRepo interface {
	Undo(ctx context.Context) (domain.Forest, error)
	Redo(ctx context.Context) (domain.Forest, error)
	CanUndo(ctx context.Context) bool
	CanRedo(ctx context.Context) bool
}

// ForestStore combines the forest and its history.
type ForestStore interface {
	ForestRepo
	HistoryRepo
}
