package service

import (
	"context"

	"github.com/alexanderramin/inputtree/internal/domain"
)

// ForestService applies editor operations to the stored forest. Every
// mutating call loads the current forest, applies one engine operation,
// replaces the stored forest at most once and returns the result.
//
// A reference to a node that no longer exists is a silent no-op: the current
// forest is returned with a nil error.
type ForestService interface {
	Forest(ctx context.Context) (domain.Forest, error)
	// Seed discards the current forest and history and starts over from f.
	// A nil f seeds a single empty root.
	Seed(ctx context.Context, f domain.Forest) (domain.Forest, error)
	AddChild(ctx context.Context, parentID string) (domain.Forest, error)
	EditValue(ctx context.Context, id, value string) (domain.Forest, error)
	Duplicate(ctx context.Context, id string) (domain.Forest, error)
	BroadcastUpdate(ctx context.Context, id, value string) (domain.Forest, error)
	Delete(ctx context.Context, id string) (domain.Forest, error)
	Move(ctx context.Context, draggedID, hoveredID string) (domain.Forest, error)
	Undo(ctx context.Context) (domain.Forest, error)
	Redo(ctx context.Context) (domain.Forest, error)
	CanUndo(ctx context.Context) bool
	CanRedo(ctx context.Context) bool
}
