package repository

import (
	"context"
	"sync"

	"github.com/alexanderramin/inputtree/internal/domain"
)

// DefaultHistoryLimit bounds the number of undo steps kept.
const DefaultHistoryLimit = 100

// MemoryForestRepo implements ForestStore in memory. Forest values are
// immutable, so history holds the replaced values themselves.
type MemoryForestRepo struct {
	mu        sync.RWMutex
	forest    domain.Forest
	rootToken string
	undo      []domain.Forest
	redo      []domain.Forest
	limit     int
}

// NewMemoryForestRepo creates a store holding f. A limit <= 0 uses
// DefaultHistoryLimit.
func NewMemoryForestRepo(f domain.Forest, limit int) *MemoryForestRepo {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &MemoryForestRepo{
		forest:    f,
		rootToken: f.RootID(),
		limit:     limit,
	}
}

func (r *MemoryForestRepo) Get(ctx context.Context) (domain.Forest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.forest, nil
}

func (r *MemoryForestRepo) Replace(ctx context.Context, f domain.Forest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.push(f)
	return nil
}

func (r *MemoryForestRepo) Update(ctx context.Context, fn func(domain.Forest) (domain.Forest, error)) (domain.Forest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := fn(r.forest)
	if err != nil {
		return r.forest, err
	}
	r.push(next)
	return next, nil
}

// push records the current forest in history and makes f current.
// Caller holds the write lock.
func (r *MemoryForestRepo) push(f domain.Forest) {
	r.undo = append(r.undo, r.forest)
	if len(r.undo) > r.limit {
		r.undo = r.undo[len(r.undo)-r.limit:]
	}
	r.redo = nil
	r.forest = f
}

func (r *MemoryForestRepo) Seed(ctx context.Context, f domain.Forest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forest = f
	r.rootToken = f.RootID()
	r.undo = nil
	r.redo = nil
	return nil
}

func (r *MemoryForestRepo) RootToken(ctx context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rootToken, nil
}

func (r *MemoryForestRepo) Undo(ctx context.Context) (domain.Forest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.undo) == 0 {
		return r.forest, ErrNothingToUndo
	}
	prev := r.undo[len(r.undo)-1]
	r.undo = r.undo[:len(r.undo)-1]
	r.redo = append(r.redo, r.forest)
	r.forest = prev
	return prev, nil
}

func (r *MemoryForestRepo) Redo(ctx context.Context) (domain.Forest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.redo) == 0 {
		return r.forest, ErrNothingToRedo
	}
	next := r.redo[len(r.redo)-1]
	r.redo = r.redo[:len(r.redo)-1]
	r.undo = append(r.undo, r.forest)
	r.forest = next
	return next, nil
}

func (r *MemoryForestRepo) CanUndo(ctx context.Context) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.undo) > 0
}

func (r *MemoryForestRepo) CanRedo(ctx context.Context) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.redo) > 0
}
