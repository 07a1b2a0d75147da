package testutil

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/repository"
)

// NewTestStore creates an in-memory forest store seeded with f. A nil f
// seeds a single empty root with ID "root".
func NewTestStore(t *testing.T, f domain.Forest) *repository.MemoryForestRepo {
	t.Helper()
	if f == nil {
		f = domain.Forest{NewTestNode("root", WithValue(""))}
	}
	return repository.NewMemoryForestRepo(f, 0)
}

// FailOnNthUpdateStore wraps a store and injects Err on the Nth Update call,
// counted from 1. Reads and history calls pass through.
type FailOnNthUpdateStore struct {
	repository.ForestStore
	FailOn int32
	Err    error

	count atomic.Int32
}

func (s *FailOnNthUpdateStore) Update(ctx context.Context, fn func(domain.Forest) (domain.Forest, error)) (domain.Forest, error) {
	if s.count.Add(1) == s.FailOn {
		f, _ := s.ForestStore.Get(ctx)
		return f, s.Err
	}
	return s.ForestStore.Update(ctx, fn)
}
