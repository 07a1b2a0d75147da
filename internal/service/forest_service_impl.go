package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/inputtree/internal/config"
	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/repository"
	"github.com/alexanderramin/inputtree/internal/tree"
)

// errUnchanged aborts a store update whose result matches the current forest.
var errUnchanged = errors.New("forest unchanged")

type forestService struct {
	store    repository.ForestStore
	factory  *tree.Factory
	guard    domain.RootGuard
	scope    domain.BroadcastScope
	observer UseCaseObserver
}

func NewForestService(
	store repository.ForestStore,
	factory *tree.Factory,
	cfg config.Config,
	observers ...UseCaseObserver,
) ForestService {
	if factory == nil {
		factory = tree.NewFactory(nil)
	}
	return &forestService{
		store:    store,
		factory:  factory,
		guard:    cfg.RootGuard,
		scope:    cfg.BroadcastScope,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *forestService) Forest(ctx context.Context) (domain.Forest, error) {
	return s.store.Get(ctx)
}

func (s *forestService) Seed(ctx context.Context, f domain.Forest) (out domain.Forest, err error) {
	startedAt := time.Now().UTC()
	if f == nil {
		f = s.factory.NewForest()
	}
	fields := map[string]any{"roots": len(f)}
	defer s.observe(ctx, "seed", startedAt, fields, &err)

	if err = s.store.Seed(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *forestService) AddChild(ctx context.Context, parentID string) (domain.Forest, error) {
	return s.apply(ctx, "add-child", map[string]any{"node_id": parentID}, func(f domain.Forest) (domain.Forest, error) {
		return tree.AddChild(f, s.factory, parentID)
	})
}

func (s *forestService) EditValue(ctx context.Context, id, value string) (domain.Forest, error) {
	return s.apply(ctx, "edit-value", map[string]any{"node_id": id}, func(f domain.Forest) (domain.Forest, error) {
		return tree.EditValue(f, id, value)
	})
}

func (s *forestService) Duplicate(ctx context.Context, id string) (domain.Forest, error) {
	return s.apply(ctx, "duplicate", map[string]any{"node_id": id}, func(f domain.Forest) (domain.Forest, error) {
		return tree.Duplicate(f, s.factory, id)
	})
}

func (s *forestService) BroadcastUpdate(ctx context.Context, id, value string) (domain.Forest, error) {
	fields := map[string]any{"node_id": id, "scope": string(s.scope)}
	return s.apply(ctx, "broadcast-update", fields, func(f domain.Forest) (domain.Forest, error) {
		if s.scope == domain.ScopeLineage {
			return tree.BroadcastLineage(f, id, value)
		}
		return tree.BroadcastUpdate(f, id, value)
	})
}

func (s *forestService) Delete(ctx context.Context, id string) (domain.Forest, error) {
	guard, err := s.rootGuard(ctx)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, "delete", map[string]any{"node_id": id}, func(f domain.Forest) (domain.Forest, error) {
		return tree.DeleteNode(f, id, guard)
	})
}

func (s *forestService) Move(ctx context.Context, draggedID, hoveredID string) (domain.Forest, error) {
	fields := map[string]any{"node_id": draggedID, "hover_id": hoveredID}
	return s.apply(ctx, "move", fields, func(f domain.Forest) (domain.Forest, error) {
		return tree.MoveNode(f, draggedID, hoveredID)
	})
}

func (s *forestService) Undo(ctx context.Context) (out domain.Forest, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer s.observe(ctx, "undo", startedAt, fields, &err)
	return s.store.Undo(ctx)
}

func (s *forestService) Redo(ctx context.Context) (out domain.Forest, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer s.observe(ctx, "redo", startedAt, fields, &err)
	return s.store.Redo(ctx)
}

func (s *forestService) CanUndo(ctx context.Context) bool { return s.store.CanUndo(ctx) }

func (s *forestService) CanRedo(ctx context.Context) bool { return s.store.CanRedo(ctx) }

// apply runs op inside a single store update. Missing nodes and unchanged
// results leave the store and its history untouched.
func (s *forestService) apply(ctx context.Context, name string, fields map[string]any, op func(domain.Forest) (domain.Forest, error)) (out domain.Forest, err error) {
	startedAt := time.Now().UTC()
	defer s.observe(ctx, name, startedAt, fields, &err)

	out, err = s.store.Update(ctx, func(f domain.Forest) (domain.Forest, error) {
		next, opErr := op(f)
		if opErr != nil {
			return f, opErr
		}
		if sameForest(f, next) {
			return f, errUnchanged
		}
		return next, nil
	})
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, errUnchanged):
		fields["noop"] = true
		return out, nil
	case domain.IsNotFound(err):
		fields["noop"] = true
		fields["reason"] = err.Error()
		return out, nil
	default:
		return out, err
	}
}

func (s *forestService) rootGuard(ctx context.Context) (tree.Guard, error) {
	if s.guard != domain.GuardToken {
		return tree.PositionGuard{}, nil
	}
	token, err := s.store.RootToken(ctx)
	if err != nil {
		return nil, err
	}
	return tree.TokenGuard{Token: token}, nil
}

func (s *forestService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}

// sameForest reports whether b has the same nodes as a, in the same
// order and nesting. Engine ops rebuild the path they touch even when the
// result matches their input, so identity alone is not enough.
func sameForest(a, b domain.Forest) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 || &a[0] == &b[0] {
		return true
	}
	for i := range a {
		if !sameNode(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameNode(a, b domain.Node) bool {
	if a.ID != b.ID || a.Value != b.Value || a.ParentValue != b.ParentValue ||
		a.IsCopy != b.IsCopy || a.CopyCount != b.CopyCount || a.LineageID != b.LineageID {
		return false
	}
	return sameForest(a.Children, b.Children)
}
