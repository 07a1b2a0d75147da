package tree

import (
	"github.com/alexanderramin/inputtree/internal/domain"
)

// Guard decides which node ID is protected from deletion.
type Guard interface {
	ProtectedID(f domain.Forest) string
}

// PositionGuard protects whichever node currently occupies top-level
// position 0.
type PositionGuard struct{}

func (PositionGuard) ProtectedID(f domain.Forest) string { return f.RootID() }

// TokenGuard protects a fixed node ID captured when the forest was created.
type TokenGuard struct {
	Token string
}

func (g TokenGuard) ProtectedID(domain.Forest) string { return g.Token }

func notFound(id string) error {
	return &domain.NotFoundError{Kind: "node", ID: id}
}

// EditValue replaces the value of the node with id.
func EditValue(f domain.Forest, id, value string) (domain.Forest, error) {
	out, ok := replaceNode(f, id, func(n domain.Node) []domain.Node {
		n.Value = value
		return []domain.Node{n}
	})
	if !ok {
		return f, notFound(id)
	}
	return out, nil
}

// AddChild appends a new empty child to the node with parentID. The child's
// ParentValue records the parent's value at this moment.
func AddChild(f domain.Forest, factory *Factory, parentID string) (domain.Forest, error) {
	out, ok := replaceNode(f, parentID, func(n domain.Node) []domain.Node {
		children := make([]domain.Node, len(n.Children), len(n.Children)+1)
		copy(children, n.Children)
		n.Children = append(children, factory.NewNode("", n.Value))
		return []domain.Node{n}
	})
	if !ok {
		return f, notFound(parentID)
	}
	return out, nil
}

// DeleteNode removes the node with id and its whole subtree, unless guard
// protects it. A nil guard uses PositionGuard.
func DeleteNode(f domain.Forest, id string, guard Guard) (domain.Forest, error) {
	if guard == nil {
		guard = PositionGuard{}
	}
	if protected := guard.ProtectedID(f); protected != "" && protected == id {
		return f, &domain.ProtectedRootError{ID: id}
	}
	out, ok := replaceNode(f, id, func(domain.Node) []domain.Node { return nil })
	if !ok {
		return f, notFound(id)
	}
	return out, nil
}

// BroadcastUpdate sets value on the node with id and on every copy-tagged node
// in the forest, whatever lineage it belongs to.
func BroadcastUpdate(f domain.Forest, id, value string) (domain.Forest, error) {
	if !Contains(f, id) {
		return f, notFound(id)
	}
	out, _ := mapWhere(f, func(n domain.Node) bool {
		return n.ID == id || n.IsCopy
	}, func(n domain.Node) domain.Node {
		n.Value = value
		return n
	})
	return out, nil
}

// BroadcastLineage sets value on the node with id and on every copy that
// shares its lineage.
func BroadcastLineage(f domain.Forest, id, value string) (domain.Forest, error) {
	target, ok := Find(f, id)
	if !ok {
		return f, notFound(id)
	}
	lineage := target.LineageID
	out, _ := mapWhere(f, func(n domain.Node) bool {
		return n.ID == id || (n.IsCopy && lineage != "" && n.LineageID == lineage)
	}, func(n domain.Node) domain.Node {
		n.Value = value
		return n
	})
	return out, nil
}
