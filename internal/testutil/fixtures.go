package testutil

import (
	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/tree"
)

// NodeOption customizes a fixture node.
type NodeOption func(*domain.Node)

func WithValue(v string) NodeOption {
	return func(n *domain.Node) {
		n.Value = v
	}
}

func WithParentValue(v string) NodeOption {
	return func(n *domain.Node) {
		n.ParentValue = v
	}
}

// AsCopyOf marks the node as a copy in the lineage of originalID.
func AsCopyOf(originalID string) NodeOption {
	return func(n *domain.Node) {
		n.IsCopy = true
		n.LineageID = originalID
	}
}

func WithCopyCount(c int) NodeOption {
	return func(n *domain.Node) {
		n.CopyCount = c
	}
}

func WithChildren(children ...domain.Node) NodeOption {
	return func(n *domain.Node) {
		n.Children = children
	}
}

// NewTestNode builds an original node with the given ID. The value defaults to
// the ID so assertions can read values directly.
func NewTestNode(id string, opts ...NodeOption) domain.Node {
	n := domain.Node{
		ID:        id,
		Value:     id,
		CopyCount: 1,
		LineageID: id,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// N is shorthand for a node whose value is its ID, with children.
func N(id string, children ...domain.Node) domain.Node {
	return NewTestNode(id, WithChildren(children...))
}

// NewTestFactory returns a factory with deterministic IDs new-1, new-2, ...
func NewTestFactory() *tree.Factory {
	return tree.NewFactory(tree.SequentialIDs("new"))
}

// Values returns the node values of f in pre-order.
func Values(f domain.Forest) []string {
	var vals []string
	tree.Walk(f, func(n domain.Node, _ string, _ int) bool {
		vals = append(vals, n.Value)
		return true
	})
	return vals
}

// ParentOf returns the parent ID recorded for id by a pre-order walk.
func ParentOf(f domain.Forest, id string) (string, bool) {
	parent, found := "", false
	tree.Walk(f, func(n domain.Node, parentID string, _ int) bool {
		if n.ID == id {
			parent, found = parentID, true
			return false
		}
		return true
	})
	return parent, found
}
