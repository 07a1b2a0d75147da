package tree

import (
	"github.com/alexanderramin/inputtree/internal/domain"
)

// CopySubtree deep-clones n. Every clone gets a fresh ID and is tagged as a
// copy; values, lineage, copy counters and child order are preserved.
func CopySubtree(n domain.Node, factory *Factory) domain.Node {
	clone := n
	clone.ID = factory.newID()
	clone.IsCopy = true
	if clone.LineageID == "" {
		clone.LineageID = n.ID
	}
	if len(n.Children) > 0 {
		clone.Children = make([]domain.Node, len(n.Children))
		for i, c := range n.Children {
			clone.Children[i] = CopySubtree(c, factory)
		}
	}
	return clone
}

// Duplicate clones the node with id and its subtree, inserting the clone as
// the next sibling of the original. The original's CopyCount is incremented
// and the clone carries the new count.
func Duplicate(f domain.Forest, factory *Factory, id string) (domain.Forest, error) {
	out, ok := replaceNode(f, id, func(n domain.Node) []domain.Node {
		n.CopyCount++
		clone := CopySubtree(n, factory)
		return []domain.Node{n, clone}
	})
	if !ok {
		return f, notFound(id)
	}
	return out, nil
}
