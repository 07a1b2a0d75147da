package tree

import (
	"github.com/alexanderramin/inputtree/internal/domain"
)

// FlatEntry is one node of a flattened forest. Node carries no children;
// the hierarchy lives in ParentID ("" for roots).
type FlatEntry struct {
	Node     domain.Node
	ParentID string
	Depth    int
}

// Flatten lists the forest in pre-order.
func Flatten(f domain.Forest) []FlatEntry {
	flat := make([]FlatEntry, 0, Count(f))
	Walk(f, func(n domain.Node, parentID string, depth int) bool {
		flat = append(flat, FlatEntry{Node: n.Shallow(), ParentID: parentID, Depth: depth})
		return true
	})
	return flat
}

// Partition splits flat into the block made of draggedID and every entry
// transitively descended from it, and the remaining entries. Both keep their
// relative order. The block is empty when draggedID is absent.
func Partition(flat []FlatEntry, draggedID string) (block, rest []FlatEntry) {
	inBlock := map[string]bool{}
	for _, e := range flat {
		// Pre-order guarantees a parent precedes its descendants, so one pass
		// closes over every depth.
		if e.Node.ID == draggedID || (e.ParentID != "" && inBlock[e.ParentID]) {
			inBlock[e.Node.ID] = true
			block = append(block, e)
			continue
		}
		rest = append(rest, e)
	}
	return block, rest
}

// Rebuild reconstructs a forest from a parent-tagged list. Siblings appear in
// list order. Entries whose parent is not in the list are dropped.
func Rebuild(flat []FlatEntry) domain.Forest {
	groups := make(map[string][]domain.Node, len(flat))
	for _, e := range flat {
		groups[e.ParentID] = append(groups[e.ParentID], e.Node)
	}
	var build func(nodes []domain.Node) []domain.Node
	build = func(nodes []domain.Node) []domain.Node {
		out := make([]domain.Node, len(nodes))
		for i, n := range nodes {
			n.Children = nil
			if kids := groups[n.ID]; len(kids) > 0 {
				n.Children = build(kids)
			}
			out[i] = n
		}
		return out
	}
	return domain.Forest(build(groups[""]))
}

// MoveNode relocates draggedID and its descendants so that draggedID becomes
// the sibling immediately before hoveredID, under hoveredID's parent. Dropping
// onto the dragged node itself or one of its descendants changes nothing.
func MoveNode(f domain.Forest, draggedID, hoveredID string) (domain.Forest, error) {
	flat := Flatten(f)
	block, rest := Partition(flat, draggedID)
	if len(block) == 0 {
		return f, notFound(draggedID)
	}

	at := -1
	for i, e := range rest {
		if e.Node.ID == hoveredID {
			at = i
			break
		}
	}
	if at < 0 {
		for _, e := range block {
			if e.Node.ID == hoveredID {
				return f, nil
			}
		}
		return f, notFound(hoveredID)
	}

	block[0].ParentID = rest[at].ParentID

	moved := make([]FlatEntry, 0, len(flat))
	moved = append(moved, rest[:at]...)
	moved = append(moved, block...)
	moved = append(moved, rest[at:]...)
	return Rebuild(moved), nil
}
