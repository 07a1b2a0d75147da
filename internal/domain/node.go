package domain

// Node is a single labeled entry in the input tree.
//
// Nodes are values: a Forest returned by an engine operation must never be
// modified in place. Operations build replacement slices along the path they
// change and share everything else.
type Node struct {
	ID          string `json:"id"`
	Value       string `json:"value"`
	ParentValue string `json:"parentValue,omitempty"` // parent's Value when this node was created; display hint only
	Children    []Node `json:"children,omitempty"`
	IsCopy      bool   `json:"isCopy,omitempty"`
	CopyCount   int    `json:"copyCount"`
	LineageID   string `json:"lineageId,omitempty"` // ID of the original this node was copied from; own ID for originals
}

// Forest is the ordered list of root nodes.
type Forest []Node

// Placeholder returns the hint shown for an empty value.
func (n Node) Placeholder() string {
	if n.ParentValue != "" {
		return n.ParentValue + " -> New Child"
	}
	return "New Parent"
}

// DisplayValue returns the value, or the placeholder when the value is empty.
func (n Node) DisplayValue() string {
	return CoalesceStr(n.Value, n.Placeholder())
}

// ShowCopyBadge reports whether the copy badge is displayed for a node at the
// given depth. Only top-level copies carry the badge.
func (n Node) ShowCopyBadge(level int) bool {
	return n.IsCopy && level == 0
}

// HasChildren reports whether the node has at least one child.
func (n Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Shallow returns n without its children.
func (n Node) Shallow() Node {
	n.Children = nil
	return n
}

// RootID returns the ID of the node at top-level position 0, or "" for an
// empty forest.
func (f Forest) RootID() string {
	if len(f) == 0 {
		return ""
	}
	return f[0].ID
}
