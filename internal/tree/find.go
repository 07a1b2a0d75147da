package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/inputtree/internal/domain"
)

// Find returns the first node with id in pre-order.
func Find(f domain.Forest, id string) (domain.Node, bool) {
	var found domain.Node
	ok := false
	Walk(f, func(n domain.Node, _ string, _ int) bool {
		if n.ID == id {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// Contains reports whether a node with id exists anywhere in f.
func Contains(f domain.Forest, id string) bool {
	_, ok := Find(f, id)
	return ok
}

// Walk visits every node in pre-order with its parent ID ("" for roots) and
// depth. Returning false from fn stops the walk.
func Walk(f domain.Forest, fn func(n domain.Node, parentID string, depth int) bool) {
	walk(f, "", 0, fn)
}

func walk(nodes []domain.Node, parentID string, depth int, fn func(domain.Node, string, int) bool) bool {
	for _, n := range nodes {
		if !fn(n, parentID, depth) {
			return false
		}
		if !walk(n.Children, n.ID, depth+1, fn) {
			return false
		}
	}
	return true
}

// IDs returns every node ID in pre-order.
func IDs(f domain.Forest) []string {
	var ids []string
	Walk(f, func(n domain.Node, _ string, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Count returns the total number of nodes in f.
func Count(f domain.Forest) int {
	c := 0
	Walk(f, func(domain.Node, string, int) bool {
		c++
		return true
	})
	return c
}

// ResolvePath resolves a dotted positional path such as "0.2.1" (root 0,
// its third child, that child's second child) to a node ID.
func ResolvePath(f domain.Forest, path string) (string, error) {
	parts := strings.Split(strings.TrimSpace(path), ".")
	nodes := []domain.Node(f)
	var cur domain.Node
	for i, p := range parts {
		idx, err := strconv.Atoi(p)
		if err != nil || idx < 0 {
			return "", fmt.Errorf("invalid path segment %q in %q", p, path)
		}
		if idx >= len(nodes) {
			return "", &domain.NotFoundError{Kind: "path", ID: strings.Join(parts[:i+1], ".")}
		}
		cur = nodes[idx]
		nodes = cur.Children
	}
	return cur.ID, nil
}

// ResolveRef resolves a user-supplied reference to a node ID. Refs made only
// of digits and dots are positional paths; anything else is matched as an
// exact ID or a unique ID prefix.
func ResolveRef(f domain.Forest, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty node reference")
	}
	if isPath(ref) {
		return ResolvePath(f, ref)
	}
	var matches []string
	Walk(f, func(n domain.Node, _ string, _ int) bool {
		if n.ID == ref {
			matches = []string{n.ID}
			return false
		}
		if strings.HasPrefix(n.ID, ref) {
			matches = append(matches, n.ID)
		}
		return true
	})
	switch len(matches) {
	case 0:
		return "", &domain.NotFoundError{Kind: "node", ID: ref}
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous node reference %q matches %d nodes", ref, len(matches))
	}
}

func isPath(ref string) bool {
	for _, r := range ref {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// replaceNode substitutes the first node with id (pre-order) with the nodes
// returned by fn. Returning nil removes the node; returning several inserts
// siblings in its place. Only slices on the path to the match are rebuilt.
func replaceNode(nodes []domain.Node, id string, fn func(domain.Node) []domain.Node) ([]domain.Node, bool) {
	for i, n := range nodes {
		if n.ID == id {
			repl := fn(n)
			out := make([]domain.Node, 0, len(nodes)-1+len(repl))
			out = append(out, nodes[:i]...)
			out = append(out, repl...)
			out = append(out, nodes[i+1:]...)
			return out, true
		}
		if len(n.Children) == 0 {
			continue
		}
		if children, ok := replaceNode(n.Children, id, fn); ok {
			out := make([]domain.Node, len(nodes))
			copy(out, nodes)
			out[i].Children = children
			return out, true
		}
	}
	return nodes, false
}

// mapWhere applies fn to every node matching pred, rebuilding only the slices
// that contain a changed node.
func mapWhere(nodes []domain.Node, pred func(domain.Node) bool, fn func(domain.Node) domain.Node) ([]domain.Node, bool) {
	var out []domain.Node
	for i, n := range nodes {
		next := n
		changed := false
		if pred(n) {
			next = fn(n)
			changed = true
		}
		if len(n.Children) > 0 {
			if children, ok := mapWhere(n.Children, pred, fn); ok {
				next.Children = children
				changed = true
			}
		}
		if changed {
			if out == nil {
				out = make([]domain.Node, len(nodes))
				copy(out, nodes)
			}
			out[i] = next
		}
	}
	if out == nil {
		return nodes, false
	}
	return out, true
}
