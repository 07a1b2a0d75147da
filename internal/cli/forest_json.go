package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/tree"
	"github.com/goccy/go-json"
)

// writeForestJSON writes f as indented JSON followed by a newline.
func writeForestJSON(w io.Writer, f domain.Forest) error {
	if f == nil {
		f = domain.Forest{}
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding forest: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// readForestJSON decodes a forest written by writeForestJSON. Every node
// needs a unique non-empty ID. Missing copy counts and lineages take the
// values a freshly created node would have.
func readForestJSON(r io.Reader) (domain.Forest, error) {
	var f domain.Forest
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding forest: %w", err)
	}
	if len(f) == 0 {
		return nil, fmt.Errorf("decoding forest: at least one root is required")
	}

	seen := make(map[string]bool, tree.Count(f))
	var bad error
	tree.Walk(f, func(n domain.Node, _ string, _ int) bool {
		switch {
		case n.ID == "":
			bad = fmt.Errorf("decoding forest: node with value %q has no id", n.Value)
		case seen[n.ID]:
			bad = fmt.Errorf("decoding forest: duplicate id %q", n.ID)
		}
		seen[n.ID] = true
		return bad == nil
	})
	if bad != nil {
		return nil, bad
	}
	return normalize(f), nil
}

func normalize(nodes []domain.Node) []domain.Node {
	out := make([]domain.Node, len(nodes))
	for i, n := range nodes {
		if n.CopyCount < 1 {
			n.CopyCount = 1
		}
		if n.LineageID == "" {
			n.LineageID = n.ID
		}
		if len(n.Children) > 0 {
			n.Children = normalize(n.Children)
		}
		out[i] = n
	}
	return out
}
