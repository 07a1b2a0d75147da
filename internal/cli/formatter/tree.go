package formatter

import (
	"strings"

	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/tree"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	ID          string
	Title       string
	Placeholder bool // Title is a hint for an empty value
	Level       int
	IsLast      bool
	// LastAncestors[i] reports whether the ancestor at level i+1 is the last
	// of its siblings. It decides between a pipe and blank indentation.
	LastAncestors []bool
	Badge         string
	Selected      bool
	Grabbed       bool
	ShowID        bool
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// ForestItems lays out f in pre-order for RenderTree. The copy badge is only
// attached to top-level copies.
func ForestItems(f domain.Forest, selectedID, grabbedID string) []TreeItem {
	items := make([]TreeItem, 0, tree.Count(f))
	var walk func(nodes []domain.Node, level int, lastAncestors []bool)
	walk = func(nodes []domain.Node, level int, lastAncestors []bool) {
		for i, n := range nodes {
			item := TreeItem{
				ID:            n.ID,
				Title:         n.DisplayValue(),
				Level:         level,
				IsLast:        i == len(nodes)-1,
				LastAncestors: lastAncestors,
				Selected:      n.ID == selectedID,
				Grabbed:       n.ID == grabbedID,
			}
			item.Placeholder = n.Value == ""
			if n.ShowCopyBadge(level) {
				item.Badge = CopyBadge(n.CopyCount)
			}
			items = append(items, item)

			if n.HasChildren() {
				next := lastAncestors
				if level > 0 {
					next = append(append([]bool(nil), lastAncestors...), item.IsLast)
				}
				walk(n.Children, level+1, next)
			}
		}
	}
	walk(f, 0, nil)
	return items
}

// RenderTree renders a list of TreeItems as an indented tree using
// box-drawing characters for connectors. Badges are right-aligned. A cursor
// column is drawn only when some item is selected or grabbed.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	cursor := false
	for _, item := range items {
		if item.Selected || item.Grabbed {
			cursor = true
			break
		}
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// Pass 1: build each line's content and track max visible width.
	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				if i-1 < len(item.LastAncestors) && item.LastAncestors[i-1] {
					prefix += treeBlank
				} else {
					prefix += treePipe
				}
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		if item.Placeholder {
			title = StylePlaceholder.Render(title)
		}

		marker := ""
		if cursor {
			switch {
			case item.Grabbed:
				marker = StyleYellowBold.Render("✥ ")
				title = StyleYellowBold.Render(item.Title)
			case item.Selected:
				marker = StyleHeader.Render("› ")
				if !item.Placeholder {
					title = StyleBold.Render(title)
				}
			default:
				marker = "  "
			}
		}

		content := marker + StyleDim.Render(prefix) + title
		if item.ShowID {
			content += " " + TruncID(item.ID)
		}
		lines[idx].content = content
		lines[idx].badge = item.Badge

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	// Pass 2: render with right-aligned badges.
	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}

// RenderForest renders f without a cursor column. With showIDs each line is
// followed by the node's short ID.
func RenderForest(f domain.Forest, showIDs bool) string {
	items := ForestItems(f, "", "")
	if showIDs {
		for i := range items {
			items[i].ShowID = true
		}
	}
	return RenderTree(items)
}
