package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForestItems_PlaceholdersAndBadges(t *testing.T) {
	child := node("c", "")
	child.ParentValue = "Fruit"
	nestedCopy := node("n", "Seed")
	nestedCopy.IsCopy = true
	root := node("r", "Fruit", child, nestedCopy)
	topCopy := node("r2", "Fruit")
	topCopy.IsCopy, topCopy.CopyCount = true, 3

	items := ForestItems(domain.Forest{root, topCopy, node("e", "")}, "c", "")
	require.Len(t, items, 5)

	assert.Equal(t, "Fruit -> New Child", items[1].Title)
	assert.True(t, items[1].Placeholder)
	assert.True(t, items[1].Selected)

	assert.Empty(t, items[2].Badge, "nested copies carry no badge")
	assert.True(t, items[2].IsLast)
	assert.Contains(t, stripANSI(items[3].Badge), "copy #3")

	assert.Equal(t, "New Parent", items[4].Title)
	assert.Equal(t, 0, items[4].Level)
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTree(nil))
}

func TestRenderTree_CursorColumn(t *testing.T) {
	f := domain.Forest{node("r", "Root", node("a", "A"), node("b", "B"))}

	out := stripANSI(RenderTree(ForestItems(f, "a", "")))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  Root", lines[0])
	assert.Equal(t, "› ├─ A", lines[1])
	assert.Equal(t, "  └─ B", lines[2])

	out = stripANSI(RenderTree(ForestItems(f, "a", "b")))
	assert.Contains(t, out, "✥ └─ B")
}

func TestRenderTree_PipesStopUnderLastAncestor(t *testing.T) {
	f := domain.Forest{node("r", "R",
		node("a", "A", node("a1", "A1")),
		node("b", "B", node("b1", "B1")),
	)}
	out := stripANSI(RenderForest(f, false))
	assert.Equal(t, "R\n├─ A\n│  └─ A1\n└─ B\n   └─ B1\n", out)
}

func TestRenderForest_ShowIDs(t *testing.T) {
	f := domain.Forest{node("0123456789", "Root")}
	assert.Equal(t, "Root 01234567\n", stripANSI(RenderForest(f, true)))
}
