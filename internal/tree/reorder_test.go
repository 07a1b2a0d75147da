package tree_test

import (
	"testing"

	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/testutil"
	"github.com/alexanderramin/inputtree/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_ParentTaggedPreOrder(t *testing.T) {
	flat := tree.Flatten(sampleForest())
	require.Len(t, flat, 5)

	want := []struct {
		id, parent string
		depth      int
	}{
		{"R", "", 0}, {"A", "R", 1}, {"B", "A", 2}, {"C", "R", 1}, {"S", "", 0},
	}
	for i, w := range want {
		assert.Equal(t, w.id, flat[i].Node.ID)
		assert.Equal(t, w.parent, flat[i].ParentID)
		assert.Equal(t, w.depth, flat[i].Depth)
		assert.Nil(t, flat[i].Node.Children, "flat entries carry no children")
	}
}

func TestPartition_IncludesAllDescendantDepths(t *testing.T) {
	f := domain.Forest{N("R", N("A", N("B", N("D", N("E")))), N("C"))}
	block, rest := tree.Partition(tree.Flatten(f), "A")

	var blockIDs, restIDs []string
	for _, e := range block {
		blockIDs = append(blockIDs, e.Node.ID)
	}
	for _, e := range rest {
		restIDs = append(restIDs, e.Node.ID)
	}
	assert.Equal(t, []string{"A", "B", "D", "E"}, blockIDs)
	assert.Equal(t, []string{"R", "C"}, restIDs)
}

func TestPartition_MissingID(t *testing.T) {
	flat := tree.Flatten(sampleForest())
	block, rest := tree.Partition(flat, "ghost")
	assert.Empty(t, block)
	assert.Len(t, rest, len(flat))
}

func TestRebuild_RoundTrip(t *testing.T) {
	f := sampleForest()
	assert.Equal(t, tree.IDs(f), tree.IDs(tree.Rebuild(tree.Flatten(f))))

	rebuilt := tree.Rebuild(tree.Flatten(f))
	a, ok := tree.Find(rebuilt, "A")
	require.True(t, ok)
	require.Len(t, a.Children, 1)
	assert.Equal(t, "B", a.Children[0].ID)
}

// R → A → B, drop A on R.
func TestMoveNode_ChildBeforeRoot(t *testing.T) {
	f := domain.Forest{N("R", N("A", N("B")))}

	out, err := tree.MoveNode(f, "A", "R")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].ID)
	assert.Equal(t, "R", out[1].ID)
	require.Len(t, out[0].Children, 1)
	assert.Equal(t, "B", out[0].Children[0].ID)
	assert.Empty(t, out[1].Children)
}

func TestMoveNode_RootBecomesDescendant(t *testing.T) {
	out, err := tree.MoveNode(sampleForest(), "S", "B")
	require.NoError(t, err)

	parent, ok := testutil.ParentOf(out, "S")
	require.True(t, ok)
	assert.Equal(t, "A", parent)
	a, _ := tree.Find(out, "A")
	assert.Equal(t, []string{"S", "B"}, tree.IDs(a.Children))
	assert.Len(t, out, 1)
}

func TestMoveNode_ReparentAcrossTrees(t *testing.T) {
	f := domain.Forest{N("R", N("A", N("B"))), N("S", N("T"))}
	out, err := tree.MoveNode(f, "A", "T")
	require.NoError(t, err)

	s, _ := tree.Find(out, "S")
	assert.Equal(t, []string{"A", "B", "T"}, tree.IDs(s.Children))
	r, _ := tree.Find(out, "R")
	assert.Empty(t, r.Children)
}

func TestMoveNode_DownwardWithinSiblings(t *testing.T) {
	f := domain.Forest{N("R", N("A"), N("B"), N("C"))}
	out, err := tree.MoveNode(f, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, tree.IDs(out[0].Children))
}

func TestMoveNode_OntoOwnDescendantIsNoop(t *testing.T) {
	f := sampleForest()
	out, err := tree.MoveNode(f, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, f, out)

	out, err = tree.MoveNode(f, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, f, out)
}

func TestMoveNode_UnknownIDs(t *testing.T) {
	f := sampleForest()

	out, err := tree.MoveNode(f, "ghost", "R")
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, f, out)

	out, err = tree.MoveNode(f, "A", "ghost")
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, f, out)
}

func TestMoveNode_PreservesNodeFields(t *testing.T) {
	f := domain.Forest{
		N("R", N("A")),
		testutil.NewTestNode("K", testutil.AsCopyOf("R"), testutil.WithCopyCount(5),
			testutil.WithValue("kept"), testutil.WithParentValue("hint")),
	}
	out, err := tree.MoveNode(f, "K", "A")
	require.NoError(t, err)

	k, ok := tree.Find(out, "K")
	require.True(t, ok)
	assert.Equal(t, "kept", k.Value)
	assert.Equal(t, "hint", k.ParentValue)
	assert.True(t, k.IsCopy)
	assert.Equal(t, 5, k.CopyCount)
	assert.Equal(t, "R", k.LineageID)
}

func TestMoveNode_Idempotent(t *testing.T) {
	once, err := tree.MoveNode(sampleForest(), "C", "A")
	require.NoError(t, err)
	twice, err := tree.MoveNode(once, "C", "A")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"R", "C", "A", "B", "S"}, tree.IDs(once))
}
