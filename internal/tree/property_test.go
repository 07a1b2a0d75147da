package tree_test

import (
	"testing"

	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/alexanderramin/inputtree/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// genForest grows a forest from the initial root through a random sequence of
// engine operations, the same way an editing session would.
func genForest(t *rapid.T, factory *tree.Factory) domain.Forest {
	f := factory.NewForest()
	steps := rapid.IntRange(0, 40).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		ids := tree.IDs(f)
		target := rapid.SampledFrom(ids).Draw(t, "target")
		var err error
		switch rapid.IntRange(0, 5).Draw(t, "op") {
		case 0, 1:
			f, err = tree.AddChild(f, factory, target)
		case 2:
			f, err = tree.Duplicate(f, factory, target)
		case 3:
			f, err = tree.EditValue(f, target, rapid.StringMatching(`[a-z]{0,4}`).Draw(t, "value"))
		case 4:
			hover := rapid.SampledFrom(ids).Draw(t, "hover")
			f, err = tree.MoveNode(f, target, hover)
		case 5:
			f, err = tree.DeleteNode(f, target, nil)
			if err != nil && target == f.RootID() {
				err = nil
			}
		}
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	return f
}

func descendants(n domain.Node) []string {
	var ids []string
	tree.Walk(domain.Forest(n.Children), func(c domain.Node, _ string, _ int) bool {
		ids = append(ids, c.ID)
		return true
	})
	return ids
}

func TestProperty_IDsUnique(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genForest(t, tree.NewFactory(tree.SequentialIDs("p")))
		seen := map[string]bool{}
		for _, id := range tree.IDs(f) {
			if seen[id] {
				t.Fatalf("duplicate id %s", id)
			}
			seen[id] = true
		}
	})
}

func TestProperty_DeleteGuard(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genForest(t, tree.NewFactory(tree.SequentialIDs("p")))
		out, err := tree.DeleteNode(f, f.RootID(), tree.PositionGuard{})
		require.ErrorIs(t, err, domain.ErrProtectedRoot)
		require.Equal(t, f, out)
	})
}

func TestProperty_DuplicateFidelity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		factory := tree.NewFactory(tree.SequentialIDs("p"))
		f := genForest(t, factory)
		id := rapid.SampledFrom(tree.IDs(f)).Draw(t, "id")
		orig, _ := tree.Find(f, id)

		out, err := tree.Duplicate(f, factory, id)
		require.NoError(t, err)

		after, _ := tree.Find(out, id)
		require.Equal(t, orig.CopyCount+1, after.CopyCount)

		flat := tree.Flatten(out)
		var clone domain.Node
		for i, e := range flat {
			if e.Node.ID == id {
				// The clone is the next entry sharing the original's parent
				// after the original's subtree.
				for _, next := range flat[i+1:] {
					if next.ParentID == e.ParentID {
						clone, _ = tree.Find(out, next.Node.ID)
						break
					}
				}
				break
			}
		}
		require.NotEmpty(t, clone.ID)
		assert.NotEqual(t, id, clone.ID)
		assert.True(t, clone.IsCopy)
		assert.Equal(t, orig.Value, clone.Value)
		require.Len(t, clone.Children, len(orig.Children))
		for i := range orig.Children {
			assert.Equal(t, orig.Children[i].Value, clone.Children[i].Value)
			assert.True(t, clone.Children[i].IsCopy)
		}
	})
}

func TestProperty_MoveRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genForest(t, tree.NewFactory(tree.SequentialIDs("p")))
		ids := tree.IDs(f)
		dragged := rapid.SampledFrom(ids).Draw(t, "dragged")
		hovered := rapid.SampledFrom(ids).Draw(t, "hovered")
		before, _ := tree.Find(f, dragged)

		out, err := tree.MoveNode(f, dragged, hovered)
		require.NoError(t, err)

		assert.ElementsMatch(t, ids, tree.IDs(out))
		assert.ElementsMatch(t, ids, tree.IDs(tree.Rebuild(tree.Flatten(out))))

		after, ok := tree.Find(out, dragged)
		require.True(t, ok)
		assert.ElementsMatch(t, descendants(before), descendants(after))
	})
}

func TestProperty_EditLocality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := genForest(t, tree.NewFactory(tree.SequentialIDs("p")))
		id := rapid.SampledFrom(tree.IDs(f)).Draw(t, "id")
		value := rapid.String().Draw(t, "value")

		out, err := tree.EditValue(f, id, value)
		require.NoError(t, err)

		before, after := tree.Flatten(f), tree.Flatten(out)
		require.Len(t, after, len(before))
		for i := range before {
			if before[i].Node.ID == id {
				assert.Equal(t, value, after[i].Node.Value)
				want := before[i]
				want.Node.Value = value
				assert.Equal(t, want, after[i])
				continue
			}
			assert.Equal(t, before[i], after[i])
		}
	})
}
