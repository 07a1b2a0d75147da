package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder_Root(t *testing.T) {
	n := Node{ID: "a"}
	assert.Equal(t, "New Parent", n.Placeholder())
}

func TestPlaceholder_Child(t *testing.T) {
	n := Node{ID: "b", ParentValue: "Fruit"}
	assert.Equal(t, "Fruit -> New Child", n.Placeholder())
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "Apple", Node{Value: "Apple", ParentValue: "Fruit"}.DisplayValue())
	assert.Equal(t, "Fruit -> New Child", Node{ParentValue: "Fruit"}.DisplayValue())
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr())
}

func TestShowCopyBadge(t *testing.T) {
	cases := []struct {
		name  string
		node  Node
		level int
		want  bool
	}{
		{"original root", Node{IsCopy: false}, 0, false},
		{"copy root", Node{IsCopy: true}, 0, true},
		{"nested copy", Node{IsCopy: true}, 1, false},
		{"nested original", Node{}, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.ShowCopyBadge(tc.level))
		})
	}
}

func TestShallow_DropsChildrenOnly(t *testing.T) {
	n := Node{ID: "a", Value: "v", Children: []Node{{ID: "b"}}, IsCopy: true, CopyCount: 3}
	s := n.Shallow()
	assert.Nil(t, s.Children)
	assert.Equal(t, "a", s.ID)
	assert.Equal(t, 3, s.CopyCount)
	assert.Len(t, n.Children, 1, "original must keep its children")
}

func TestForestRootID(t *testing.T) {
	assert.Equal(t, "", Forest{}.RootID())
	assert.Equal(t, "r", Forest{{ID: "r"}, {ID: "s"}}.RootID())
}

func TestErrors_Unwrap(t *testing.T) {
	nf := fmt.Errorf("editing: %w", &NotFoundError{Kind: "node", ID: "x"})
	assert.True(t, IsNotFound(nf))
	assert.Contains(t, nf.Error(), "node not found: x")

	pr := fmt.Errorf("deleting: %w", &ProtectedRootError{ID: "r"})
	assert.True(t, errors.Is(pr, ErrProtectedRoot))
	assert.False(t, IsNotFound(pr))

	var target *ProtectedRootError
	require.True(t, errors.As(pr, &target))
	assert.Equal(t, "r", target.ID)
}
