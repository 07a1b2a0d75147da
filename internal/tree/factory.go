// Package tree implements the input tree mutation engine.
//
// Every operation takes a domain.Forest and returns a replacement Forest. The
// input is never modified: slices along the path to the changed node are
// rebuilt and everything else is shared with the input.
package tree

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/google/uuid"
)

// IDFunc returns a fresh identifier on every call.
type IDFunc func() string

// Factory constructs new nodes.
type Factory struct {
	newID IDFunc
}

// NewFactory returns a Factory that draws IDs from newID. A nil newID uses
// random UUIDs.
func NewFactory(newID IDFunc) *Factory {
	if newID == nil {
		newID = UUIDs
	}
	return &Factory{newID: newID}
}

// UUIDs generates version 4 UUID strings.
func UUIDs() string {
	return uuid.New().String()
}

// SequentialIDs returns an IDFunc yielding prefix-1, prefix-2, ... It is safe
// for concurrent use.
func SequentialIDs(prefix string) IDFunc {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// NewNode returns an original node with a fresh ID and no children.
func (f *Factory) NewNode(value, parentValue string) domain.Node {
	id := f.newID()
	return domain.Node{
		ID:          id,
		Value:       value,
		ParentValue: parentValue,
		CopyCount:   1,
		LineageID:   id,
	}
}

// NewForest returns a forest holding a single empty root, the initial state of
// an editing session.
func (f *Factory) NewForest() domain.Forest {
	return domain.Forest{f.NewNode("", "")}
}
