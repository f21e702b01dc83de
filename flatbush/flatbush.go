// Package flatbush implements a static, Hilbert-packed R-tree: all
// items are inserted up front, then a single Build call packs them
// bottom-up into flat parallel arrays for cache-friendly window
// queries. Unlike rbush, a Flatbush cannot grow or shrink once built.
package flatbush

import (
	"sort"

	"spatialindex/envelope"
)

type buildState int

const (
	stateFilling buildState = iota
	stateBuilt
)

// Flatbush is a static spatial index over a fixed number of items,
// known up front at construction. The zero value is not usable;
// construct one with New.
type Flatbush[T any] struct {
	numItems int
	nodeSize int

	// levelBounds holds a running total of node count at the end of
	// each level, leaf level first and the single root last.
	levelBounds []int

	// boxes and indices are parallel flat arrays of length
	// levelBounds[len(levelBounds)-1] (the total node count). For
	// position p < numItems, indices[p] is the index into items of the
	// payload stored there. For p >= numItems, indices[p] is the start
	// position of that internal node's first child.
	boxes   []envelope.Envelope
	indices []int
	items   []T

	bounds envelope.Envelope
	pos    int
	state  buildState
}

// New constructs an empty Flatbush sized to hold exactly numItems
// items, which must be inserted before Build or an implicit build via
// Query. nodeSize is clamped to [2, 65535]; a zero value defaults to
// 16, matching the reference implementation this design is modeled on.
//
// New panics if numItems is not positive: like the teacher's
// validateParams, this is a caller bug rather than a runtime condition.
func New[T any](numItems int, nodeSize uint16) *Flatbush[T] {
	if numItems <= 0 {
		textPanic("numItems must be > 0")
	}
	if nodeSize == 0 {
		nodeSize = 16
	}
	if nodeSize < 2 {
		nodeSize = 2
	}

	n := numItems
	numNodes := n
	levelBounds := []int{n}
	for n != 1 {
		n = ceilDiv(n, int(nodeSize))
		numNodes += n
		levelBounds = append(levelBounds, numNodes)
	}

	return &Flatbush[T]{
		numItems:    numItems,
		nodeSize:    int(nodeSize),
		levelBounds: levelBounds,
		boxes:       make([]envelope.Envelope, numNodes),
		indices:     make([]int, numNodes),
		items:       make([]T, numItems),
		bounds:      envelope.Empty,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// NumRefs returns the fixed item capacity this Flatbush was constructed
// with.
func (f *Flatbush[T]) NumRefs() int {
	return f.numItems
}

// Count returns the number of items inserted so far.
func (f *Flatbush[T]) Count() int {
	return f.pos
}

// NodeSize returns the child node count used when packing levels.
func (f *Flatbush[T]) NodeSize() int {
	return f.nodeSize
}

// Bounds returns the envelope enclosing every inserted item.
func (f *Flatbush[T]) Bounds() envelope.Envelope {
	return f.bounds
}

// Insert adds one item, in the order items will be assigned Hilbert
// positions during Build. It returns ErrAlreadyBuilt once Build has
// run, or ErrCapacityExceeded once numItems items have been inserted.
func (f *Flatbush[T]) Insert(bounds envelope.Envelope, item T) error {
	if f.state == stateBuilt {
		return ErrAlreadyBuilt
	}
	if f.pos >= f.numItems {
		return ErrCapacityExceeded
	}
	f.boxes[f.pos] = bounds
	f.indices[f.pos] = f.pos
	f.items[f.pos] = item
	f.bounds.ExpandToInclude(bounds)
	f.pos++
	return nil
}

// Remove is always a no-op: Flatbush is immutable once items are
// inserted, so there is nothing to remove. It is legal to call in any
// state and always returns false.
func (f *Flatbush[T]) Remove(envelope.Envelope, T) bool {
	return false
}

// Build packs the inserted items into the flat node arrays: every item
// is assigned a 16-bit Hilbert index of its envelope's centre, the
// items are sorted by that index, and internal nodes are packed
// bottom-up over consecutive runs of nodeSize already-placed entries.
// When numItems <= nodeSize the Hilbert sort is skipped: the items keep
// their insertion order under a single root node.
//
// Build returns ErrIncomplete if fewer than numItems items have been
// inserted. Calling Build again once built is a no-op.
func (f *Flatbush[T]) Build() error {
	if f.state == stateBuilt {
		return nil
	}
	if f.pos != f.numItems {
		return ErrIncomplete
	}

	if f.numItems > f.nodeSize {
		f.hilbertSort()
	}

	pos := 0
	writePos := f.numItems
	for lvl := 0; lvl < len(f.levelBounds)-1; lvl++ {
		end := f.levelBounds[lvl]
		for pos < end {
			nodeStart := pos
			nodeBounds := envelope.Empty
			for i := 0; i < f.nodeSize && pos < end; i++ {
				nodeBounds.ExpandToInclude(f.boxes[pos])
				pos++
			}
			f.boxes[writePos] = nodeBounds
			f.indices[writePos] = nodeStart
			writePos++
		}
	}

	f.state = stateBuilt
	return nil
}

// hilbertSort computes each item's Hilbert index from its envelope
// centre mapped linearly into [0, 2^16-1] per axis, then reorders the
// leaf entries (boxes and indices together) by that index.
func (f *Flatbush[T]) hilbertSort() {
	width := f.bounds.Width()
	height := f.bounds.Height()

	keys := make([]uint32, f.numItems)
	for i := 0; i < f.numItems; i++ {
		cx, cy := f.boxes[i].Centre()
		x := hilbertCoord(cx, f.bounds.MinX, width)
		y := hilbertCoord(cy, f.bounds.MinY, height)
		keys[i] = hilbertFromXY(x, y)
	}

	order := make([]int, f.numItems)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return keys[order[i]] < keys[order[j]] })

	sortedBoxes := make([]envelope.Envelope, f.numItems)
	sortedIndices := make([]int, f.numItems)
	for newPos, oldPos := range order {
		sortedBoxes[newPos] = f.boxes[oldPos]
		sortedIndices[newPos] = f.indices[oldPos]
	}
	copy(f.boxes[:f.numItems], sortedBoxes)
	copy(f.indices[:f.numItems], sortedIndices)
}

// Query returns every item whose bounds intersect search. If the index
// has not yet been built, Build runs implicitly first.
func (f *Flatbush[T]) Query(search envelope.Envelope) []T {
	var results []T
	f.QueryVisitor(search, func(item T) bool {
		results = append(results, item)
		return true
	})
	return results
}

// QueryVisitor calls visit once for every item whose bounds intersect
// search, in Hilbert-packed traversal order. Traversal stops early if
// visit returns false. If the index has not yet been built, Build runs
// implicitly first; it panics if that implicit build fails because
// fewer than numItems items were ever inserted.
func (f *Flatbush[T]) QueryVisitor(search envelope.Envelope, visit func(item T) bool) {
	if f.state != stateBuilt {
		if err := f.Build(); err != nil {
			textPanic(err.Error())
		}
	}
	if search.IsEmpty() {
		return
	}

	nodeIndex := len(f.boxes) - 1
	var stack []int
	for {
		end := minInt(nodeIndex+f.nodeSize, f.levelEnd(nodeIndex))
		for pos := nodeIndex; pos < end; pos++ {
			if !search.Intersects(f.boxes[pos]) {
				continue
			}
			index := f.indices[pos]
			if nodeIndex < f.numItems {
				if !visit(f.items[index]) {
					return
				}
			} else {
				stack = append(stack, index)
			}
		}
		if len(stack) == 0 {
			return
		}
		nodeIndex = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
}

// levelEnd returns the end boundary of the level containing nodeIndex:
// the smallest levelBounds entry strictly greater than nodeIndex.
func (f *Flatbush[T]) levelEnd(nodeIndex int) int {
	for _, b := range f.levelBounds {
		if b > nodeIndex {
			return b
		}
	}
	return f.levelBounds[len(f.levelBounds)-1]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
