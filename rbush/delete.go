package rbush

import "spatialindex/envelope"

// Remove deletes a single item whose bounds is bounds and which compares
// equal (under the tree's configured equality comparer) to item. It
// returns true if an item was found and removed, false otherwise.
//
// Per spec §4.5, only nodes that become empty are detached; under-full
// nodes left by a delete are kept as they are, and their entries are not
// reinserted elsewhere: this design accepts the resulting mild structural
// imbalance in exchange for a simpler delete path.
func (t *RTree[T]) Remove(bounds envelope.Envelope, item T) bool {
	path, leaf, idx := t.findLeafEntry(bounds, item)
	if leaf == nil {
		return false
	}

	leaf.items = append(leaf.items[:idx], leaf.items[idx+1:]...)

	t.condense(path)

	// Shorten the tree if the root has decayed to a single non-leaf
	// child; its child becomes the new root. If the root lost every
	// child (the tree became empty), reset to a fresh empty leaf root
	// so the "empty tree" invariant (leaf, height 1, no children) holds.
	for t.root.height > 1 && !t.root.leaf && len(t.root.kids) == 1 {
		t.root = t.root.kids[0]
	}
	if !t.root.leaf && len(t.root.kids) == 0 {
		t.root = newLeaf[T]()
	}
	return true
}

// findLeafEntry performs the depth-first, bounds-guided search described
// in spec §4.5: a subtree is only descended into if its bounds contain
// the target envelope. It returns the descent path (root first, leaf
// last), the leaf node holding the match, and the match's index within
// that leaf — or a nil leaf if no match was found.
func (t *RTree[T]) findLeafEntry(bounds envelope.Envelope, item T) (path []*node[T], leaf *node[T], idx int) {
	var search func(n *node[T], trail []*node[T]) bool
	search = func(n *node[T], trail []*node[T]) bool {
		trail = append(trail, n)
		if n.leaf {
			for i, it := range n.items {
				if t.equal(it.Item, item) {
					path, leaf, idx = trail, n, i
					return true
				}
			}
			return false
		}
		for _, kid := range n.kids {
			if !kid.bounds.Contains(bounds) {
				continue
			}
			if search(kid, trail) {
				return true
			}
		}
		return false
	}
	search(t.root, nil)
	return
}

// condense walks the recorded path from the deepest ancestor toward the
// root. A node that becomes empty is detached from its parent; every
// other node on the path has its bounds recomputed from its remaining
// children.
func (t *RTree[T]) condense(path []*node[T]) {
	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		parent := path[i-1]
		if n.numChildren() == 0 {
			removeChild(parent, n)
		} else {
			n.recalculateBounds()
		}
	}
	if len(path) > 0 {
		path[0].recalculateBounds()
	}
}

// removeChild detaches child from parent's kids slice.
func removeChild[T any](parent, child *node[T]) {
	for i, k := range parent.kids {
		if k == child {
			parent.kids = append(parent.kids[:i], parent.kids[i+1:]...)
			return
		}
	}
}
