package rbush

// IntegrityCheck walks the whole tree verifying the structural invariants
// from spec §8: every leaf is at the same depth, every non-root node has
// between minEntries and maxEntries children, and every node's bounds is
// exactly the union of its children's bounds. It returns the first
// violation found, or nil if the tree is structurally sound. It exists to
// back property tests and fuzzing, in the spirit of the "debug helpers"
// called for in spec §9, hoisted from a test-only helper into an exported
// method so callers outside this package's own tests can use it too.
func (t *RTree[T]) IntegrityCheck() error {
	var leafDepth = -1
	var walk func(n *node[T], depth int, isRoot bool) error
	walk = func(n *node[T], depth int, isRoot bool) error {
		count := n.numChildren()
		if !isRoot && (count < t.minEntries || count > t.maxEntries) {
			return fmtErr("node at depth %d has %d children, want [%d,%d]", depth, count, t.minEntries, t.maxEntries)
		}
		want := n.bounds
		n.recalculateBounds()
		if want != n.bounds {
			return fmtErr("node at depth %d has stale bounds %v, recomputed %v", depth, want, n.bounds)
		}
		if n.leaf {
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				return fmtErr("leaf at depth %d, want depth %d", depth, leafDepth)
			}
			return nil
		}
		for _, kid := range n.kids {
			if kid.height != n.height-1 {
				return fmtErr("child height %d at depth %d, want %d", kid.height, depth+1, n.height-1)
			}
			if err := walk(kid, depth+1, false); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(t.root, 0, true)
}
