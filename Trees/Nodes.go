package Trees

// Node is a node of a persistent AVL tree, and a *Node is a whole tree. nil
// is the empty tree.
// A Node is never modified after construction. Operations that change a tree
// allocate new nodes along the touched path and point to the untouched
// subtrees of the old version, so every old root stays a valid tree.
type Node[K, V any] struct {
	l, r *Node[K, V]
	k    K
	v    V
	h    int // 1 for a leaf
}

// Key of the node.
func (u *Node[K, V]) Key() K {
	return u.k
}

// Value of the node.
func (u *Node[K, V]) Value() V {
	return u.v
}

// Left subtree, nil if absent. Also nil for the empty tree.
func (u *Node[K, V]) Left() *Node[K, V] {
	if u == nil {
		return nil
	}
	return u.l
}

// Right subtree, nil if absent. Also nil for the empty tree.
func (u *Node[K, V]) Right() *Node[K, V] {
	if u == nil {
		return nil
	}
	return u.r
}

// Height of the subtree, 0 for the empty tree.
func (u *Node[K, V]) Height() int {
	if u == nil {
		return 0
	}
	return u.h
}

// mk builds a node with a recomputed height and no balancing.
func mk[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{l, r, k, v, 1 + max(l.Height(), r.Height())}
}

// rotateLeft builds the node (l, k, v, r) rotated left around it: r becomes
// the root, and r.l moves under the new left child. r.r is shared as is.
// Time: O(1); Space: O(1)
func rotateLeft[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	return mk(mk(l, k, v, r.l), r.k, r.v, r.r)
}

// rotateRight is the mirror of rotateLeft with l as the pivot.
// Time: O(1); Space: O(1)
func rotateRight[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	return mk(l.l, l.k, l.v, mk(l.r, k, v, r))
}

// create builds the node (l, k, v, r) and restores its balance. l and r must
// be balanced and their heights may differ by at most 2, which is what a
// single insert or remove below the node can cause.
// The cases are tested in a fixed order and the first match wins. After a
// remove both children of l can be taller than r; left-right is only taken
// when l.r is strictly taller than l.l, otherwise l would be left unbalanced.
func create[K, V any](l *Node[K, V], k K, v V, r *Node[K, V]) *Node[K, V] {
	lh, rh := l.Height(), r.Height()
	switch {
	case r != nil && r.r.Height() > lh: // right-right
		return rotateLeft(l, k, v, r)
	case r != nil && r.l.Height() > lh: // right-left
		return rotateLeft(l, k, v, rotateRight(r.l, r.k, r.v, r.r))
	case l != nil && l.r.Height() > rh && l.r.Height() > l.l.Height(): // left-right
		return rotateRight(rotateLeft(l.l, l.k, l.v, l.r), k, v, r)
	case l != nil && l.l.Height() > rh: // left-left
		return rotateRight(l, k, v, r)
	}
	return mk(l, k, v, r)
}
