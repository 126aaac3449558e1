package Trees

// Empty returns the tree with no entries.
func Empty[K, V any]() *Node[K, V] {
	return nil
}

// Height of tree n, 0 if n is empty. The height of a balanced tree of
// size N is less than 1.44*log2(N+2).
func Height[K, V any](n *Node[K, V]) int {
	return n.Height()
}

// Insert returns a tree that maps k to v and otherwise holds the entries of n.
// If k is already present its value is replaced and the stored key is kept.
// n is not modified. The function is recursive.
// Time: O(log n); Space: O(log n)
func Insert[K, V any](c Comparator[K], n *Node[K, V], k K, v V) *Node[K, V] {
	r, _ := insert(c, n, k, v)
	return r
}

// insert also reports whether k was absent from n.
func insert[K, V any](c Comparator[K], n *Node[K, V], k K, v V) (*Node[K, V], bool) {
	if n == nil {
		return &Node[K, V]{nil, nil, k, v, 1}, true
	}
	switch c(k, n.k) {
	case Less:
		l, added := insert(c, n.l, k, v)
		return create(l, n.k, n.v, n.r), added
	case Greater:
		r, added := insert(c, n.r, k, v)
		return create(n.l, n.k, n.v, r), added
	}
	return create(n.l, n.k, v, n.r), false
}

// Lookup the value of k in n.
// Time: O(log n); Space: O(1)
func Lookup[K, V any](c Comparator[K], n *Node[K, V], k K) (v V, ok bool) {
	for n != nil {
		switch c(k, n.k) {
		case Less:
			n = n.l
		case Greater:
			n = n.r
		default:
			return n.v, true
		}
	}
	return
}

// Remove returns a tree without k, along with the value k had. If k isn't in
// n, n itself is returned and ok is false. n is not modified. The function is
// recursive.
// Time: O(log n); Space: O(log n)
func Remove[K, V any](c Comparator[K], n *Node[K, V], k K) (t *Node[K, V], v V, ok bool) {
	if n == nil {
		return
	}
	switch c(k, n.k) {
	case Less:
		if t, v, ok = Remove(c, n.l, k); ok {
			return create(t, n.k, n.v, n.r), v, true
		}
		return n, v, false
	case Greater:
		if t, v, ok = Remove(c, n.r, k); ok {
			return create(n.l, n.k, n.v, t), v, true
		}
		return n, v, false
	}
	if n.r == nil {
		// n.l is a leaf or nil; the height change is handled by the ancestors.
		return n.l, n.v, true
	}
	sk, sv, r := popMin(n.r)
	return create(n.l, sk, sv, r), n.v, true
}

// popMin removes the smallest entry of the non-empty tree n. It returns the
// entry and the rebalanced remainder.
func popMin[K, V any](n *Node[K, V]) (K, V, *Node[K, V]) {
	if n.l == nil {
		return n.k, n.v, n.r
	}
	k, v, l := popMin(n.l)
	return k, v, create(l, n.k, n.v, n.r)
}

// ToOrderedList returns all entries of n in ascending order of keys.
// Time: O(n); Space: O(log n) besides the result.
func ToOrderedList[K, V any](n *Node[K, V]) []Pair[K, V] {
	var s []Pair[K, V]
	st := make([]*Node[K, V], 0, n.Height())
	for cur := n; cur != nil || len(st) > 0; {
		for ; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		cur = st[len(st)-1]
		st = st[:len(st)-1]
		s = append(s, Pair[K, V]{cur.k, cur.v})
		cur = cur.r
	}
	return s
}
