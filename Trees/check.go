package Trees

import "fmt"

// OrderError is reported by Verify when Child is on the wrong side of Ancestor.
type OrderError[K any] struct {
	Ancestor, Child K
	Left            bool // Child is in the left subtree of Ancestor
}

func (e *OrderError[K]) Error() string {
	side := "right"
	if e.Left {
		side = "left"
	}
	return fmt.Sprintf("key %v is in the %s subtree of key %v", e.Child, side, e.Ancestor)
}

// BalanceError is reported by Verify when the subtree heights of Key differ by more than 1.
type BalanceError[K any] struct {
	Key         K
	Left, Right int
}

func (e *BalanceError[K]) Error() string {
	return fmt.Sprintf("node %v is unbalanced: left height %d, right height %d", e.Key, e.Left, e.Right)
}

// HeightError is reported by Verify when the cached height of Key is wrong.
type HeightError[K any] struct {
	Key            K
	Cached, Actual int
}

func (e *HeightError[K]) Error() string {
	return fmt.Sprintf("node %v caches height %d, actual height is %d", e.Key, e.Cached, e.Actual)
}

// SizeError is reported by Map.Verify when the recorded size is off.
type SizeError struct {
	Recorded, Actual uint
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("map records %d entries, tree has %d", e.Recorded, e.Actual)
}

// Verify checks the order, balance and height invariants of every node of n
// and returns the first violation found, or nil. Keys equal to an ancestor
// count as order violations.
// Time: O(n); Space: O(log n)
func Verify[K, V any](c Comparator[K], n *Node[K, V]) error {
	_, err := verify(c, n, nil, nil)
	return err
}

// verify returns the actual height of n. lo and hi are the closest ancestors
// n is right and left of, respectively.
func verify[K, V any](c Comparator[K], n, lo, hi *Node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && c(n.k, lo.k) != Greater {
		return 0, &OrderError[K]{lo.k, n.k, false}
	}
	if hi != nil && c(n.k, hi.k) != Less {
		return 0, &OrderError[K]{hi.k, n.k, true}
	}
	lh, err := verify(c, n.l, lo, n)
	if err != nil {
		return 0, err
	}
	rh, err := verify(c, n.r, n, hi)
	if err != nil {
		return 0, err
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, &BalanceError[K]{n.k, lh, rh}
	}
	if h := 1 + max(lh, rh); h != n.h {
		return 0, &HeightError[K]{n.k, n.h, h}
	}
	return n.h, nil
}
