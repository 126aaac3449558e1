package Trees

import "golang.org/x/exp/constraints"

// Map is an immutable ordered map: a tree root together with its Comparator
// and the number of entries. Methods that change the content return a new Map
// and leave the receiver as it was, so a Map can be shared between goroutines
// freely. The zero value isn't usable, create Maps with New or NewFunc.
type Map[K, V any] struct {
	root *Node[K, V]
	cmp  Comparator[K]
	size uint
}

// New returns an empty Map for the builtin ordered types.
func New[K constraints.Ordered, V any]() Map[K, V] {
	return Map[K, V]{cmp: Ordered[K]}
}

// NewFunc returns an empty Map ordered by c.
func NewFunc[K, V any](c Comparator[K]) Map[K, V] {
	return Map[K, V]{cmp: c}
}

// Put k with value v.
func (u Map[K, V]) Put(k K, v V) Map[K, V] {
	root, added := insert(u.cmp, u.root, k, v)
	if added {
		u.size++
	}
	u.root = root
	return u
}

// Get the value of k.
func (u Map[K, V]) Get(k K) (V, bool) {
	return Lookup(u.cmp, u.root, k)
}

// Has k.
func (u Map[K, V]) Has(k K) bool {
	_, ok := Lookup(u.cmp, u.root, k)
	return ok
}

// Delete k. Returns the resulting Map and the value k had in u.
func (u Map[K, V]) Delete(k K) (Map[K, V], V, bool) {
	root, v, ok := Remove(u.cmp, u.root, k)
	if ok {
		u.root = root
		u.size--
	}
	return u, v, ok
}

// Len is the number of entries.
func (u Map[K, V]) Len() uint {
	return u.size
}

// Height of the underlying tree, 0 if u is empty.
func (u Map[K, V]) Height() int {
	return u.root.Height()
}

// Root node of the underlying tree, nil if u is empty.
func (u Map[K, V]) Root() *Node[K, V] {
	return u.root
}

// Pairs in ascending order of keys.
func (u Map[K, V]) Pairs() []Pair[K, V] {
	return ToOrderedList(u.root)
}

// Keys in ascending order.
func (u Map[K, V]) Keys() []K {
	ks := make([]K, 0, u.size)
	for _, p := range ToOrderedList(u.root) {
		ks = append(ks, p.Key)
	}
	return ks
}

// Verify is Verify on the underlying tree, plus a check of Len.
func (u Map[K, V]) Verify() error {
	if err := Verify(u.cmp, u.root); err != nil {
		return err
	}
	if n := uint(len(ToOrderedList(u.root))); n != u.size {
		return &SizeError{u.size, n}
	}
	return nil
}
