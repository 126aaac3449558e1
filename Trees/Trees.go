package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Order is the result of a three-way comparison. Only Less, Equal and Greater
// exist; the zero value is Equal. Since the field is unexported, no other
// value can be constructed outside the package, so every switch over an Order
// is exhaustive.
type Order struct {
	o int8
}

var (
	Less    = Order{-1}
	Equal   = Order{0}
	Greater = Order{1}
)

func (u Order) String() string {
	switch u {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	}
	return "Equal"
}

// Comparator orders keys of one tree. It must be a total order: every key
// used in the same tree must compare consistently against every other,
// otherwise the shape of the tree is undefined.
type Comparator[K any] func(a, b K) Order

// Ordered is the Comparator for the builtin ordered types. NaN sorts before
// every other float and equals itself, following cmp.Compare.
func Ordered[K constraints.Ordered](a, b K) Order {
	return FromInt(cmp.Compare(a, b))
}

// FromInt converts a sign-valued comparison result into an Order.
func FromInt(c int) Order {
	if c < 0 {
		return Less
	} else if c > 0 {
		return Greater
	}
	return Equal
}

// FromCompare adapts functions like cmp.Compare, strings.Compare or bytes.Compare.
func FromCompare[K any](f func(a, b K) int) Comparator[K] {
	return func(a, b K) Order {
		return FromInt(f(a, b))
	}
}

// FromGods adapts a gods comparator, e.g. utils.StringComparator or
// utils.TimeComparator. The gods comparator receives K boxed in an interface.
func FromGods[K any](f utils.Comparator) Comparator[K] {
	return func(a, b K) Order {
		return FromInt(f(a, b))
	}
}

// Pair is one entry of ToOrderedList.
type Pair[K, V any] struct {
	Key   K
	Value V
}
