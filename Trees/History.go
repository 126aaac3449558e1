package Trees

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/alphadose/haxmap"
)

// History keeps committed versions of a Map under increasing version numbers,
// starting from 1. All methods are safe for concurrent use. Reading a version
// never blocks committing another one, since committed Maps are immutable.
// Dropping a version only forgets its handle; nodes it shares with other
// versions stay reachable through them.
type History[K, V any] struct {
	vs   *haxmap.Map[uint64, Map[K, V]]
	last atomic.Uint64
	drop sync.Mutex // makes Drop's lookup and delete one step
}

func NewHistory[K, V any]() *History[K, V] {
	return &History[K, V]{vs: haxmap.New[uint64, Map[K, V]]()}
}

// Commit m as a new version and return its number.
func (u *History[K, V]) Commit(m Map[K, V]) uint64 {
	ver := u.last.Add(1)
	u.vs.Set(ver, m)
	return ver
}

// At returns the Map committed as ver.
func (u *History[K, V]) At(ver uint64) (Map[K, V], bool) {
	return u.vs.Get(ver)
}

// Latest returns the newest version that hasn't been dropped.
func (u *History[K, V]) Latest() (m Map[K, V], ver uint64, ok bool) {
	for ver = u.last.Load(); ver > 0; ver-- {
		if m, ok = u.vs.Get(ver); ok {
			return
		}
	}
	return
}

// Drop ver. Returns false if ver wasn't present.
func (u *History[K, V]) Drop(ver uint64) bool {
	u.drop.Lock()
	defer u.drop.Unlock()
	if _, ok := u.vs.Get(ver); !ok {
		return false
	}
	u.vs.Del(ver)
	return true
}

// Len is the number of versions kept.
func (u *History[K, V]) Len() int {
	return int(u.vs.Len())
}

// Versions kept, ascending.
func (u *History[K, V]) Versions() []uint64 {
	vers := make([]uint64, 0, u.vs.Len())
	u.vs.ForEach(func(ver uint64, _ Map[K, V]) bool {
		vers = append(vers, ver)
		return true
	})
	slices.Sort(vers)
	return vers
}
