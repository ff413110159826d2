package lock

import (
	"cmp"
	"slices"
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

// Locker hands out one mutex per key. Keys are only kept around while
// somebody holds or waits on them.
type Locker[K cmp.Ordered] struct {
	mu    sync.Mutex
	locks map[K]*entry
}

func NewLocker[K cmp.Ordered]() *Locker[K] {
	return &Locker[K]{
		locks: make(map[K]*entry),
	}
}

// Lock blocks until every key is held and returns the function releasing them.
// Keys are always taken in ascending order, so two callers locking the same
// pair in opposite order cannot deadlock. Duplicate keys are taken once.
func (l *Locker[K]) Lock(keys ...K) (unlock func()) {
	ordered := slices.Clone(keys)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	held := make([]*entry, 0, len(ordered))
	for _, key := range ordered {
		e := l.acquire(key)
		e.mu.Lock()
		held = append(held, e)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(held) - 1; i >= 0; i-- {
				held[i].mu.Unlock()
				l.release(ordered[i])
			}
		})
	}
}

// Len returns the number of keys currently held or waited on.
func (l *Locker[K]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func (l *Locker[K]) acquire(key K) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	return e
}

func (l *Locker[K]) release(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.locks[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}
