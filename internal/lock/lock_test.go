package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockReleasesKeys(t *testing.T) {
	l := NewLocker[int64]()

	unlock := l.Lock(2, 1, 2)
	assert.Equal(t, 2, l.Len())

	unlock()
	assert.Equal(t, 0, l.Len())

	// a second call must not panic on already released mutexes
	unlock()
	assert.Equal(t, 0, l.Len())
}

func TestLockExcludesSameKey(t *testing.T) {
	l := NewLocker[int64]()
	unlock := l.Lock(7)

	acquired := make(chan struct{})
	go func() {
		u := l.Lock(7)
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock acquired a held key")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never acquired the released key")
	}
}

func TestLockOppositeOrderDoesNotDeadlock(t *testing.T) {
	l := NewLocker[int64]()
	counter := 0

	const n = 200
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			unlock := l.Lock(1, 2)
			counter++
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := l.Lock(2, 1)
			counter++
			unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("opposing Lock calls deadlocked")
	}
	assert.Equal(t, 2*n, counter)
	assert.Equal(t, 0, l.Len())
}
