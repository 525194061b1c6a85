package index

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// memo caches per-id name sets for the life of the Index. Values are pure functions of
// the id, so a value computed twice under a race is identical; the first stored value wins.
type memo[K comparable] struct {
	mu     sync.RWMutex
	values map[K][]string
	sf     singleflight.Group
}

func newMemo[K comparable]() *memo[K] {
	return &memo[K]{values: make(map[K][]string)}
}

// get returns the cached names for id, computing them once on a miss.
func (m *memo[K]) get(ctx context.Context, id K, compute func(context.Context) ([]string, error)) ([]string, error) {
	m.mu.RLock()
	names, ok := m.values[id]
	m.mu.RUnlock()
	if ok {
		return names, nil
	}

	v, err, _ := m.sf.Do(fmt.Sprint(id), func() (interface{}, error) {
		names, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if existing, ok := m.values[id]; ok {
			return existing, nil
		}
		m.values[id] = names
		return names, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// len returns the number of cached ids.
func (m *memo[K]) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
