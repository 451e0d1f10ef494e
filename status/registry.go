package status

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Table is a keyed set of atomics
// Registration takes the lock; cached pointers are lock-free afterwards
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Get returns the value for key, creating it on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.RLock()
	ptr, ok := t.items[key]
	t.mu.RUnlock()
	if ok {
		return ptr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok := t.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	t.items[key] = ptr
	return ptr
}

// Range visits every value in key order
func (t *Table[T]) Range(fn func(key string, ptr *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(t.items)) {
		fn(k, t.items[k])
	}
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Registry is the live session readout shared with the HUD
// The status system writes once per frame, the renderer reads at its own pace
type Registry struct {
	Bools  *Table[atomic.Bool]
	Ints   *Table[atomic.Int64]
	Floats *Table[Float]
	Texts  *Table[Text]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  newTable[atomic.Bool](),
		Ints:   newTable[atomic.Int64](),
		Floats: newTable[Float](),
		Texts:  newTable[Text](),
	}
}

// Len returns the number of registered values
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Texts.Len()
}

// Lines renders "key: value" pairs sorted by key, for the debug HUD
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Len())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *Float) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", k, v.Get()))
	})
	r.Texts.Range(func(k string, v *Text) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, v.Get()))
	})
	slices.Sort(lines)
	return lines
}
