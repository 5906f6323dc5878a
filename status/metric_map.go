package status

import (
	"sort"
	"sync"
)

// MetricMap is a thread-safe registry for metrics of type T
// Registration uses mutex; callers cache the returned value
type MetricMap[T any] struct {
	mu     sync.RWMutex
	items  map[string]T
	create func(key string) T
}

// NewMetricMap creates an initialized MetricMap; create builds a metric on first Get
func NewMetricMap[T any](create func(key string) T) *MetricMap[T] {
	return &MetricMap[T]{
		items:  make(map[string]T),
		create: create,
	}
}

// Get returns the metric for key, creating if absent
func (m *MetricMap[T]) Get(key string) T {
	// Fast path: RLock check
	m.mu.RLock()
	if v, ok := m.items[key]; ok {
		m.mu.RUnlock()
		return v
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if v, ok := m.items[key]; ok {
		return v
	}

	v := m.create(key)
	m.items[key] = v
	return v
}

// Has returns true if the key exists
func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[key]
	return ok
}

// Range iterates over all metrics in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, v T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
