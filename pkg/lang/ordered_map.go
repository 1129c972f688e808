package lang

const (
	InitialMapCapacity = 16
	MaxMapCapacity     = 1 << 16
)

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap keeps entries densely packed in insertion order. Overwriting an
// existing key keeps its position; removing a key shifts everything after it
// left by one. index maps each key to its slot and is kept in step with
// entries, so lookups don't scan.
//
// Not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	entries []Entry[K, V]
	size    int
	index   map[K]int
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		entries: make([]Entry[K, V], InitialMapCapacity),
		index:   make(map[K]int),
	}
}

// Put inserts or overwrites. It fails with CapacityExceeded, leaving the map
// untouched, if a new key would need more than MaxMapCapacity slots.
func (m *OrderedMap[K, V]) Put(key K, value V) error {
	if slot, ok := m.index[key]; ok {
		m.entries[slot].Value = value
		return nil
	}
	if err := m.ensureCapacity(); err != nil {
		return err
	}
	m.entries[m.size] = Entry[K, V]{Key: key, Value: value}
	m.index[key] = m.size
	m.size++
	return nil
}

func (m *OrderedMap[K, V]) ensureCapacity() error {
	if m.size < len(m.entries) {
		return nil
	}
	newCapacity := len(m.entries) * 2
	if newCapacity > MaxMapCapacity {
		return NewError(CapacityExceeded, "map cannot exceed the maximum size of %d entries", MaxMapCapacity)
	}
	grown := make([]Entry[K, V], newCapacity)
	copy(grown, m.entries[:m.size])
	m.entries = grown
	return nil
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	slot, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[slot].Value, true
}

// Remove deletes key if present and compacts the entries behind it.
func (m *OrderedMap[K, V]) Remove(key K) {
	slot, ok := m.index[key]
	if !ok {
		return
	}
	delete(m.index, key)
	copy(m.entries[slot:], m.entries[slot+1:m.size])
	m.size--
	m.entries[m.size] = Entry[K, V]{}
	for i := slot; i < m.size; i++ {
		m.index[m.entries[i].Key] = i
	}
}

// KeySet returns a fresh set of the keys.
func (m *OrderedMap[K, V]) KeySet() map[K]struct{} {
	set := make(map[K]struct{}, m.size)
	for i := 0; i < m.size; i++ {
		set[m.entries[i].Key] = struct{}{}
	}
	return set
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, m.size)
	for i := 0; i < m.size; i++ {
		keys[i] = m.entries[i].Key
	}
	return keys
}

// Values returns a copy of the entries in insertion order.
func (m *OrderedMap[K, V]) Values() []Entry[K, V] {
	return append([]Entry[K, V](nil), m.entries[:m.size]...)
}

func (m *OrderedMap[K, V]) Size() int     { return m.size }
func (m *OrderedMap[K, V]) IsEmpty() bool { return m.size == 0 }
func (m *OrderedMap[K, V]) Capacity() int { return len(m.entries) }
