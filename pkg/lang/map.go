package lang

import (
	pp "github.com/vilterp/balnative/pkg/prettyprint"
)

// Map is the runtime map value: string keys, values of a declared type, in
// insertion order.
type Map struct {
	typ     *TMap
	entries *OrderedMap[string, Value]
}

var _ Value = NewMap(TAny)

func NewMap(valueType Type) *Map {
	return &Map{
		typ:     MapOf(valueType),
		entries: NewOrderedMap[string, Value](),
	}
}

func (m *Map) Type() Type      { return m.typ }
func (m *Map) ValueType() Type { return m.typ.ValueType() }

// Put fails with TypeError if value doesn't conform to the value type, and
// with CapacityExceeded if the map is full.
func (m *Map) Put(key string, value Value) error {
	if !Conforms(value, m.ValueType()) {
		return typeMismatch(m.ValueType(), value)
	}
	return m.entries.Put(key, value)
}

func (m *Map) Get(key string) (Value, bool)   { return m.entries.Get(key) }
func (m *Map) Remove(key string)              { m.entries.Remove(key) }
func (m *Map) KeySet() map[string]struct{}    { return m.entries.KeySet() }
func (m *Map) Keys() []string                 { return m.entries.Keys() }
func (m *Map) Values() []Entry[string, Value] { return m.entries.Values() }
func (m *Map) Size() int                      { return m.entries.Size() }
func (m *Map) IsEmpty() bool                  { return m.entries.IsEmpty() }

func (m *Map) NativePayload() interface{} {
	return m.entries.Values()
}

func (m *Map) Format() pp.Doc {
	entries := m.entries.Values()
	if len(entries) == 0 {
		return pp.Text("{}")
	}
	docs := make([]pp.Doc, len(entries))
	for idx, entry := range entries {
		docs[idx] = pp.Seq(pp.Text(entry.Key), pp.Text(": "), entry.Value.Format())
	}
	return pp.Seq(
		pp.Text("{"), pp.Newline,
		pp.Nest(2, pp.Join(docs, pp.CommaNewline)),
		pp.CommaNewline,
		pp.Text("}"),
	)
}
