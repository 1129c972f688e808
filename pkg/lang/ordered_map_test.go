package lang

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderedMapPutGet(t *testing.T) {
	m := NewOrderedMap[string, int]()
	keys := []string{"k0", "k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9",
		"k10", "k11", "k12", "k13", "k14", "k15", "k16", "k17"}
	var expected []Entry[string, int]
	for idx, key := range keys {
		if err := m.Put(key, idx); err != nil {
			t.Fatal(err)
		}
		expected = append(expected, Entry[string, int]{Key: key, Value: idx})
	}
	for idx, key := range keys {
		v, ok := m.Get(key)
		if !ok || v != idx {
			t.Fatalf("get %s: expected %d; got %d (%v)", key, idx, v, ok)
		}
	}
	if m.Size() != len(keys) {
		t.Fatalf("expected size %d; got %d", len(keys), m.Size())
	}
	if diff := cmp.Diff(expected, m.Values()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	if m.Capacity() != 2*InitialMapCapacity {
		t.Fatalf("expected capacity %d; got %d", 2*InitialMapCapacity, m.Capacity())
	}
	if _, ok := m.Get("missing"); ok {
		t.Fatal("expected missing key to be absent")
	}
}

func TestOrderedMapOverwriteKeepsOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Put("x", 1)
	m.Put("y", 2)
	m.Put("x", 3)

	v, _ := m.Get("x")
	if v != 3 {
		t.Fatalf("expected 3; got %d", v)
	}
	if m.Size() != 2 {
		t.Fatalf("expected size 2; got %d", m.Size())
	}
	if diff := cmp.Diff(map[string]struct{}{"x": {}, "y": {}}, m.KeySet()); diff != "" {
		t.Fatalf("unexpected key set (-want +got):\n%s", diff)
	}
	expected := []Entry[string, int]{{"x", 3}, {"y", 2}}
	if diff := cmp.Diff(expected, m.Values()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestOrderedMapRemove(t *testing.T) {
	cases := []struct {
		put    []string
		remove []string
		keys   []string
	}{
		{[]string{"a", "b", "c"}, []string{"b"}, []string{"a", "c"}},
		{[]string{"a", "b", "c"}, []string{"a"}, []string{"b", "c"}},
		{[]string{"a", "b", "c"}, []string{"c"}, []string{"a", "b"}},
		{[]string{"a", "b", "c"}, []string{"z"}, []string{"a", "b", "c"}},
		{[]string{"a", "b", "c"}, []string{"a", "b", "c"}, []string{}},
		{[]string{"a", "b", "c"}, []string{"b", "b"}, []string{"a", "c"}},
	}

	for idx, testCase := range cases {
		m := NewOrderedMap[string, int]()
		for i, key := range testCase.put {
			m.Put(key, i+1)
		}
		for _, key := range testCase.remove {
			m.Remove(key)
		}
		if diff := cmp.Diff(testCase.keys, m.Keys()); diff != "" {
			t.Errorf("case %d: unexpected keys (-want +got):\n%s", idx, diff)
		}
		if m.Size() != len(testCase.keys) {
			t.Errorf("case %d: expected size %d; got %d", idx, len(testCase.keys), m.Size())
		}
		// Lookups still find the shifted entries.
		for _, key := range testCase.keys {
			v, ok := m.Get(key)
			if !ok {
				t.Errorf("case %d: lost key %s", idx, key)
				continue
			}
			if testCase.put[v-1] != key {
				t.Errorf("case %d: key %s has value %d", idx, key, v)
			}
		}
	}
}

func TestOrderedMapRemoveCompacts(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	m.Remove("b")
	expected := []Entry[string, int]{{"a", 1}, {"c", 3}}
	if diff := cmp.Diff(expected, m.Values()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	// Re-adding appends at the end.
	m.Put("b", 4)
	if diff := cmp.Diff([]string{"a", "c", "b"}, m.Keys()); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
	if m.IsEmpty() {
		t.Fatal("map should not be empty")
	}
}

func TestOrderedMapCapacity(t *testing.T) {
	m := NewOrderedMap[string, int]()
	var err error
	inserted := 0
	for i := 0; i <= MaxMapCapacity; i++ {
		if err = m.Put(fmt.Sprintf("key-%d", i), i); err != nil {
			break
		}
		inserted++
	}
	assertKind(t, 0, CapacityExceeded, err)
	if inserted != MaxMapCapacity {
		t.Fatalf("expected %d successful inserts; got %d", MaxMapCapacity, inserted)
	}
	if m.Size() != MaxMapCapacity || m.Capacity() != MaxMapCapacity {
		t.Fatalf("failed put changed the map: size %d, capacity %d", m.Size(), m.Capacity())
	}
	// Overwrites still work on a full map.
	if err := m.Put("key-0", -1); err != nil {
		t.Fatalf("overwrite on full map: %v", err)
	}
}
