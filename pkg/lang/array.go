package lang

import (
	"math"

	pp "github.com/vilterp/balnative/pkg/prettyprint"
)

const (
	DefaultArrayCapacity = 16
	// MaxArrayLength bounds indices so a stray write can't ask for an
	// unbounded allocation.
	MaxArrayLength = math.MaxInt32
)

// ArrayValue is the element-type-agnostic view of an array, for natives that
// don't know (or care) which instantiation they were handed.
type ArrayValue interface {
	Value
	ElementType() Type
	Size() int64
	GetValue(index int64) (Value, error)
	AddValue(index int64, v Value) error
}

// Array is a homogeneous growable array. Writing past the end extends it,
// filling the gap with the element type's zero value; reading past the end
// is an OutOfRange error.
type Array[T any] struct {
	typ    *TArray
	values []T
	size   int64
	zero   T

	box   func(T) Value
	unbox func(Value) (T, bool)
}

var _ ArrayValue = NewStringArray()

func newArray[T any](elem Type, zero T, box func(T) Value, unbox func(Value) (T, bool)) *Array[T] {
	return &Array[T]{
		typ:    ArrayOf(elem),
		values: make([]T, DefaultArrayCapacity),
		zero:   zero,
		box:    box,
		unbox:  unbox,
	}
}

func NewIntArray() *Array[int64] {
	return newArray(TInt, 0,
		func(i int64) Value { return NewVInt(i) },
		func(v Value) (int64, bool) {
			i, ok := v.(*VInt)
			if !ok {
				return 0, false
			}
			return i.IntValue(), true
		},
	)
}

func NewFloatArray() *Array[float64] {
	return newArray(TFloat, 0,
		func(f float64) Value { return NewVFloat(f) },
		func(v Value) (float64, bool) {
			f, ok := v.(*VFloat)
			if !ok {
				return 0, false
			}
			return f.FloatValue(), true
		},
	)
}

func NewBooleanArray() *Array[bool] {
	return newArray(TBoolean, false,
		func(b bool) Value { return NewVBoolean(b) },
		func(v Value) (bool, bool) {
			b, ok := v.(*VBoolean)
			if !ok {
				return false, false
			}
			return b.BoolValue(), true
		},
	)
}

func NewStringArray() *Array[string] {
	return newArray(TString, "",
		func(s string) Value { return NewVString(s) },
		func(v Value) (string, bool) {
			s, ok := v.(*VString)
			if !ok {
				return "", false
			}
			return s.StringValue(), true
		},
	)
}

func NewBlobArray() *Array[[]byte] {
	return newArray(TBlob, []byte{},
		func(b []byte) Value { return NewVBlob(b) },
		func(v Value) ([]byte, bool) {
			b, ok := v.(*VBlob)
			if !ok {
				return nil, false
			}
			return b.BlobValue(), true
		},
	)
}

// NewRefArray makes an array holding Values of type elem, for element types
// with no specialized buffer (xml, datatable, arrays, maps, any).
func NewRefArray(elem Type) *Array[Value] {
	return newArray(elem, ZeroValue(elem),
		func(v Value) Value { return v },
		func(v Value) (Value, bool) { return v, Conforms(v, elem) },
	)
}

// NewArrayOf picks the specialized constructor for elem.
func NewArrayOf(elem Type) ArrayValue {
	switch elem {
	case TInt:
		return NewIntArray()
	case TFloat:
		return NewFloatArray()
	case TBoolean:
		return NewBooleanArray()
	case TString:
		return NewStringArray()
	case TBlob:
		return NewBlobArray()
	default:
		return NewRefArray(elem)
	}
}

// Add stores v at index, growing the array if needed.
func (a *Array[T]) Add(index int64, v T) error {
	if index < 0 || index >= MaxArrayLength {
		return outOfRange(index, a.size)
	}
	a.ensureCapacity(index + 1)
	for i := a.size; i < index; i++ {
		a.values[i] = a.zero
	}
	a.values[index] = v
	if index >= a.size {
		a.size = index + 1
	}
	return nil
}

func (a *Array[T]) Get(index int64) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, outOfRange(index, a.size)
	}
	return a.values[index], nil
}

// ensureCapacity doubles the backing buffer until it holds n elements.
func (a *Array[T]) ensureCapacity(n int64) {
	capacity := int64(len(a.values))
	if n <= capacity {
		return
	}
	if capacity < DefaultArrayCapacity {
		capacity = DefaultArrayCapacity
	}
	for capacity < n {
		capacity *= 2
	}
	grown := make([]T, capacity)
	copy(grown, a.values[:a.size])
	a.values = grown
}

func (a *Array[T]) Size() int64       { return a.size }
func (a *Array[T]) Capacity() int     { return len(a.values) }
func (a *Array[T]) ElementType() Type { return a.typ.ElementType() }
func (a *Array[T]) Type() Type        { return a.typ }

// NativePayload returns a copy of the live elements.
func (a *Array[T]) NativePayload() interface{} {
	return append([]T(nil), a.values[:a.size]...)
}

func (a *Array[T]) GetValue(index int64) (Value, error) {
	v, err := a.Get(index)
	if err != nil {
		return nil, err
	}
	return a.box(v), nil
}

func (a *Array[T]) AddValue(index int64, v Value) error {
	unboxed, ok := a.unbox(v)
	if !ok {
		return typeMismatch(a.ElementType(), v)
	}
	return a.Add(index, unboxed)
}

func (a *Array[T]) Format() pp.Doc {
	docs := make([]pp.Doc, a.size)
	for i := int64(0); i < a.size; i++ {
		docs[i] = a.box(a.values[i]).Format()
	}
	return pp.Surround("[", pp.Join(docs, pp.CommaSpace), "]")
}
