package lang

import (
	"fmt"
	"sync"

	pp "github.com/vilterp/balnative/pkg/prettyprint"
)

type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBoolean
	KindString
	KindBlob
	KindXML
	KindDataTable
	KindAny
	KindNull
	KindArray
	KindMap
)

var kindNames = [...]string{
	KindInt:       "int",
	KindFloat:     "float",
	KindBoolean:   "boolean",
	KindString:    "string",
	KindBlob:      "blob",
	KindXML:       "xml",
	KindDataTable: "datatable",
	KindAny:       "any",
	KindNull:      "null",
	KindArray:     "array",
	KindMap:       "map",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Type is an immutable type descriptor. Descriptors are interned, so two
// descriptors are structurally equal iff they are ==.
type Type interface {
	Kind() Kind
	Format() pp.Doc
	String() string
}

// Primitives

type tPrimitive struct {
	kind Kind
}

var (
	TInt       Type = &tPrimitive{KindInt}
	TFloat     Type = &tPrimitive{KindFloat}
	TBoolean   Type = &tPrimitive{KindBoolean}
	TString    Type = &tPrimitive{KindString}
	TBlob      Type = &tPrimitive{KindBlob}
	TXML       Type = &tPrimitive{KindXML}
	TDataTable Type = &tPrimitive{KindDataTable}
	TAny       Type = &tPrimitive{KindAny}
	TNull      Type = &tPrimitive{KindNull}
)

var primitives = map[Kind]Type{
	KindInt:       TInt,
	KindFloat:     TFloat,
	KindBoolean:   TBoolean,
	KindString:    TString,
	KindBlob:      TBlob,
	KindXML:       TXML,
	KindDataTable: TDataTable,
	KindAny:       TAny,
	KindNull:      TNull,
}

// Primitive returns the process-wide descriptor for kind. It panics for the
// composite kinds; use ArrayOf and MapOf for those.
func Primitive(kind Kind) Type {
	t, ok := primitives[kind]
	if !ok {
		panic(fmt.Sprintf("not a primitive kind: %s", kind))
	}
	return t
}

// PrimitiveByName looks up a primitive descriptor by its source name.
func PrimitiveByName(name string) (Type, bool) {
	for _, t := range primitives {
		if t.String() == name {
			return t, true
		}
	}
	return nil, false
}

func (t *tPrimitive) Kind() Kind     { return t.kind }
func (t *tPrimitive) Format() pp.Doc { return pp.Text(t.kind.String()) }
func (t *tPrimitive) String() string { return t.kind.String() }

// Array

type TArray struct {
	elem Type
}

var _ Type = &TArray{}

// ArrayOf returns the interned descriptor for array<elem>.
func ArrayOf(elem Type) *TArray {
	if elem == nil {
		panic("ArrayOf: nil element type")
	}
	return intern(&TArray{elem: elem}).(*TArray)
}

func (ta *TArray) Kind() Kind        { return KindArray }
func (ta *TArray) ElementType() Type { return ta.elem }

func (ta *TArray) Format() pp.Doc {
	return pp.Surround("array<", ta.elem.Format(), ">")
}

func (ta *TArray) String() string { return ta.Format().String() }

// Map

type TMap struct {
	value Type
}

var _ Type = &TMap{}

// MapOf returns the interned descriptor for map<value>. Keys are always strings.
func MapOf(value Type) *TMap {
	if value == nil {
		panic("MapOf: nil value type")
	}
	return intern(&TMap{value: value}).(*TMap)
}

func (tm *TMap) Kind() Kind      { return KindMap }
func (tm *TMap) ValueType() Type { return tm.value }

func (tm *TMap) Format() pp.Doc {
	return pp.Surround("map<", tm.value.Format(), ">")
}

func (tm *TMap) String() string { return tm.Format().String() }

// Interning

// Composite descriptors are only built from already-interned parts, so
// their canonical text identifies them uniquely.
var internTable = struct {
	sync.Mutex
	types map[string]Type
}{
	types: map[string]Type{},
}

func intern(t Type) Type {
	key := t.String()
	internTable.Lock()
	defer internTable.Unlock()
	if existing, ok := internTable.types[key]; ok {
		return existing
	}
	internTable.types[key] = t
	return t
}
