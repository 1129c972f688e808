package lang

import (
	"strconv"

	pp "github.com/vilterp/balnative/pkg/prettyprint"
)

// Value is a runtime value: a descriptor plus a payload. Consumers dispatch
// on the concrete variant with a type switch.
type Value interface {
	Type() Type
	// NativePayload is the escape hatch to the host representation.
	NativePayload() interface{}
	Format() pp.Doc
}

// Int

type VInt int64

var _ Value = NewVInt(0)

func NewVInt(v int64) *VInt {
	val := VInt(v)
	return &val
}

func (v *VInt) IntValue() int64            { return int64(*v) }
func (v *VInt) Type() Type                 { return TInt }
func (v *VInt) NativePayload() interface{} { return int64(*v) }
func (v *VInt) Format() pp.Doc             { return pp.Text(strconv.FormatInt(int64(*v), 10)) }

// Float

type VFloat float64

var _ Value = NewVFloat(0)

func NewVFloat(v float64) *VFloat {
	val := VFloat(v)
	return &val
}

func (v *VFloat) FloatValue() float64        { return float64(*v) }
func (v *VFloat) Type() Type                 { return TFloat }
func (v *VFloat) NativePayload() interface{} { return float64(*v) }
func (v *VFloat) Format() pp.Doc             { return pp.Text(formatFloat(float64(*v))) }

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Boolean

type VBoolean bool

var _ Value = NewVBoolean(false)

func NewVBoolean(b bool) *VBoolean {
	val := VBoolean(b)
	return &val
}

func (v *VBoolean) BoolValue() bool            { return bool(*v) }
func (v *VBoolean) Type() Type                 { return TBoolean }
func (v *VBoolean) NativePayload() interface{} { return bool(*v) }
func (v *VBoolean) Format() pp.Doc             { return pp.Text(strconv.FormatBool(bool(*v))) }

// String

type VString string

var _ Value = NewVString("")

func NewVString(s string) *VString {
	val := VString(s)
	return &val
}

func (v *VString) StringValue() string        { return string(*v) }
func (v *VString) Type() Type                 { return TString }
func (v *VString) NativePayload() interface{} { return string(*v) }
func (v *VString) Format() pp.Doc             { return pp.Text(strconv.Quote(string(*v))) }

// Blob

// VBlob holds its own copy of the bytes, so it is immutable like the other
// scalars.
type VBlob struct {
	b []byte
}

var _ Value = NewVBlob(nil)

func NewVBlob(b []byte) *VBlob {
	return &VBlob{b: append([]byte(nil), b...)}
}

func (v *VBlob) BlobValue() []byte          { return append([]byte(nil), v.b...) }
func (v *VBlob) Len() int                   { return len(v.b) }
func (v *VBlob) Type() Type                 { return TBlob }
func (v *VBlob) NativePayload() interface{} { return v.BlobValue() }
func (v *VBlob) Format() pp.Doc             { return pp.Textf("blob(%d bytes)", len(v.b)) }

// Null

type VNull struct{}

var Null = &VNull{}

var _ Value = Null

func (*VNull) Type() Type                 { return TNull }
func (*VNull) NativePayload() interface{} { return nil }
func (*VNull) Format() pp.Doc             { return pp.Text("null") }

// ZeroValue returns the value that unwritten array slots hold.
func ZeroValue(t Type) Value {
	switch t.Kind() {
	case KindInt:
		return NewVInt(0)
	case KindFloat:
		return NewVFloat(0)
	case KindBoolean:
		return NewVBoolean(false)
	case KindString:
		return NewVString("")
	case KindBlob:
		return NewVBlob(nil)
	default:
		return Null
	}
}

// Conforms reports whether v can be stored where t is declared. null
// conforms to every reference type.
func Conforms(v Value, t Type) bool {
	if v == nil || t == nil {
		return false
	}
	if t == TAny || v.Type() == t {
		return true
	}
	if v.Type() != TNull {
		return false
	}
	switch t.Kind() {
	case KindXML, KindDataTable, KindArray, KindMap, KindNull:
		return true
	default:
		return false
	}
}
