package lang

import (
	"encoding/base64"
	"fmt"
	"strconv"

	pp "github.com/vilterp/balnative/pkg/prettyprint"
)

type ColumnType int

const (
	ColumnInt ColumnType = iota
	ColumnFloat
	ColumnBoolean
	ColumnString
	ColumnBlob
	ColumnBinary
)

func (ct ColumnType) String() string {
	switch ct {
	case ColumnInt:
		return "int"
	case ColumnFloat:
		return "float"
	case ColumnBoolean:
		return "boolean"
	case ColumnString:
		return "string"
	case ColumnBlob:
		return "blob"
	case ColumnBinary:
		return "binary"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(ct))
	}
}

type Column struct {
	Name string
	Type ColumnType
}

// ResultSet is a cursor over rows of typed columns, owned by whatever data
// subsystem produced it.
type ResultSet interface {
	Columns() []Column
	// Positioned reports whether the cursor is on a row.
	Positioned() bool
	// Value returns the raw value of column idx in the current row; nil
	// means SQL NULL.
	Value(idx int) (interface{}, error)
}

// Advancer is implemented by result sets whose cursor can be moved.
type Advancer interface {
	Next() (bool, error)
}

// DataTable references a result set. It never closes it.
type DataTable struct {
	rs ResultSet
}

var _ Value = &DataTable{}

func NewDataTable(rs ResultSet) *DataTable {
	return &DataTable{rs: rs}
}

func (dt *DataTable) Type() Type                 { return TDataTable }
func (dt *DataTable) NativePayload() interface{} { return dt.rs }
func (dt *DataTable) Columns() []Column          { return dt.rs.Columns() }

func (dt *DataTable) Format() pp.Doc {
	cols := dt.rs.Columns()
	docs := make([]pp.Doc, len(cols))
	for idx, col := range cols {
		docs[idx] = pp.Textf("%s %s", col.Name, col.Type)
	}
	return pp.Surround("datatable(", pp.Join(docs, pp.CommaSpace), ")")
}

// Next moves the cursor to the next row.
func (dt *DataTable) Next() (bool, error) {
	adv, ok := dt.rs.(Advancer)
	if !ok {
		return false, NewError(DataAccess, "result set %T can't be advanced", dt.rs)
	}
	hasRow, err := adv.Next()
	if err != nil {
		return false, WrapError(DataAccess, "next row", err)
	}
	return hasRow, nil
}

// ObjectAsStringByIndex formats column idx (0-based) of the current row.
// Blob and binary columns come back Base64 encoded.
func (dt *DataTable) ObjectAsStringByIndex(idx int) (string, error) {
	cols := dt.rs.Columns()
	if idx < 0 || idx >= len(cols) {
		return "", NewError(DataAccess, "no column at index %d; result has %d columns", idx, len(cols))
	}
	return dt.objectAsString(idx, cols[idx])
}

// ObjectAsStringByName is ObjectAsStringByIndex with the column resolved by name.
func (dt *DataTable) ObjectAsStringByName(name string) (string, error) {
	for idx, col := range dt.rs.Columns() {
		if col.Name == name {
			return dt.objectAsString(idx, col)
		}
	}
	return "", NewError(DataAccess, "no such column: %s", name)
}

func (dt *DataTable) objectAsString(idx int, col Column) (string, error) {
	if !dt.rs.Positioned() {
		return "", NewError(DataAccess, "cursor is not positioned on a row")
	}
	raw, err := dt.rs.Value(idx)
	if err != nil {
		return "", WrapError(DataAccess, fmt.Sprintf("read column %s", col.Name), err)
	}
	return formatColumnValue(col, raw)
}

func formatColumnValue(col Column, raw interface{}) (string, error) {
	if raw == nil {
		return "", nil
	}
	if col.Type == ColumnBlob || col.Type == ColumnBinary {
		switch b := raw.(type) {
		case []byte:
			return base64.StdEncoding.EncodeToString(b), nil
		case string:
			return base64.StdEncoding.EncodeToString([]byte(b)), nil
		default:
			return "", NewError(DataAccess, "column %s: expected bytes; got %T", col.Name, raw)
		}
	}
	switch v := raw.(type) {
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case float64:
		return formatFloat(v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}
