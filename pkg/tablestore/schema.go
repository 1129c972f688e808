package tablestore

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vilterp/balnative/pkg/lang"
)

const tablesBucket = "__tables__"

type tableDescriptor struct {
	name    string
	columns []lang.Column
}

var codeForType = map[lang.Type]lang.ColumnType{
	lang.TInt:     lang.ColumnInt,
	lang.TFloat:   lang.ColumnFloat,
	lang.TBoolean: lang.ColumnBoolean,
	lang.TString:  lang.ColumnString,
	lang.TBlob:    lang.ColumnBlob,
}

var typeForCode = map[lang.ColumnType]lang.Type{}

func init() {
	for typ, code := range codeForType {
		typeForCode[code] = typ
	}
}

// Binary columns hold blobs but are persisted under their own type text,
// since the type grammar has no binary kind.
const binaryTypeText = "binary"

// valueType is the type of values a column of type ct accepts.
func valueType(ct lang.ColumnType) (lang.Type, bool) {
	if ct == lang.ColumnBinary {
		return lang.TBlob, true
	}
	typ, ok := typeForCode[ct]
	return typ, ok
}

func typeText(ct lang.ColumnType) string {
	if ct == lang.ColumnBinary {
		return binaryTypeText
	}
	return typeForCode[ct].String()
}

func columnTypeFromText(text string) (lang.ColumnType, error) {
	if text == binaryTypeText {
		return lang.ColumnBinary, nil
	}
	typ, err := lang.ParseType(text)
	if err != nil {
		return 0, err
	}
	code, ok := codeForType[typ]
	if !ok {
		return 0, fmt.Errorf("unsupported type %s", typ)
	}
	return code, nil
}

func newTableDescriptor(name string, columns []lang.Column) (*tableDescriptor, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s has no columns", name)
	}
	seen := map[string]bool{}
	for _, col := range columns {
		if _, ok := valueType(col.Type); !ok {
			return nil, &unsupportedColumnType{Column: col}
		}
		if seen[col.Name] {
			return nil, &duplicateColumn{TableName: name, ColumnName: col.Name}
		}
		seen[col.Name] = true
	}
	return &tableDescriptor{
		name:    name,
		columns: append([]lang.Column(nil), columns...),
	}, nil
}

// toBytes encodes the descriptor as its name, its column count, then a
// name and type text per column.
func (table *tableDescriptor) toBytes() ([]byte, error) {
	vals := []interface{}{table.name, int64(len(table.columns))}
	for _, col := range table.columns {
		vals = append(vals, col.Name, typeText(col.Type))
	}
	return encodeValues(vals)
}

func tableFromBytes(b []byte) (*tableDescriptor, error) {
	vals, err := decodeValues(b)
	if err != nil {
		return nil, errors.Wrap(err, "decoding table descriptor")
	}
	if len(vals) < 2 {
		return nil, fmt.Errorf("table descriptor has %d fields", len(vals))
	}
	name, ok := vals[0].(string)
	if !ok {
		return nil, fmt.Errorf("table name not a string but a %T", vals[0])
	}
	numColumns, ok := vals[1].(int64)
	if !ok || int64(len(vals)-2) != 2*numColumns {
		return nil, fmt.Errorf("table %s: bad column list", name)
	}
	table := &tableDescriptor{
		name:    name,
		columns: make([]lang.Column, numColumns),
	}
	for idx := range table.columns {
		colName, nameOK := vals[2+2*idx].(string)
		typText, typOK := vals[3+2*idx].(string)
		if !nameOK || !typOK {
			return nil, fmt.Errorf("table %s: column %d is malformed", name, idx)
		}
		code, err := columnTypeFromText(typText)
		if err != nil {
			return nil, errors.Wrapf(err, "table %s: column %s", name, colName)
		}
		table.columns[idx] = lang.Column{Name: colName, Type: code}
	}
	return table, nil
}

// rowFromValues checks values against the table's columns and returns
// their raw payloads. Null is allowed in any column.
func (table *tableDescriptor) rowFromValues(values []lang.Value) ([]interface{}, error) {
	if len(values) != len(table.columns) {
		return nil, &wrongNumValues{TableName: table.name, Wanted: len(table.columns), Got: len(values)}
	}
	row := make([]interface{}, len(values))
	for idx, val := range values {
		col := table.columns[idx]
		if val == nil || val == lang.Null {
			continue
		}
		if typ, _ := valueType(col.Type); val.Type() != typ {
			return nil, &wrongValueType{TableName: table.name, Column: col, Got: val.Type()}
		}
		row[idx] = val.NativePayload()
	}
	return row, nil
}
