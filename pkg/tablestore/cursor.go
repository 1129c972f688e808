package tablestore

import (
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/vilterp/balnative/pkg/lang"
)

// Cursor walks a table's rows in insertion order. It starts before the
// first row.
type Cursor struct {
	tx            *bolt.Tx
	cursor        *bolt.Cursor
	table         *tableDescriptor
	seekedToFirst bool
	done          bool
	current       []interface{}
}

var _ lang.ResultSet = &Cursor{}
var _ lang.Advancer = &Cursor{}

func (c *Cursor) Columns() []lang.Column {
	return c.table.columns
}

func (c *Cursor) Positioned() bool {
	return c.current != nil
}

func (c *Cursor) Value(idx int) (interface{}, error) {
	if c.current == nil {
		return nil, fmt.Errorf("cursor on %s is not positioned on a row", c.table.name)
	}
	if idx < 0 || idx >= len(c.current) {
		return nil, fmt.Errorf("no column %d in %s", idx, c.table.name)
	}
	return c.current[idx], nil
}

// Next moves to the next row, returning false once the rows run out. A row
// that fails to decode leaves the cursor unpositioned; the following call
// moves past it.
func (c *Cursor) Next() (bool, error) {
	if c.done {
		return false, nil
	}
	var key []byte
	var rawRow []byte
	if !c.seekedToFirst {
		key, rawRow = c.cursor.First()
		c.seekedToFirst = true
	} else {
		key, rawRow = c.cursor.Next()
	}
	c.current = nil
	if key == nil {
		c.done = true
		return false, nil
	}
	row, err := decodeValues(rawRow)
	if err != nil {
		return false, errors.Wrapf(err, "decoding row of %s", c.table.name)
	}
	if len(row) != len(c.table.columns) {
		return false, fmt.Errorf("row of %s has %d values; expected %d", c.table.name, len(row), len(c.table.columns))
	}
	c.current = row
	return true, nil
}

// Close releases the read transaction. Datatables made from the cursor
// must not be used afterwards.
func (c *Cursor) Close() error {
	c.current = nil
	c.done = true
	return c.tx.Rollback()
}
