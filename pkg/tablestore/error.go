package tablestore

import (
	"fmt"

	"github.com/vilterp/balnative/pkg/lang"
)

type noSuchTable struct {
	TableName string
}

func (e *noSuchTable) Error() string {
	return fmt.Sprintf("no such table: %s", e.TableName)
}

type tableAlreadyExists struct {
	TableName string
}

func (e *tableAlreadyExists) Error() string {
	return fmt.Sprintf("table already exists: %s", e.TableName)
}

type wrongNumValues struct {
	TableName string
	Wanted    int
	Got       int
}

func (e *wrongNumValues) Error() string {
	return fmt.Sprintf("table %s has %d columns, but insert provided %d values", e.TableName, e.Wanted, e.Got)
}

type wrongValueType struct {
	TableName string
	Column    lang.Column
	Got       lang.Type
}

func (e *wrongValueType) Error() string {
	return fmt.Sprintf("column %s.%s has type %s; got %s", e.TableName, e.Column.Name, e.Column.Type, e.Got)
}

type unsupportedColumnType struct {
	Column lang.Column
}

func (e *unsupportedColumnType) Error() string {
	return fmt.Sprintf("column %s: unsupported type %s", e.Column.Name, e.Column.Type)
}

type duplicateColumn struct {
	TableName  string
	ColumnName string
}

func (e *duplicateColumn) Error() string {
	return fmt.Sprintf("table %s: duplicate column %s", e.TableName, e.ColumnName)
}
