package table

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"text/tabwriter"

	"gorm.io/gorm/schema"
)

// ErrNotStruct is returned when the record type is not a struct.
var ErrNotStruct = errors.New("record type is not a struct")

var schemas sync.Map

// Column describes one projected field.
type Column struct {
	Name  string
	Field string
	Type  reflect.Type
}

// Table is a projection of records into columns and rows. Row values follow
// column order; a nil record projects as a row of nils.
type Table struct {
	Columns []Column
	Rows    [][]any
}

// FromRecords projects records into a table.
func FromRecords[T any](records []T) (*Table, error) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	sch, err := schema.Parse(reflect.New(t).Interface(), &schemas, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	fields := make([]*schema.Field, 0, len(sch.Fields))
	tbl := &Table{}
	for _, f := range sch.Fields {
		if f.DBName == "" {
			continue
		}
		fields = append(fields, f)
		tbl.Columns = append(tbl.Columns, Column{Name: f.DBName, Field: f.Name, Type: f.FieldType})
	}

	ctx := context.Background()
	tbl.Rows = make([][]any, 0, len(records))
	for _, rec := range records {
		row := make([]any, len(fields))
		rv := reflect.ValueOf(rec)
		for rv.Kind() == reflect.Ptr && !rv.IsNil() {
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.Struct {
			for i, f := range fields {
				row[i], _ = f.ValueOf(ctx, rv)
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the values of the named column across all rows.
func (t *Table) Column(name string) ([]any, bool) {
	i := t.Index(name)
	if i < 0 {
		return nil, false
	}
	out := make([]any, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, true
}

// Write renders t as tab-aligned text with a header row. Nil values print
// as NULL and pointers are dereferenced.
func Write(w io.Writer, t *Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	cells := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			cells[i] = cell(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func cell(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "NULL"
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "NULL"
	}
	return fmt.Sprint(rv.Interface())
}
