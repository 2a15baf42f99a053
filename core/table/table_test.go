package table_test

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolkit/core/table"
)

type Audit struct {
	CreatedBy string
}

type employee struct {
	Audit
	ID       uint
	FullName string `gorm:"column:name"`
	Salary   float64
	Hired    time.Time
	Secret   string `gorm:"-"`
}

func names(cols []table.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}

func TestFromRecords_Columns(t *testing.T) {
	tbl, err := table.FromRecords([]employee{})
	require.NoError(t, err)

	assert.Equal(t, []string{"created_by", "id", "name", "salary", "hired"}, names(tbl.Columns))
	assert.Empty(t, tbl.Rows)

	assert.Equal(t, "FullName", tbl.Columns[2].Field)
	assert.Equal(t, reflect.TypeOf(float64(0)), tbl.Columns[3].Type)
}

func TestFromRecords_Rows(t *testing.T) {
	hired := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	tbl, err := table.FromRecords([]employee{
		{Audit: Audit{CreatedBy: "hr"}, ID: 1, FullName: "Ada", Salary: 10.5, Hired: hired, Secret: "x"},
		{ID: 2, FullName: "Linus"},
	})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)

	assert.Equal(t, []any{"hr", uint(1), "Ada", 10.5, hired}, tbl.Rows[0])
	assert.Equal(t, "Linus", tbl.Rows[1][tbl.Index("name")])

	ids, ok := tbl.Column("id")
	assert.True(t, ok)
	assert.Equal(t, []any{uint(1), uint(2)}, ids)

	_, ok = tbl.Column("secret")
	assert.False(t, ok)
	assert.Equal(t, -1, tbl.Index("secret"))
}

func TestFromRecords_Pointers(t *testing.T) {
	tbl, err := table.FromRecords([]*employee{{ID: 7, FullName: "Grace"}, nil})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)

	assert.Equal(t, uint(7), tbl.Rows[0][tbl.Index("id")])
	assert.Equal(t, make([]any, len(tbl.Columns)), tbl.Rows[1])
}

func TestFromRecords_NotStruct(t *testing.T) {
	_, err := table.FromRecords([]int{1, 2})
	assert.ErrorIs(t, err, table.ErrNotStruct)
}

type column struct {
	Field   string
	Default *string
}

func TestWrite(t *testing.T) {
	guest := "guest"
	tbl, err := table.FromRecords([]column{{Field: "id"}, {Field: "name", Default: &guest}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tbl))
	assert.Equal(t, "field  default\nid     NULL\nname   guest\n", buf.String())
}
