package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(
		[]string{"a", "b", "c"},
		[][]any{
			{int64(1), "x", nil},
			{int64(2), "y", 3.5},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestNewTable_Shape(t *testing.T) {
	tbl := sampleTable(t)

	assert.Equal(t, []string{"a", "b", "c"}, tbl.Names())
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []any{int64(2), "y", 3.5}, tbl.Row(1))
	assert.Equal(t, [][]any{{int64(1), "x", nil}, {int64(2), "y", 3.5}}, tbl.Rows())
}

func TestNewTable_RaggedRow(t *testing.T) {
	_, err := NewTable([]string{"a", "b"}, [][]any{{1, 2}, {1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestNewTable_NoRows(t *testing.T) {
	tbl, err := NewTable([]string{"a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, []string{"a"}, tbl.Names())
	assert.Empty(t, tbl.Rows())
}

func TestTable_IndexAndColumn(t *testing.T) {
	tbl := sampleTable(t)

	assert.Equal(t, 1, tbl.Index("b"))
	assert.Equal(t, -1, tbl.Index("missing"))

	col, ok := tbl.Column("b")
	require.True(t, ok)
	assert.Equal(t, []any{"x", "y"}, col.Values)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)
}

func TestTable_RemoveInsertKeepsPosition(t *testing.T) {
	tbl := sampleTable(t)

	col, err := tbl.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "b", col.Name)
	assert.Equal(t, []string{"a", "c"}, tbl.Names())

	require.NoError(t, tbl.Insert(1, Column{Name: "b", Values: []any{"X", "Y"}}))
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Names())
	assert.Equal(t, []any{int64(1), "X", nil}, tbl.Row(0))
}

func TestTable_InsertAtEnds(t *testing.T) {
	tbl := sampleTable(t)

	require.NoError(t, tbl.Insert(0, Column{Name: "first", Values: []any{0, 0}}))
	require.NoError(t, tbl.Insert(4, Column{Name: "last", Values: []any{9, 9}}))
	assert.Equal(t, []string{"first", "a", "b", "c", "last"}, tbl.Names())
}

func TestTable_InsertRejectsBadColumn(t *testing.T) {
	tbl := sampleTable(t)

	err := tbl.Insert(1, Column{Name: "short", Values: []any{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 1 values, want 2")

	err = tbl.Insert(7, Column{Name: "far", Values: []any{1, 2}})
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Names())
}

func TestTable_RemoveOutOfRange(t *testing.T) {
	tbl := sampleTable(t)
	_, err := tbl.Remove(3)
	require.Error(t, err)
	_, err = tbl.Remove(-1)
	require.Error(t, err)
}

func TestTable_InsertIntoEmptyTable(t *testing.T) {
	tbl := &Table{}
	require.NoError(t, tbl.Insert(0, Column{Name: "a", Values: []any{1, 2, 3}}))
	assert.Equal(t, 3, tbl.Len())
}

func TestTable_Project(t *testing.T) {
	tbl := sampleTable(t)

	out, err := tbl.Project("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, out.Names())
	assert.Equal(t, 2, out.Len())
	assert.Equal(t, []any{3.5, int64(2)}, out.Row(1))

	// Source table is untouched.
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Names())
}

func TestTable_ProjectUnknownColumn(t *testing.T) {
	tbl := sampleTable(t)

	_, err := tbl.Project("a", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "nope", se.Column)
}
