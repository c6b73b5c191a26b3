package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDynamicTableInsertAndEvict(t *testing.T) {
	table := newDynamicTable(100)
	table.insert(HeaderField{Name: "a", Value: "1"}) // size 34
	table.insert(HeaderField{Name: "b", Value: "2"}) // size 34, total 68
	assert.Equal(t, 2, table.Len())

	table.insert(HeaderField{Name: "c", Value: "3"}) // total would be 102, evicts "a"
	assert.Equal(t, 2, table.Len())
	f, ok := table.lookup(0)
	assert.True(t, ok)
	assert.Equal(t, "c", f.Name)
	f, ok = table.lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "b", f.Name)
}

func TestDynamicTableOversizedEntryEmptiesTable(t *testing.T) {
	table := newDynamicTable(50)
	table.insert(HeaderField{Name: "a", Value: "1"})
	assert.Equal(t, 1, table.Len())

	table.insert(HeaderField{Name: "very-long-name-that-does-not-fit", Value: "also long"})
	assert.Equal(t, 0, table.Len())
	assert.EqualValues(t, 0, table.Size())
}

func TestDynamicTableSetMaxSizeEvicts(t *testing.T) {
	table := newDynamicTable(200)
	table.insert(HeaderField{Name: "a", Value: "1"})
	table.insert(HeaderField{Name: "b", Value: "2"})
	assert.Equal(t, 2, table.Len())

	table.setMaxSize(34)
	assert.Equal(t, 1, table.Len())
}

func TestResolveIndexSpansStaticAndDynamic(t *testing.T) {
	table := newDynamicTable(4096)
	table.insert(HeaderField{Name: "custom-key", Value: "custom-value"})

	f, ok := resolveIndex(2, table)
	assert.True(t, ok)
	assert.Equal(t, HeaderField{Name: ":method", Value: "GET"}, f)

	f, ok = resolveIndex(62, table)
	assert.True(t, ok)
	assert.Equal(t, "custom-key", f.Name)

	_, ok = resolveIndex(63, table)
	assert.False(t, ok)
}
