package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddItemAccumulates(t *testing.T) {
	c := New()
	c.AddItem(1, 2)
	c.AddItem(1, 3)
	c.AddItem(2, 1)

	assert.Equal(t, 5, c.Quantity(1))
	assert.Equal(t, 1, c.Quantity(2))
	assert.Equal(t, 2, c.Len())
}

func TestAddItemIgnoresNonPositive(t *testing.T) {
	c := New()
	c.AddItem(1, 0)
	c.AddItem(1, -2)
	assert.True(t, c.IsEmpty())
}

func TestRemoveItemDropsWholeEntry(t *testing.T) {
	c := New()
	c.AddItem(1, 4)

	assert.Equal(t, 4, c.RemoveItem(1))
	assert.Zero(t, c.Quantity(1))
	assert.True(t, c.IsEmpty())

	// removing again is a no-op
	assert.Zero(t, c.RemoveItem(1))
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(1, 2)

	items := c.Items()
	items[1] = 99
	items[7] = 1

	assert.Equal(t, 2, c.Quantity(1))
	assert.Equal(t, 1, c.Len())
}

func TestFromItemsDropsNonPositive(t *testing.T) {
	c := FromItems(map[int64]int{1: 2, 2: 0, 3: -1})
	assert.Equal(t, 2, c.Quantity(1))
	assert.Equal(t, 1, c.Len())
}
