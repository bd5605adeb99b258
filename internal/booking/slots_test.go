package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsCatalog(t *testing.T) {
	slots := Slots()

	require.Len(t, slots, 10, "hourly slots from 9:00 AM through 6:00 PM")

	assert.Equal(t, "9:00 AM", slots[0].Time)
	assert.Equal(t, "12:00 PM", slots[3].Time)
	assert.Equal(t, "2:00 PM", slots[5].Time)
	assert.Equal(t, "6:00 PM", slots[9].Time)

	// IDs are stable and ordered.
	for i, s := range slots {
		assert.Equal(t, i+1, s.ID)
	}
}

func TestSlotsDeterministic(t *testing.T) {
	assert.Equal(t, Slots(), Slots(), "catalog must be identical on every call")
}

func TestSlotIndex(t *testing.T) {
	assert.Equal(t, 0, SlotIndex("9:00 AM"))
	assert.Equal(t, 9, SlotIndex("6:00 PM"))
	assert.Equal(t, -1, SlotIndex("8:00 AM"))
	assert.Equal(t, -1, SlotIndex("2:30 PM"))
	assert.Equal(t, -1, SlotIndex(""))

	// Labels sort by catalog position, not lexically.
	assert.Less(t, SlotIndex("9:00 AM"), SlotIndex("10:00 AM"))
}

func TestIsCatalogSlot(t *testing.T) {
	assert.True(t, IsCatalogSlot("2:00 PM"))
	assert.False(t, IsCatalogSlot("14:00"))
}
