package booking

import "time"

// The salon runs a fixed daily schedule of hourly slots from opening to
// closing. The catalog is identical for every date: no holidays, no
// per-service durations.
const (
	openingHour = 9  // 9:00 AM
	closingHour = 18 // 6:00 PM
)

// Slot is one bookable time unit within a day. ID is stable across calls;
// Time is the canonical label used as the booking key (e.g. "2:00 PM").
type Slot struct {
	ID   int
	Time string
}

// SlotAvailability is a catalog slot annotated for a specific date.
type SlotAvailability struct {
	ID       int
	Time     string
	IsBooked bool
}

// Slots returns the ordered catalog of daily slots. Pure and deterministic;
// always succeeds.
func Slots() []Slot {
	slots := make([]Slot, 0, closingHour-openingHour+1)
	for hour := openingHour; hour <= closingHour; hour++ {
		t := time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)
		slots = append(slots, Slot{
			ID:   hour - openingHour + 1,
			Time: t.Format("3:04 PM"),
		})
	}
	return slots
}

// SlotIndex returns the position of the given label in the catalog, or -1 if
// the label is not a catalog slot.
func SlotIndex(label string) int {
	for i, s := range Slots() {
		if s.Time == label {
			return i
		}
	}
	return -1
}

// IsCatalogSlot reports whether label names a slot in the daily catalog.
func IsCatalogSlot(label string) bool {
	return SlotIndex(label) >= 0
}
