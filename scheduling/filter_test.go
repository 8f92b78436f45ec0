package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotList() []Slot {
	return []Slot{
		{DoctorID: 1, Date: "2025-06-10", StartTime: "09:00", EndTime: "09:20", IsNext: true},
		{DoctorID: 1, Date: "2025-06-10", StartTime: "09:20", EndTime: "09:40"},
		{DoctorID: 1, Date: "2025-06-10", StartTime: "14:00", EndTime: "14:20"},
		{DoctorID: 1, Date: "2025-06-10", StartTime: "16:40", EndTime: "17:00"},
	}
}

func TestFilterByPreferredWindow(t *testing.T) {
	filtered := FilterByPreferredWindow(slotList(), "09:20", "15:00")
	require.Len(t, filtered, 2)
	assert.Equal(t, "09:20", filtered[0].StartTime)
	assert.Equal(t, "14:00", filtered[1].StartTime)
}

func TestFilterByPreferredWindowUnboundedSides(t *testing.T) {
	slots := slotList()

	all := FilterByPreferredWindow(slots, "", "")
	assert.Equal(t, slots, all)

	fromNoon := FilterByPreferredWindow(slots, "12:00", "")
	require.Len(t, fromNoon, 2)
	assert.Equal(t, "14:00", fromNoon[0].StartTime)

	untilNoon := FilterByPreferredWindow(slots, "", "12:00")
	require.Len(t, untilNoon, 2)
	assert.Equal(t, "09:00", untilNoon[0].StartTime)
}

func TestFilterByPreferredWindowMalformedBoundIgnored(t *testing.T) {
	slots := slotList()
	filtered := FilterByPreferredWindow(slots, "banana", "")
	assert.Equal(t, slots, filtered)
}

func TestFilterByPreferredWindowDoesNotMutateInput(t *testing.T) {
	slots := slotList()
	original := slotList()

	// Filter twice with different bounds from the same base slice. Each
	// filter sees the full slot list, not the previous result.
	narrow := FilterByPreferredWindow(slots, "14:00", "15:00")
	require.Len(t, narrow, 1)
	assert.Equal(t, original, slots)

	wide := FilterByPreferredWindow(slots, "09:00", "17:00")
	assert.Len(t, wide, 4)
	assert.Equal(t, original, slots)
}

func TestFilterByPreferredWindowPaddedBounds(t *testing.T) {
	filtered := FilterByPreferredWindow(slotList(), "9:00:00", "9:40:00")
	require.Len(t, filtered, 2)
	assert.Equal(t, "09:00", filtered[0].StartTime)
	assert.Equal(t, "09:20", filtered[1].StartTime)
}
