package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadClock(t *testing.T) {
	assert.Equal(t, "06:30:00", PadClock("6:30:00"))
	assert.Equal(t, "06:30", PadClock("6:30"))
	assert.Equal(t, "14:00:00", PadClock("14:00:00"))
	// Strings that are not clocks pass through untouched
	assert.Equal(t, "banana", PadClock("banana"))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	m, err = ParseClock("6:30:00")
	require.NoError(t, err)
	assert.Equal(t, 6*60+30, m)

	_, err = ParseClock("25:00")
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = ParseClock("banana")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "06:30", FormatClock(6*60+30))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:40", FormatClock(23*60+40))
}

func TestInstant(t *testing.T) {
	at, err := Instant("2025-06-10", "9:30:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), at)

	at, err = Instant("2025-06-10", "14:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), at)

	_, err = Instant("10-06-2025", "14:00", time.UTC)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}
