package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for appointment and window dates.
const DateLayout = "2006-01-02"

// PadClock zero-pads the hour of a clock string, "6:30:00" becomes "06:30:00".
// Upstream rows sometimes arrive without the leading zero and would otherwise
// compare wrong; this is the single place where clocks get canonicalized.
func PadClock(clock string) string {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return clock
	}
	if len(parts[0]) == 1 {
		parts[0] = "0" + parts[0]
	}
	return strings.Join(parts, ":")
}

// ParseClock converts a HH:MM or HH:MM:SS clock string into minutes since
// midnight. Seconds are ignored, matching the slot granularity.
func ParseClock(clock string) (int, error) {
	c := PadClock(clock)
	t, err := time.Parse("15:04:05", c)
	if err != nil {
		t, err = time.Parse("15:04", c)
		if err != nil {
			return 0, fmt.Errorf("%w: bad clock %q", ErrMalformedRecord, clock)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock is the inverse of ParseClock for whole minutes.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Instant composes a date string and a clock string into a single point in
// time in the given location.
func Instant(date, clock string, loc *time.Location) (time.Time, error) {
	c := PadClock(clock)
	if strings.Count(c, ":") == 1 {
		c += ":00"
	}
	t, err := time.ParseInLocation(DateLayout+" 15:04:05", date+" "+c, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad datetime %q %q", ErrMalformedRecord, date, clock)
	}
	return t, nil
}
