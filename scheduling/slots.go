package scheduling

import (
	"sort"
	"time"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
)

// SlotDuration is the length of every bookable interval carved out of an
// availability window.
const SlotDuration = 20 * time.Minute

// Doctors may only declare windows between 06:00 and 23:00.
const (
	windowFloor = 6 * 60
	windowCeil  = 23 * 60
)

// Slot is a candidate bookable interval derived from a doctor's availability.
// Slots are view objects computed per request, never stored.
type Slot struct {
	DoctorID  int    `json:"doctor_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsNext    bool   `json:"is_next"`
}

// ComputeSlots carves the doctor's windows on one date into fixed-length
// candidate slots, removes those overlapping an existing booked appointment,
// and keeps only slots starting strictly after now, ascending. The first kept
// slot is flagged IsNext. Malformed windows and unparsable booked rows are
// skipped, not fatal; the second return value counts them so callers can log.
func ComputeSlots(doctorID int, date string, windows []models.AvailabilityWindow, booked []models.Appointment, now time.Time) ([]Slot, int) {
	skipped := 0

	type span struct{ start, end int }
	var taken []span
	for _, b := range booked {
		if b.Status != models.StatusBooked {
			continue
		}
		s, err1 := ParseClock(b.StartTime)
		e, err2 := ParseClock(b.EndTime)
		if err1 != nil || err2 != nil {
			skipped++
			continue
		}
		taken = append(taken, span{s, e})
	}

	step := int(SlotDuration / time.Minute)
	var candidates []span
	for _, w := range windows {
		ws, err1 := ParseClock(w.StartTime)
		we, err2 := ParseClock(w.EndTime)
		if err1 != nil || err2 != nil || ws >= we || ws < windowFloor || we > windowCeil {
			skipped++
			continue
		}
		for s := ws; s+step <= we; s += step {
			e := s + step
			overlaps := false
			for _, t := range taken {
				if t.start < e && s < t.end {
					overlaps = true
					break
				}
			}
			if !overlaps {
				candidates = append(candidates, span{s, e})
			}
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].start < candidates[j].start })

	var out []Slot
	for _, c := range candidates {
		startAt, err := Instant(date, FormatClock(c.start), now.Location())
		if err != nil {
			skipped++
			continue
		}
		if !startAt.After(now) {
			continue
		}
		out = append(out, Slot{
			DoctorID:  doctorID,
			Date:      date,
			StartTime: FormatClock(c.start),
			EndTime:   FormatClock(c.end),
		})
	}
	if len(out) > 0 {
		out[0].IsNext = true
	}
	return out, skipped
}
