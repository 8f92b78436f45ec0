package scheduling

// FilterByPreferredWindow narrows slots to a preferred time-of-day range. An
// empty bound means unbounded on that side, so two empty bounds return a copy
// equal to the input. Callers must keep the unfiltered slice and filter from
// it on every change of bounds; the input is never mutated.
func FilterByPreferredWindow(slots []Slot, startFloor, endCeil string) []Slot {
	var floor, ceil int
	hasFloor, hasCeil := false, false
	if startFloor != "" {
		if m, err := ParseClock(startFloor); err == nil {
			floor, hasFloor = m, true
		}
	}
	if endCeil != "" {
		if m, err := ParseClock(endCeil); err == nil {
			ceil, hasCeil = m, true
		}
	}

	out := make([]Slot, 0, len(slots))
	for _, sl := range slots {
		s, err1 := ParseClock(sl.StartTime)
		e, err2 := ParseClock(sl.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if hasFloor && s < floor {
			continue
		}
		if hasCeil && e > ceil {
			continue
		}
		out = append(out, sl)
	}
	return out
}
