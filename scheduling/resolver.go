package scheduling

import (
	"time"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
)

// ResolveLatestPerPatient reduces an appointment history to one record per
// patient for dashboard views. Precedence between an incumbent and a
// candidate for the same patient:
//
//  1. a booked appointment always outranks a non-booked one, even when it is
//     chronologically older
//  2. with equal booked-ness the later start datetime wins
//  3. otherwise the incumbent is kept
//
// Records missing a patient id, date or start time, or whose datetime does
// not parse, are skipped rather than failing the batch; the count of skipped
// rows is returned so callers can log it. The result does not depend on the
// order of the input.
func ResolveLatestPerPatient(appointments []models.Appointment) (map[int]models.Appointment, int) {
	winners := make(map[int]models.Appointment)
	starts := make(map[int]time.Time)
	skipped := 0

	for _, appt := range appointments {
		if appt.PatientID == 0 || appt.Date == "" || appt.StartTime == "" {
			skipped++
			continue
		}
		startAt, err := Instant(appt.Date, appt.StartTime, time.UTC)
		if err != nil {
			skipped++
			continue
		}

		incumbent, ok := winners[appt.PatientID]
		if !ok {
			winners[appt.PatientID] = appt
			starts[appt.PatientID] = startAt
			continue
		}

		candidateBooked := appt.Status == models.StatusBooked
		incumbentBooked := incumbent.Status == models.StatusBooked

		switch {
		case candidateBooked && !incumbentBooked:
			winners[appt.PatientID] = appt
			starts[appt.PatientID] = startAt
		case candidateBooked == incumbentBooked && startAt.After(starts[appt.PatientID]):
			winners[appt.PatientID] = appt
			starts[appt.PatientID] = startAt
		}
	}
	return winners, skipped
}
