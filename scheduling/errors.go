package scheduling

import "errors"

var (
	// ErrInvalidRange rejects availability windows outside 06:00-23:00 or
	// with a start at or after their end.
	ErrInvalidRange = errors.New("availability window outside the allowed 06:00-23:00 range")

	// ErrInvalidSlot rejects booking attempts for slots that are malformed
	// or whose start is not strictly in the future.
	ErrInvalidSlot = errors.New("slot is not bookable")

	// ErrSlotConflict is returned when a booked appointment already occupies
	// the requested doctor/date/time.
	ErrSlotConflict = errors.New("another appointment is already booked for this slot")

	// ErrPrescriptionMissing blocks completion of a visit with no clinical record.
	ErrPrescriptionMissing = errors.New("no prescription recorded for this appointment")

	// ErrAlreadyPast rejects cancellation of an appointment whose end has elapsed.
	ErrAlreadyPast = errors.New("appointment has already passed")

	// ErrInvalidState rejects transitions out of a terminal status.
	ErrInvalidState = errors.New("appointment status does not allow this transition")

	// ErrMalformedRecord marks an appointment whose date or time cannot be parsed.
	ErrMalformedRecord = errors.New("malformed appointment record")

	// ErrNotFound is returned by stores for unknown appointment ids.
	ErrNotFound = errors.New("appointment not found")
)
