package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
)

// Lifecycle governs an appointment from booked to completed or cancelled.
// Transitions on the same appointment id are serialized through a striped
// mutex; different ids proceed independently.
type Lifecycle struct {
	store         AppointmentStore
	prescriptions PrescriptionChecker
	availability  AvailabilitySource
	locks         [lockStripes]sync.Mutex
}

func NewLifecycle(store AppointmentStore, prescriptions PrescriptionChecker, availability AvailabilitySource) *Lifecycle {
	return &Lifecycle{store: store, prescriptions: prescriptions, availability: availability}
}

func (lc *Lifecycle) lockFor(appointmentID int) *sync.Mutex {
	return &lc.locks[uint(appointmentID)%lockStripes]
}

// Complete marks a booked appointment as completed. A visit cannot be marked
// done until the clinical record is written, so a missing prescription fails
// with ErrPrescriptionMissing.
func (lc *Lifecycle) Complete(ctx context.Context, appointmentID int) error {
	mu := lc.lockFor(appointmentID)
	mu.Lock()
	defer mu.Unlock()

	appt, err := lc.store.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.Status != models.StatusBooked {
		return ErrInvalidState
	}
	ok, err := lc.prescriptions.HasPrescription(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPrescriptionMissing
	}
	return lc.store.UpdateStatus(ctx, appointmentID, models.StatusCompleted)
}

// Cancel soft-cancels a booked appointment while its end is still in the
// future. The row is kept; only the status changes.
func (lc *Lifecycle) Cancel(ctx context.Context, appointmentID int, now time.Time) error {
	mu := lc.lockFor(appointmentID)
	mu.Lock()
	defer mu.Unlock()

	appt, err := lc.store.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.Status != models.StatusBooked {
		return ErrInvalidState
	}
	endAt, err := Instant(appt.Date, appt.EndTime, now.Location())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if !endAt.After(now) {
		return ErrAlreadyPast
	}
	return lc.store.UpdateStatus(ctx, appointmentID, models.StatusCancelled)
}

// AddSlotWindow registers a doctor availability window. Windows must lie
// inside 06:00-23:00 with start strictly before end.
func (lc *Lifecycle) AddSlotWindow(ctx context.Context, doctorID int, date, start, end string) (*models.AvailabilityWindow, error) {
	s, err1 := ParseClock(start)
	e, err2 := ParseClock(end)
	if err1 != nil || err2 != nil {
		return nil, ErrInvalidRange
	}
	if s < windowFloor || e > windowCeil || s >= e {
		return nil, ErrInvalidRange
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidRange
	}

	w := &models.AvailabilityWindow{
		DoctorID:  doctorID,
		Date:      date,
		StartTime: PadClock(start),
		EndTime:   PadClock(end),
	}
	if err := lc.availability.AddWindow(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Overdue reports whether a booked appointment's end has elapsed without the
// visit being completed. This is a derived view classification, never a
// stored status.
func Overdue(a models.Appointment, now time.Time) bool {
	if a.Status != models.StatusBooked {
		return false
	}
	endAt, err := Instant(a.Date, a.EndTime, now.Location())
	if err != nil {
		return false
	}
	return !endAt.After(now)
}
