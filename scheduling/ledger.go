package scheduling

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
)

const lockStripes = 64

// Ledger owns the transition of a slot from offered to booked. A striped
// mutex keyed on doctor/date/start serializes the store's check-and-insert,
// so two racing bookings for the same slot cannot both pass the check.
type Ledger struct {
	store AppointmentStore
	locks [lockStripes]sync.Mutex
}

func NewLedger(store AppointmentStore) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) lockFor(key string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &l.locks[h.Sum32()%lockStripes]
}

// Book creates a booked appointment for the slot, or fails with
// ErrInvalidSlot for past or malformed slots and ErrSlotConflict when a
// booked appointment already occupies the slot. Now is sampled once by the
// caller and never re-read here.
func (l *Ledger) Book(ctx context.Context, doctorID, patientID int, date, start, end string, now time.Time) (*models.Appointment, error) {
	startAt, err := Instant(date, start, now.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	if _, err := Instant(date, end, now.Location()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	if !startAt.After(now) {
		return nil, ErrInvalidSlot
	}

	key := fmt.Sprintf("%d|%s|%s", doctorID, date, PadClock(start))
	mu := l.lockFor(key)
	mu.Lock()
	defer mu.Unlock()

	appt := &models.Appointment{
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		StartTime: PadClock(start),
		EndTime:   PadClock(end),
		Status:    models.StatusBooked,
	}
	if err := l.store.CreateIfFree(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}
