package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory AppointmentStore with the same atomicity contract
// as the database-backed one.
type memStore struct {
	mu     sync.Mutex
	nextID int
	rows   map[int]models.Appointment
}

func newMemStore() *memStore {
	return &memStore{nextID: 1, rows: make(map[int]models.Appointment)}
}

func (m *memStore) GetByID(ctx context.Context, id int) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (m *memStore) ByDoctorDate(ctx context.Context, doctorID int, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, row := range m.rows {
		if row.DoctorID == doctorID && row.Date == date {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memStore) ByDoctor(ctx context.Context, doctorID int) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, row := range m.rows {
		if row.DoctorID == doctorID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memStore) ByPatient(ctx context.Context, patientID int) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, row := range m.rows {
		if row.PatientID == patientID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memStore) CreateIfFree(ctx context.Context, a *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.DoctorID != a.DoctorID || row.Date != a.Date || row.Status != models.StatusBooked {
			continue
		}
		if row.StartTime < a.EndTime && a.StartTime < row.EndTime {
			return ErrSlotConflict
		}
	}
	a.AppointmentID = m.nextID
	m.nextID++
	m.rows[a.AppointmentID] = *a
	return nil
}

func (m *memStore) UpdateStatus(ctx context.Context, id int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return ErrNotFound
	}
	row.Status = status
	m.rows[id] = row
	return nil
}

func TestLedgerBook(t *testing.T) {
	store := newMemStore()
	ledger := NewLedger(store)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	appt, err := ledger.Book(context.Background(), 1, 42, "2025-06-10", "09:00", "09:20", now)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, appt.Status)
	assert.Equal(t, "09:00", appt.StartTime)
	assert.NotZero(t, appt.AppointmentID)

	stored, err := store.GetByID(context.Background(), appt.AppointmentID)
	require.NoError(t, err)
	assert.Equal(t, 42, stored.PatientID)
}

func TestLedgerBookPadsClocks(t *testing.T) {
	store := newMemStore()
	ledger := NewLedger(store)
	now := time.Date(2025, 6, 10, 5, 0, 0, 0, time.UTC)

	appt, err := ledger.Book(context.Background(), 1, 42, "2025-06-10", "6:30:00", "6:50:00", now)
	require.NoError(t, err)
	assert.Equal(t, "06:30:00", appt.StartTime)
	assert.Equal(t, "06:50:00", appt.EndTime)
}

func TestLedgerBookRejectsPastSlot(t *testing.T) {
	ledger := NewLedger(newMemStore())
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	_, err := ledger.Book(context.Background(), 1, 42, "2025-06-10", "14:00", "14:20", now)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	// A slot starting exactly now is not strictly in the future
	_, err = ledger.Book(context.Background(), 1, 42, "2025-06-10", "15:00", "15:20", now)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestLedgerBookRejectsMalformedSlot(t *testing.T) {
	ledger := NewLedger(newMemStore())
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	_, err := ledger.Book(context.Background(), 1, 42, "2025-06-10", "banana", "09:20", now)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestLedgerBookConflict(t *testing.T) {
	store := newMemStore()
	ledger := NewLedger(store)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	_, err := ledger.Book(context.Background(), 1, 42, "2025-06-10", "09:00", "09:20", now)
	require.NoError(t, err)

	_, err = ledger.Book(context.Background(), 1, 43, "2025-06-10", "09:00", "09:20", now)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Overlapping but not identical interval also conflicts
	_, err = ledger.Book(context.Background(), 1, 43, "2025-06-10", "09:10", "09:30", now)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Same clock with a different doctor is fine
	_, err = ledger.Book(context.Background(), 2, 43, "2025-06-10", "09:00", "09:20", now)
	assert.NoError(t, err)
}

func TestLedgerBookCancelledSlotReopens(t *testing.T) {
	store := newMemStore()
	ledger := NewLedger(store)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	appt, err := ledger.Book(context.Background(), 1, 42, "2025-06-10", "09:00", "09:20", now)
	require.NoError(t, err)
	require.NoError(t, store.UpdateStatus(context.Background(), appt.AppointmentID, models.StatusCancelled))

	_, err = ledger.Book(context.Background(), 1, 43, "2025-06-10", "09:00", "09:20", now)
	assert.NoError(t, err)
}

func TestLedgerConcurrentBookingSingleWinner(t *testing.T) {
	store := newMemStore()
	ledger := NewLedger(store)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	const attempts = 16
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(patientID int) {
			defer wg.Done()
			_, err := ledger.Book(context.Background(), 1, patientID, "2025-06-10", "09:00", "09:20", now)
			errs <- err
		}(100 + i)
	}
	wg.Wait()
	close(errs)

	wins, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrSlotConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
}
