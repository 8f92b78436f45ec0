package scheduling

import (
	"context"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
)

// AvailabilitySource supplies the windows a doctor has declared.
type AvailabilitySource interface {
	WindowsFor(ctx context.Context, doctorID int, date string) ([]models.AvailabilityWindow, error)
	AddWindow(ctx context.Context, w *models.AvailabilityWindow) error
}

// AppointmentStore is the ledger the engine books into. CreateIfFree must
// perform its conflict check and insert atomically: given two racing inserts
// for the same doctor/date/start, exactly one may succeed and the other must
// get ErrSlotConflict.
type AppointmentStore interface {
	GetByID(ctx context.Context, id int) (*models.Appointment, error)
	ByDoctorDate(ctx context.Context, doctorID int, date string) ([]models.Appointment, error)
	ByDoctor(ctx context.Context, doctorID int) ([]models.Appointment, error)
	ByPatient(ctx context.Context, patientID int) ([]models.Appointment, error)
	CreateIfFree(ctx context.Context, a *models.Appointment) error
	UpdateStatus(ctx context.Context, id int, status string) error
}

// PrescriptionChecker reports whether a clinical record exists for an appointment.
type PrescriptionChecker interface {
	HasPrescription(ctx context.Context, appointmentID int) (bool, error)
}
