package repository

import (
	"context"
	"errors"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
	"github.com/OmVilasShimpi/LocalGPSystem/scheduling"
	"gorm.io/gorm"
)

// AppointmentStore is the postgres-backed appointment ledger.
type AppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

func (s *AppointmentStore) GetByID(ctx context.Context, id int) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.WithContext(ctx).Where("appointment_id = ?", id).First(&appt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, scheduling.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (s *AppointmentStore) ByDoctorDate(ctx context.Context, doctorID int, date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("start_time").
		Find(&appts).Error
	return appts, err
}

func (s *AppointmentStore) ByDoctor(ctx context.Context, doctorID int) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("date, start_time").
		Find(&appts).Error
	return appts, err
}

func (s *AppointmentStore) ByPatient(ctx context.Context, patientID int) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date, start_time").
		Find(&appts).Error
	return appts, err
}

// CreateIfFree inserts the appointment unless a booked appointment already
// overlaps it for the same doctor and date. Check and insert run in one
// transaction so racing bookings resolve to a single winner.
func (s *AppointmentStore) CreateIfFree(ctx context.Context, a *models.Appointment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clashes int64
		err := tx.Model(&models.Appointment{}).
			Where("doctor_id = ? AND date = ? AND status = ? AND start_time < ? AND ? < end_time",
				a.DoctorID, a.Date, models.StatusBooked, a.EndTime, a.StartTime).
			Count(&clashes).Error
		if err != nil {
			return err
		}
		if clashes > 0 {
			return scheduling.ErrSlotConflict
		}
		return tx.Create(a).Error
	})
}

func (s *AppointmentStore) UpdateStatus(ctx context.Context, id int, status string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return nil
}

// AvailabilityStore reads and writes doctor availability windows.
type AvailabilityStore struct {
	db *gorm.DB
}

func NewAvailabilityStore(db *gorm.DB) *AvailabilityStore {
	return &AvailabilityStore{db: db}
}

func (s *AvailabilityStore) WindowsFor(ctx context.Context, doctorID int, date string) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := s.db.WithContext(ctx).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("start_time").
		Find(&windows).Error
	return windows, err
}

func (s *AvailabilityStore) AddWindow(ctx context.Context, w *models.AvailabilityWindow) error {
	return s.db.WithContext(ctx).Create(w).Error
}

// PrescriptionStore answers the prescription existence check gating completion.
type PrescriptionStore struct {
	db *gorm.DB
}

func NewPrescriptionStore(db *gorm.DB) *PrescriptionStore {
	return &PrescriptionStore{db: db}
}

func (s *PrescriptionStore) HasPrescription(ctx context.Context, appointmentID int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Prescription{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error
	return count > 0, err
}
