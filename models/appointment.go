package models

// Booking statuses. An appointment is created as booked and only ever moves to
// completed or cancelled; rows are never deleted on cancel.
const (
	StatusBooked    = "booked"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	AppointmentID int    `gorm:"primaryKey" json:"id"`
	DoctorID      int    `json:"doctor_id" gorm:"index:idx_booked_slot,priority:1;not null"`
	PatientID     int    `json:"patient_id" gorm:"index;not null"`
	Date          string `json:"date" gorm:"index:idx_booked_slot,priority:2;not null"`
	StartTime     string `json:"start_time" gorm:"index:idx_booked_slot,priority:3;not null"`
	EndTime       string `json:"end_time" gorm:"not null"`
	Status        string `json:"status" gorm:"not null;default:booked"`
}
