package models

// AvailabilityWindow is a doctor-declared interval of potential availability
// on a given date. Dates are stored as YYYY-MM-DD and clock values as HH:MM:SS
// so that rows round-trip unchanged through the JSON API.
type AvailabilityWindow struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	DoctorID  int    `json:"doctor_id" gorm:"index:idx_window_doctor_date,priority:1;not null"`
	Date      string `json:"date" gorm:"index:idx_window_doctor_date,priority:2;not null"`
	StartTime string `json:"start_time" gorm:"not null"`
	EndTime   string `json:"end_time" gorm:"not null"`
}
