package models

import (
	"gorm.io/gorm"
)

type Prescription struct {
	gorm.Model
	AppointmentID int    `json:"appointment_id" gorm:"uniqueIndex;not null"`
	DoctorID      int    `json:"doctor_id"`
	PatientID     int    `json:"patient_id"`
	Medicines     string `json:"medicines"`
	Instructions  string `json:"instructions"`
}
