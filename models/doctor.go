package models

type Doctor struct {
	DoctorID       int                  `gorm:"primaryKey" json:"doctor_id"`
	Name           string               `json:"name" gorm:"not null"`
	Specialization string               `json:"specialization" gorm:"not null"`
	ClinicAddress  string               `json:"clinic_address"`
	RegistrationNo string               `json:"registration_no"`
	Email          string               `json:"email" gorm:"unique"`
	Windows        []AvailabilityWindow `gorm:"foreignKey:DoctorID" json:"-"`
}
