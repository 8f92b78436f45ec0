package models

type Patient struct {
	PatientID           int    `gorm:"primaryKey" json:"patient_id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Address             string `json:"address"`
	PreferredPharmacyID int    `json:"preferred_pharmacy_id"`
}
