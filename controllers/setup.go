package controllers

import (
	"github.com/OmVilasShimpi/LocalGPSystem/configuration"
	"github.com/OmVilasShimpi/LocalGPSystem/repository"
	"github.com/OmVilasShimpi/LocalGPSystem/scheduling"
)

var (
	appointments  *repository.AppointmentStore
	windows       *repository.AvailabilityStore
	prescriptions *repository.PrescriptionStore
	ledger        *scheduling.Ledger
	lifecycle     *scheduling.Lifecycle
)

// Setup wires the booking engine to the shared database connection. Must be
// called after configuration.ConfigDB.
func Setup() {
	appointments = repository.NewAppointmentStore(configuration.DB)
	windows = repository.NewAvailabilityStore(configuration.DB)
	prescriptions = repository.NewPrescriptionStore(configuration.DB)
	ledger = scheduling.NewLedger(appointments)
	lifecycle = scheduling.NewLifecycle(appointments, prescriptions, windows)
}
