package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/OmVilasShimpi/LocalGPSystem/configuration"
	"github.com/OmVilasShimpi/LocalGPSystem/models"
	"github.com/OmVilasShimpi/LocalGPSystem/scheduling"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Availability request body
type availabilityRequest struct {
	DoctorID  int    `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// SaveAvailability saves the availability window of a doctor
func SaveAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if doctor exists
	var doctor models.Doctor
	if err := configuration.DB.Where("doctor_id = ?", req.DoctorID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor id not found"})
		return
	}

	window, err := lifecycle.AddSlotWindow(c.Request.Context(), req.DoctorID, req.Date, req.StartTime, req.EndTime)
	if errors.Is(err, scheduling.ErrInvalidRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Availability must fall between 06:00 and 23:00 with start before end"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create availability"})
		return
	}

	invalidateSlots(req.DoctorID, req.Date)

	c.JSON(http.StatusOK, window)
}

// Prescription request body
type prescriptionRequest struct {
	AppointmentID int    `json:"appointment_id" validate:"required"`
	DoctorID      int    `json:"doctor_id" validate:"required"`
	PatientID     int    `json:"patient_id" validate:"required"`
	Medicines     string `json:"medicines" validate:"required"`
	Instructions  string `json:"instructions"`
}

// AddPrescription records the clinical outcome of a visit. Writing the
// prescription is what later allows the appointment to be completed.
func AddPrescription(c *gin.Context) {
	var req prescriptionRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if the appointment exists for the doctor and patient
	var appointment models.Appointment
	if err := configuration.DB.Where("doctor_id = ? AND patient_id = ? AND appointment_id = ?",
		req.DoctorID, req.PatientID, req.AppointmentID).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No appointment found for the doctor and patient"})
		return
	}

	switch appointment.Status {
	case models.StatusCompleted:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment has already been completed"})
		return
	case models.StatusCancelled:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment has been cancelled"})
		return
	}

	// One prescription per appointment
	var existing int64
	configuration.DB.Model(&models.Prescription{}).
		Where("appointment_id = ?", req.AppointmentID).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prescription already added for this appointment"})
		return
	}

	prescription := models.Prescription{
		AppointmentID: req.AppointmentID,
		DoctorID:      req.DoctorID,
		PatientID:     req.PatientID,
		Medicines:     req.Medicines,
		Instructions:  req.Instructions,
	}
	if err := configuration.DB.Create(&prescription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add prescription"})
		return
	}

	// Prescription email is best effort
	var patient models.Patient
	if err := configuration.DB.Where("patient_id = ?", req.PatientID).First(&patient).Error; err == nil {
		if err := SendPrescriptionEmail(patient, prescription); err != nil {
			configuration.Log.Warn().Err(err).Int("appointment_id", req.AppointmentID).
				Msg("failed to send prescription email")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":       "Success",
		"Message":      "Prescription added successfully",
		"prescription": prescription,
	})
}

// CompleteAppointment marks a visit as done. It fails until a prescription
// has been written for the appointment.
func CompleteAppointment(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	err = lifecycle.Complete(c.Request.Context(), appointmentID)
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	case errors.Is(err, scheduling.ErrPrescriptionMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please write a prescription first"})
		return
	case errors.Is(err, scheduling.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only booked appointments can be completed"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment marked as completed",
	})
}

// Getting doctors by speciality
func GetDoctorsBySpeciality(c *gin.Context) {
	var doctors []models.Doctor
	doctorSpeciality := c.Param("specialization")

	if err := configuration.DB.Where("specialization = ?", doctorSpeciality).Find(&doctors).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No doctors found with the specified speciality"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error":   "Couldn't get doctors details",
			"details": err.Error()})
		return
	}

	if len(doctors) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No doctors found with the specified speciality"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctors details list fetched successfully",
		"data":    doctors,
	})
}

// Func to get doctor dashboard stats
func GetDoctorStats(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Param("doctor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	// Total distinct patients seen by this doctor
	var totalPatients int64
	if err := configuration.DB.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Distinct("patient_id").
		Count(&totalPatients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch patient count"})
		return
	}

	// Completed appointments
	var completed int64
	if err := configuration.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = ?", doctorID, models.StatusCompleted).
		Count(&completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch completed bookings"})
		return
	}

	// Windows declared over the coming week
	today := time.Now().Format(scheduling.DateLayout)
	weekEnd := time.Now().AddDate(0, 0, 6).Format(scheduling.DateLayout)
	var weeklyWindows []models.AvailabilityWindow
	if err := configuration.DB.
		Where("doctor_id = ? AND date BETWEEN ? AND ?", doctorID, today, weekEnd).
		Order("date, start_time").
		Find(&weeklyWindows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch weekly slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_patients":         totalPatients,
		"completed_appointments": completed,
		"slots_this_week":        len(weeklyWindows),
		"weekly_slots":           weeklyWindows,
	})
}
