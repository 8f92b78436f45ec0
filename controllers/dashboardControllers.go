package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/OmVilasShimpi/LocalGPSystem/configuration"
	"github.com/OmVilasShimpi/LocalGPSystem/models"
	"github.com/OmVilasShimpi/LocalGPSystem/scheduling"
	"github.com/gin-gonic/gin"
)

// appointmentView decorates a ledger row with the derived overdue flag for
// dashboard rendering. Overdue is never persisted.
type appointmentView struct {
	models.Appointment
	Overdue bool `json:"overdue"`
}

func annotate(appts []models.Appointment, now time.Time) []appointmentView {
	views := make([]appointmentView, 0, len(appts))
	for _, appt := range appts {
		views = append(views, appointmentView{
			Appointment: appt,
			Overdue:     scheduling.Overdue(appt, now),
		})
	}
	return views
}

// Func to get a patient's appointment history
func GetAppointmentHistory(c *gin.Context) {
	patientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient id"})
		return
	}

	history, err := appointments.ByPatient(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error":   "Couldn't get appointment history",
			"details": err.Error()})
		return
	}
	if len(history) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment history fetched successfully",
		"data":    annotate(history, time.Now()),
	})
}

// Func to get a doctor's appointment history
func GetDoctorAppointmentHistory(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	history, err := appointments.ByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"Error":   "Couldn't get appointment history",
			"details": err.Error()})
		return
	}
	if len(history) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment history fetched successfully",
		"data":    annotate(history, time.Now()),
	})
}

// GetLatestPerPatient collapses a doctor's appointment history to the single
// most relevant appointment per patient for the dashboard summary: a live
// booking beats a finished visit however old, otherwise the later one wins.
func GetLatestPerPatient(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Param("doctor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	history, err := appointments.ByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointments"})
		return
	}

	winners, skipped := scheduling.ResolveLatestPerPatient(history)
	if skipped > 0 {
		configuration.Log.Warn().
			Int("doctor_id", doctorID).
			Int("skipped", skipped).
			Msg("skipped malformed appointment rows while grouping per patient")
	}

	now := time.Now()
	views := make(map[int]appointmentView, len(winners))
	for patientID, appt := range winners {
		views[patientID] = appointmentView{
			Appointment: appt,
			Overdue:     scheduling.Overdue(appt, now),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":       "Success",
		"Message":      "Latest appointment per patient fetched successfully",
		"appointments": views,
	})
}

// Func to get overall booking status counts
func GetBookingStatusCounts(c *gin.Context) {
	var totalBookings int64
	result := configuration.DB.Model(&models.Appointment{}).Count(&totalBookings)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch total bookings"})
		return
	}

	var bookedCount int64
	bookedResult := configuration.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusBooked).Count(&bookedCount)
	if bookedResult.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch booked appointments"})
		return
	}

	var completedCount int64
	completedResult := configuration.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusCompleted).Count(&completedCount)
	if completedResult.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch completed appointments"})
		return
	}

	var cancelledCount int64
	cancelledResult := configuration.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusCancelled).Count(&cancelledCount)
	if cancelledResult.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"Error": "Failed to fetch cancelled appointments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":                "Success",
		"Message":               "Booking details fetched successfully",
		"TotalBookings":         totalBookings,
		"BookedAppointments":    bookedCount,
		"CompletedAppointments": completedCount,
		"CancelledAppointments": cancelledCount,
	})
}
