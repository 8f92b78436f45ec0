package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/OmVilasShimpi/LocalGPSystem/configuration"
	"github.com/OmVilasShimpi/LocalGPSystem/models"
	"github.com/OmVilasShimpi/LocalGPSystem/scheduling"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// slotCacheTTL keeps computed slots hot between a patient opening the picker
// and choosing a slot; bookings invalidate the key immediately.
const slotCacheTTL = 30 * time.Second

// Function to get the bookable slots for a doctor on a date. Optional
// preferred_start / preferred_end query params narrow the result to a
// time-of-day range; the filter is always applied to the freshly computed
// slot list, never to a previously filtered one.
func GetAvailableTimeSlots(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Param("doctor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}
	dateStr := c.Query("date")
	if _, err := time.Parse(scheduling.DateLayout, dateStr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	now := time.Now()
	slots, ok := cachedSlots(doctorID, dateStr)
	if !ok {
		windowList, err := windows.WindowsFor(c.Request.Context(), doctorID, dateStr)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve availability"})
			return
		}
		booked, err := appointments.ByDoctorDate(c.Request.Context(), doctorID, dateStr)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
			return
		}

		var skipped int
		slots, skipped = scheduling.ComputeSlots(doctorID, dateStr, windowList, booked, now)
		if skipped > 0 {
			configuration.Log.Warn().
				Int("doctor_id", doctorID).
				Str("date", dateStr).
				Int("skipped", skipped).
				Msg("skipped malformed rows while computing slots")
		}
		cacheSlots(doctorID, dateStr, slots)
	}

	filtered := scheduling.FilterByPreferredWindow(slots, c.Query("preferred_start"), c.Query("preferred_end"))
	if len(filtered) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No slots available for the selected doctor and date",
			"date":    dateStr,
			"slots":   []scheduling.Slot{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Time slots fetched successfully",
		"date":    dateStr,
		"slots":   filtered,
	})
}

// Booking request body
type bookingRequest struct {
	DoctorID  int    `json:"doctor_id" validate:"required"`
	PatientID int    `json:"patient_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// Book appointment func
func BookAppointment(c *gin.Context) {
	var booking bookingRequest
	if err := c.BindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check if the patient exists
	var patient models.Patient
	if err := configuration.DB.Where("patient_id = ?", booking.PatientID).First(&patient).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wrong patient ID"})
		return
	}

	appt, err := ledger.Book(c.Request.Context(), booking.DoctorID, booking.PatientID,
		booking.Date, booking.StartTime, booking.EndTime, time.Now())
	switch {
	case errors.Is(err, scheduling.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment slot must be in the future"})
		return
	case errors.Is(err, scheduling.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Another appointment has been already booked for the same date and time slot with the doctor"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		return
	}

	invalidateSlots(booking.DoctorID, booking.Date)

	// Confirmation email is best effort; the booking stands even if it fails
	var doctor models.Doctor
	if err := configuration.DB.Where("doctor_id = ?", booking.DoctorID).First(&doctor).Error; err == nil {
		if err := SendBookingConfirmation(patient, doctor, *appt); err != nil {
			configuration.Log.Warn().Err(err).Int("appointment_id", appt.AppointmentID).
				Msg("failed to send booking confirmation email")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment booked successfully",
		"Data":    appt,
	})
}

// Cancel appointment func. Cancelling keeps the row and flips the status, so
// the slot opens up again for other patients.
func CancelAppointment(c *gin.Context) {
	appointmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	appt, err := appointments.GetByID(c.Request.Context(), appointmentID)
	if errors.Is(err, scheduling.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}

	err = lifecycle.Cancel(c.Request.Context(), appointmentID, time.Now())
	switch {
	case errors.Is(err, scheduling.ErrAlreadyPast):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment time has already passed"})
		return
	case errors.Is(err, scheduling.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only booked appointments can be cancelled"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}

	invalidateSlots(appt.DoctorID, appt.Date)

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Appointment cancelled successfully",
	})
}

func cachedSlots(doctorID int, date string) ([]scheduling.Slot, bool) {
	raw, err := configuration.GetRedis(configuration.SlotCacheKey(doctorID, date))
	if err != nil {
		return nil, false
	}
	var slots []scheduling.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func cacheSlots(doctorID int, date string, slots []scheduling.Slot) {
	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := configuration.SetRedis(configuration.SlotCacheKey(doctorID, date), payload, slotCacheTTL); err != nil {
		configuration.Log.Warn().Err(err).Msg("failed to cache slots")
	}
}

func invalidateSlots(doctorID int, date string) {
	if err := configuration.DelRedis(configuration.SlotCacheKey(doctorID, date)); err != nil {
		configuration.Log.Warn().Err(err).Msg("failed to invalidate slot cache")
	}
}
