package controllers

import (
	"fmt"
	"os"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
	"github.com/go-gomail/gomail"
)

// SendBookingConfirmation mails the patient the details of a booked slot
func SendBookingConfirmation(patient models.Patient, doctor models.Doctor, appt models.Appointment) error {
	// SMTP server configuration
	senderEmail := os.Getenv("Email")
	senderPassword := os.Getenv("Password")

	msg := fmt.Sprintf(
		"Dear %s,\n\nYour appointment has been confirmed.\n\nDoctor: %s (%s)\nClinic: %s\nDate: %s\nTime: %s - %s\n\nPlease arrive 10 minutes early.\n\nRegards,\nLocal GP System",
		patient.Name, doctor.Name, doctor.Specialization, doctor.ClinicAddress,
		appt.Date, appt.StartTime, appt.EndTime)

	// Compose email message
	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", patient.Email)
	m.SetHeader("Subject", "Appointment confirmation")
	m.SetBody("text/plain", msg)

	// Dial to SMTP server and send email
	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}

// SendPrescriptionEmail mails the patient their prescription after a visit
func SendPrescriptionEmail(patient models.Patient, prescription models.Prescription) error {
	// SMTP server configuration
	senderEmail := os.Getenv("Email")
	senderPassword := os.Getenv("Password")

	msg := fmt.Sprintf(
		"Dear %s,\n\nYour doctor has written a new prescription for appointment #%d.\n\nMedicines: %s\nInstructions: %s\n\nRegards,\nLocal GP System",
		patient.Name, prescription.AppointmentID, prescription.Medicines, prescription.Instructions)

	// Compose email message
	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", patient.Email)
	m.SetHeader("Subject", "Prescription e-mail")
	m.SetBody("text/plain", msg)

	// Dial to SMTP server and send email
	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
