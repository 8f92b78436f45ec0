package routes

import (
	"github.com/OmVilasShimpi/LocalGPSystem/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes() *gin.Engine {
	//creates a new Gin engine instance with default configurations
	r := gin.Default()
	r.Use(RequestLogger())

	//user routers
	user := r.Group("/user")
	{
		user.GET("/doctors/:doctor_id/available-slots", controllers.GetAvailableTimeSlots)
		user.GET("/doctor/:specialization", controllers.GetDoctorsBySpeciality)
		user.POST("/book/appointment", controllers.BookAppointment)
		user.POST("/cancel/appointment/:id", controllers.CancelAppointment)
		user.GET("/appointment/history/:id", controllers.GetAppointmentHistory)
	}

	//Doctor routes
	doctors := r.Group("/doctor")
	{
		doctors.POST("/update/availability", controllers.SaveAvailability)
		doctors.POST("/add/prescription", controllers.AddPrescription)
		doctors.POST("/complete/appointment/:id", controllers.CompleteAppointment)
		doctors.POST("/cancel/appointment/:id", controllers.CancelAppointment)
		doctors.GET("/appointment/history/:id", controllers.GetDoctorAppointmentHistory)
		doctors.GET("/appointments/latest-per-patient/:doctor_id", controllers.GetLatestPerPatient)
		doctors.GET("/stats/:doctor_id", controllers.GetDoctorStats)
	}

	//Admin routes
	admin := r.Group("/admin")
	{
		admin.GET("/total/appointments", controllers.GetBookingStatusCounts)
	}

	return r
}
