package configuration

import (
	"os"

	"github.com/OmVilasShimpi/LocalGPSystem/models"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {

	if err := godotenv.Load(".env"); err != nil {
		Log.Warn().Msg("No .env file found, relying on process environment")
	}
	dsn := os.Getenv("DB")
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Log.Fatal().Err(err).Msg("Failed to connect to the database")
	}

	DB.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.AvailabilityWindow{},
		&models.Appointment{},
		&models.Prescription{},
	)

}
