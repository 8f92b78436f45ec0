package configuration

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the application wide logger
var Log zerolog.Logger

// InitLogger sets up the process-wide zerolog instance
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	Log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("LOG_PRETTY") == "true" {
		Log = Log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}
