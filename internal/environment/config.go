package environment

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// EnvConfig carries process-level settings read from the environment. The CLI
// uses them as flag defaults.
type EnvConfig struct {
	LogLevel     string
	ScenarioPath string
	NoColor      bool
}

// ReadEnvConfig loads .env if one is present and reads the settings.
func ReadEnvConfig() *EnvConfig {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return &EnvConfig{
		LogLevel:     os.Getenv("LOG_LEVEL"),
		ScenarioPath: os.Getenv("SCENARIO_FILE"),
		NoColor:      os.Getenv("NO_COLOR") != "",
	}
}
