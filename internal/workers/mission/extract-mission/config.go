// internal/workers/mission/extract-mission/config.go
package extractmission

import (
	"time"

	"mission-quotation/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 60 * time.Second,
	}
}

// ConfigFrom applies the workers.extract-mission section of the application
// config.
func ConfigFrom(app *config.Config) *Config {
	c := LoadConfig()
	if wc, ok := app.Workers[TaskType]; ok && wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	return c
}
