// internal/workers/quotation/export-quotation/config.go
package exportquotation

import (
	"time"

	"mission-quotation/internal/common/config"
)

type Config struct {
	Timeout       time.Duration
	DefaultFormat string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       10 * time.Second,
		DefaultFormat: "csv",
	}
}

func ConfigFrom(app *config.Config) *Config {
	c := LoadConfig()
	if wc, ok := app.Workers[TaskType]; ok && wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	return c
}
