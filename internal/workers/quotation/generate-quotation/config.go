// internal/workers/quotation/generate-quotation/config.go
package generatequotation

import (
	"time"

	"mission-quotation/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

func ConfigFrom(app *config.Config) *Config {
	c := LoadConfig()
	if wc, ok := app.Workers[TaskType]; ok && wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	return c
}
