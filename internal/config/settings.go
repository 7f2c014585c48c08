package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings carries environment-supplied defaults for a probe run. Flags take
// precedence; these exist so a fleet agent can configure every scheduled
// probe on a host without touching individual command lines.
type Settings struct {
	LogDir   string        `env:"WINGETPROBE_LOG_DIR"`
	LogLevel string        `env:"WINGETPROBE_LOG_LEVEL" envDefault:"info"`
	ToolPath string        `env:"WINGETPROBE_WINGET_PATH"`
	Timeout  time.Duration `env:"WINGETPROBE_TIMEOUT" envDefault:"30s"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, nil
}
