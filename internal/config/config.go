// Package config loads service configuration from environment variables and
// provides the masked dump used by the diagnostics surface.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds every knob shared by the binaries. Fields parse from the
// environment; defaults suit local play.
type Config struct {
	SSHHost    string `env:"SSH_HOST" envDefault:"::"`
	SSHPort    string `env:"SSH_PORT" envDefault:"2222"`
	SSHHostKey string `env:"SSH_HOST_KEY" envDefault:"/app/keys/host_key"`

	WebHost string `env:"WEB_HOST" envDefault:"0.0.0.0"`
	WebPort string `env:"WEB_PORT" envDefault:"8080"`

	ScorePath    string `env:"SCORE_DB" envDefault:""`
	AudioEnabled bool   `env:"AUDIO_ENABLED" envDefault:"true"`
	AILevel      int    `env:"AI_LEVEL" envDefault:"2"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// maskRune is the character substituted for hidden value content.
const maskRune = '*'

// Mask obscures a configuration value for diagnostics output. Values of six
// characters or fewer are hidden entirely; longer values keep their first
// and last three characters around a masked interior.
func Mask(value string) string {
	runes := []rune(value)
	if len(runes) <= 6 {
		return strings.Repeat(string(maskRune), len(runes))
	}
	var b strings.Builder
	b.WriteString(string(runes[:3]))
	for i := 3; i < len(runes)-3; i++ {
		b.WriteRune(maskRune)
	}
	b.WriteString(string(runes[len(runes)-3:]))
	return b.String()
}

// Dump returns the configuration as a key/value map with every value masked,
// suitable for exposing on the diagnostics endpoint.
func (c Config) Dump() map[string]string {
	return map[string]string{
		"ssh_host":      Mask(c.SSHHost),
		"ssh_port":      Mask(c.SSHPort),
		"ssh_host_key":  Mask(c.SSHHostKey),
		"web_host":      Mask(c.WebHost),
		"web_port":      Mask(c.WebPort),
		"score_db":      Mask(c.ScorePath),
		"audio_enabled": Mask(fmt.Sprintf("%t", c.AudioEnabled)),
		"ai_level":      Mask(fmt.Sprintf("%d", c.AILevel)),
	}
}
