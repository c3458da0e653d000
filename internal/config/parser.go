// Package config resolves the runtime configuration from flags and environment.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fgeck/monoff/internal/models"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables, e.g. MONOFF_DELAY.
const EnvPrefix = "MONOFF"

// DelayKey is the configuration key and flag name for the delay.
const DelayKey = "delay"

// Parser handles configuration resolution.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(DelayKey, models.DefaultDelayMS)
	return &Parser{v: v}
}

// Load resolves the delay. A flag set on the command line wins over the
// environment, which wins over the default.
func (p *Parser) Load(flags *pflag.FlagSet) (*models.DelayConfig, error) {
	if flags != nil {
		if f := flags.Lookup(DelayKey); f != nil {
			if err := p.v.BindPFlag(DelayKey, f); err != nil {
				return nil, fmt.Errorf("binding %s flag: %w", DelayKey, err)
			}
		}
	}

	delay, err := ParseDelay(p.v.GetString(DelayKey))
	if err != nil {
		return nil, &models.ArgumentError{Err: err}
	}

	return &models.DelayConfig{Delay: delay}, nil
}

// ParseDelay parses a delay in milliseconds in the range 0..65535.
func ParseDelay(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("delay must not be empty")
	}

	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q: must be an integer between 0 and %d", s, math.MaxUint16)
	}

	return uint16(n), nil
}
