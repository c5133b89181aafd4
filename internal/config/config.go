package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/calstep/pkg/timeutil"
)

// Config represents application configuration
type Config struct {
	Units    UnitsConfig `mapstructure:"units"`
	Location string      `mapstructure:"location"` // IANA zone used to read input times
	Log      LogConfig   `mapstructure:"log"`
}

// UnitsConfig represents the fixed lengths of day, hour and minute in seconds
type UnitsConfig struct {
	DaySeconds    int `mapstructure:"day_seconds"`
	HourSeconds   int `mapstructure:"hour_seconds"`
	MinuteSeconds int `mapstructure:"minute_seconds"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty means console
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. Without an explicit path a missing
// config file is not an error and defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.calstep")
		v.AddConfigPath("/etc/calstep")
	}

	// Read environment variables, e.g. CALSTEP_UNITS_DAY_SECONDS
	v.SetEnvPrefix("calstep")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("units.day_seconds", 86400)
	v.SetDefault("units.hour_seconds", 3600)
	v.SetDefault("units.minute_seconds", 60)
	v.SetDefault("location", "Local")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Units.DaySeconds <= 0 {
		return fmt.Errorf("units.day_seconds must be positive")
	}
	if c.Units.HourSeconds <= 0 {
		return fmt.Errorf("units.hour_seconds must be positive")
	}
	if c.Units.MinuteSeconds <= 0 {
		return fmt.Errorf("units.minute_seconds must be positive")
	}

	if _, err := c.GetLocation(); err != nil {
		return err
	}

	return nil
}

// Lengths returns the unit lengths for the time wrapper
func (c *UnitsConfig) Lengths() timeutil.Lengths {
	return timeutil.Lengths{
		Day:    time.Duration(c.DaySeconds) * time.Second,
		Hour:   time.Duration(c.HourSeconds) * time.Second,
		Minute: time.Duration(c.MinuteSeconds) * time.Second,
	}
}

// GetLocation returns the configured time zone
func (c *Config) GetLocation() (*time.Location, error) {
	if c.Location == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", c.Location, err)
	}
	return loc, nil
}
