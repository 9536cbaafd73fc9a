// Package config loads the service configuration from YAML with
// environment overrides for the broker.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel      string           `yaml:"log_level"`
	EpsDeg        float64          `yaml:"eps_deg"`
	MaxBearingAge time.Duration    `yaml:"max_bearing_age"`
	Landmarks     []LandmarkConfig `yaml:"landmarks"`
	Broker        BrokerConfig     `yaml:"broker"`
	Recorder      RecorderConfig   `yaml:"recorder"`
}

type LandmarkConfig struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

type BrokerConfig struct {
	Address  string   `yaml:"address"`
	ClientID string   `yaml:"client_id"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Topics   []string `yaml:"topics"`
}

type RecorderConfig struct {
	Path     string        `yaml:"path"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the configuration used for omitted fields.
func Default() Config {
	return Config{
		LogLevel:      "info",
		EpsDeg:        1e-4,
		MaxBearingAge: 5 * time.Second,
		Broker: BrokerConfig{
			Address:  "tcp://localhost:1883",
			ClientID: "triangulator",
			Topics:   []string{"bearings"},
		},
		Recorder: RecorderConfig{
			Path:     "data/poses.csv",
			Interval: 2 * time.Second,
		},
	}
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(raw, os.LookupEnv)
}

// Parse decodes YAML over the defaults. lookupEnv is os.LookupEnv outside tests.
func Parse(raw []byte, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.applyEnv(lookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) {
	if host, ok := lookupEnv("MOSQUITTO_HOST"); ok {
		port, ok := lookupEnv("MOSQUITTO_INTERNAL_PORT")
		if !ok {
			port = "1883"
		}
		c.Broker.Address = "tcp://" + host + ":" + port
	}
	if v, ok := lookupEnv("MOSQUITTO_USER"); ok {
		c.Broker.Username = v
	}
	if v, ok := lookupEnv("MOSQUITTO_PASSWORD"); ok {
		c.Broker.Password = v
	}
	if v, ok := lookupEnv("MOSQUITTO_TOPIC"); ok && v != "" {
		c.Broker.Topics = strings.Split(v, ",")
	}
}

func (c Config) Validate() error {
	if len(c.Landmarks) != 3 {
		return fmt.Errorf("%w: need exactly 3 landmarks, got %d", ErrInvalidConfig, len(c.Landmarks))
	}
	seen := make(map[string]bool, 3)
	for _, l := range c.Landmarks {
		if l.ID == "" {
			return fmt.Errorf("%w: landmark without id", ErrInvalidConfig)
		}
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate landmark %q", ErrInvalidConfig, l.ID)
		}
		seen[l.ID] = true
	}
	if !(c.EpsDeg > 0 && c.EpsDeg < 90) {
		return fmt.Errorf("%w: eps_deg %v out of range (0, 90)", ErrInvalidConfig, c.EpsDeg)
	}
	if c.MaxBearingAge < 0 {
		return fmt.Errorf("%w: negative max_bearing_age", ErrInvalidConfig)
	}
	if c.Recorder.Interval <= 0 {
		return fmt.Errorf("%w: recorder interval must be positive", ErrInvalidConfig)
	}
	if c.Broker.Address == "" || len(c.Broker.Topics) == 0 {
		return fmt.Errorf("%w: broker address and topics are required", ErrInvalidConfig)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps log_level onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
