package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
log_level: debug
eps_deg: 0.001
max_bearing_age: 3s
landmarks:
  - {id: beacon_1, x: -1, y: 2}
  - {id: beacon_2, x: 3, y: 1}
  - {id: beacon_3, x: 1, y: -1}
broker:
  address: tcp://broker:1883
  topics: [robot/bearings]
recorder:
  path: out/poses.csv
  interval: 500ms
`

func noEnv(string) (string, bool) { return "", false }

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample), noEnv)
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.EpsDeg)
	assert.Equal(t, 3*time.Second, cfg.MaxBearingAge)
	require.Len(t, cfg.Landmarks, 3)
	assert.Equal(t, LandmarkConfig{ID: "beacon_2", X: 3, Y: 1}, cfg.Landmarks[1])
	assert.Equal(t, "tcp://broker:1883", cfg.Broker.Address)
	assert.Equal(t, "triangulator", cfg.Broker.ClientID)
	assert.Equal(t, []string{"robot/bearings"}, cfg.Broker.Topics)
	assert.Equal(t, 500*time.Millisecond, cfg.Recorder.Interval)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
landmarks:
  - {id: a, x: 0, y: 0}
  - {id: b, x: 1, y: 0}
  - {id: c, x: 0, y: 1}
`), noEnv)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.EpsDeg, cfg.EpsDeg)
	assert.Equal(t, def.Recorder, cfg.Recorder)
	assert.Equal(t, def.Broker, cfg.Broker)
}

func TestParseEnvOverrides(t *testing.T) {
	env := map[string]string{
		"MOSQUITTO_HOST":          "mosquitto",
		"MOSQUITTO_INTERNAL_PORT": "1884",
		"MOSQUITTO_USER":          "robot",
		"MOSQUITTO_PASSWORD":      "secret",
		"MOSQUITTO_TOPIC":         "a,b",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg, err := Parse([]byte(sample), lookup)
	require.NoError(t, err)
	assert.Equal(t, "tcp://mosquitto:1884", cfg.Broker.Address)
	assert.Equal(t, "robot", cfg.Broker.Username)
	assert.Equal(t, "secret", cfg.Broker.Password)
	assert.Equal(t, []string{"a", "b"}, cfg.Broker.Topics)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"two landmarks": `
landmarks:
  - {id: a, x: 0, y: 0}
  - {id: b, x: 1, y: 0}
`,
		"duplicate id": `
landmarks:
  - {id: a, x: 0, y: 0}
  - {id: a, x: 1, y: 0}
  - {id: c, x: 0, y: 1}
`,
		"eps": `
eps_deg: 0
landmarks:
  - {id: a, x: 0, y: 0}
  - {id: b, x: 1, y: 0}
  - {id: c, x: 0, y: 1}
`,
		"log level": `
log_level: loud
landmarks:
  - {id: a, x: 0, y: 0}
  - {id: b, x: 1, y: 0}
  - {id: c, x: 0, y: 1}
`,
		"yaml": `landmarks: [`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw), noEnv)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Landmarks, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
