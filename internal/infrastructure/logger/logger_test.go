package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)

	log.Info().Msg("test message")

	result := jsonLine(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "test-service"}, &buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"info logged at debug level", "debug", "info", true},
		{"debug suppressed at info level", "info", "debug", false},
		{"info logged at info level", "info", "info", true},
		{"warn logged at info level", "info", "warn", true},
		{"info suppressed at warn level", "warn", "info", false},
		{"error logged at error level", "error", "error", true},
		{"warn suppressed at error level", "error", "warn", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.configLevel, Format: "json", ServiceName: "test"}, &buf)

			switch tt.logLevel {
			case "debug":
				log.Debug().Msg("test")
			case "info":
				log.Info().Msg("test")
			case "warn":
				log.Warn().Msg("test")
			case "error":
				log.Error().Msg("test")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewWithOutput_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "invalid", Format: "json", ServiceName: "test"}, &buf)

	log.Debug().Msg("filtered")
	assert.Empty(t, buf.String())

	log.Info().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

func TestNewWithOutput_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test", EnableCaller: true}, &buf)

	log.Info().Msg("test")

	result := jsonLine(t, &buf)
	require.Contains(t, result, "caller")
	assert.Contains(t, result["caller"].(string), "logger_test.go")
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	log.WithField("offer_id", "1").Info().Msg("test")

	assert.Equal(t, "1", jsonLine(t, &buf)["offer_id"])
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	log.WithRequestID("req-123").Info().Msg("test")

	assert.Equal(t, "req-123", jsonLine(t, &buf)["request_id"])
}

func TestLogger_WithSource(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	log.WithSource("amadeus").Info().Msg("test")

	assert.Equal(t, "amadeus", jsonLine(t, &buf)["source"])
}

func TestLogger_FieldsAccumulate(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	log.WithRequestID("req-9").WithSource("adsb").Info().Msg("test")

	result := jsonLine(t, &buf)
	assert.Equal(t, "req-9", result["request_id"])
	assert.Equal(t, "adsb", result["source"])
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info().Msg("this should not appear")
	log.Error().Msg("nor this")
}

func TestLogger_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	log.Info().
		Str("from", "DEL").
		Str("to", "BOM").
		Int("passengers", 2).
		Int("price", 5000).
		Bool("direct", true).
		Msg("Flight search")

	result := jsonLine(t, &buf)
	assert.Equal(t, "DEL", result["from"])
	assert.Equal(t, "BOM", result["to"])
	assert.Equal(t, float64(2), result["passengers"])
	assert.Equal(t, float64(5000), result["price"])
	assert.Equal(t, true, result["direct"])
	assert.Equal(t, "Flight search", result["message"])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EnableCaller)
	assert.Equal(t, "flight-data", cfg.ServiceName)
}
