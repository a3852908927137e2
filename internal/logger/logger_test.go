package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Info().Int("start", 3).Int("end", 9).Msg("window changed")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "window changed", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.EqualValues(t, 3, entry["start"])
	require.Contains(t, entry, "time")
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "WARN", Writer: buf})
	require.NoError(t, err)

	log.Debug().Msg("resolve")
	log.Info().Msg("resolve")
	require.Zero(t, buf.Len())

	log.Warn().Msg("settle limit reached")
	require.Contains(t, buf.String(), "settle limit reached")
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Debug().Str("kind", "shift").Msg("cycle")
	out := buf.String()
	require.Contains(t, out, "cycle")
	require.Contains(t, out, "kind=")
	require.False(t, strings.HasPrefix(out, "{"), "console output is not JSON")
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}
