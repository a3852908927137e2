package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xqrs/tview/virtual"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, virtual.Config{BufferSize: virtual.DefaultBufferSize}, cfg.Window())
}

func TestParseOverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
list:
  buffer_size: 5
  inverse_loading: true
  gap: 1
frame:
  interval: 40ms
log:
  level: debug
  human_readable: true
`))
	require.NoError(t, err)
	require.Equal(t, 5, cfg.List.BufferSize)
	require.Equal(t, 1, cfg.List.EstimatedItemHeight, "omitted keys keep their default")
	require.True(t, cfg.List.ScrollBar)
	require.Equal(t, 1, cfg.List.Gap)
	require.Equal(t, 40*time.Millisecond, cfg.Frame.Interval)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.HumanReadable)
	require.Equal(t, virtual.Config{BufferSize: 5, InverseLoading: true}, cfg.Window())
}

func TestParseValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		field string
	}{
		{name: "negative buffer", input: "list:\n  buffer_size: -1\n", field: "list.buffer_size"},
		{name: "zero buffer", input: "list:\n  buffer_size: 0\n", field: "list.buffer_size"},
		{name: "zero estimate", input: "list:\n  estimated_item_height: 0\n", field: "list.estimated_item_height"},
		{name: "negative gap", input: "list:\n  gap: -2\n", field: "list.gap"},
		{name: "short interval", input: "frame:\n  interval: 10us\n", field: "frame.interval"},
		{name: "unknown level", input: "log:\n  level: trace\n", field: "log.level"},
		{name: "unknown glyphs", input: "list:\n  scroll_bar_glyphs: fancy\n", field: "list.scroll_bar_glyphs"},
		{name: "unknown border", input: "list:\n  border: dotted\n", field: "list.border"},
		{name: "bad key", input: "keys:\n  down: [j, hyper+j]\n", field: "keys.down[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.input))
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
			require.NotNil(t, validationErr.Unwrap())
		})
	}
}

func TestParseKeys(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
keys:
  down: [j, Ctrl-N]
  page_down: [space]
list:
  scroll_bar_glyphs: unicode
`))
	require.NoError(t, err)
	require.Equal(t, []string{"j", "Ctrl-N"}, cfg.Keys.Down)
	require.Equal(t, []string{"space"}, cfg.Keys.PageDown)
	require.Empty(t, cfg.Keys.Up)
	require.Equal(t, "unicode", cfg.List.ScrollBarGlyphs)
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("list:\n  buffer_size: [\n"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Positive(t, parseErr.Line)
}

func TestParseUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("list:\n  buffer: 3\n"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)
	require.Contains(t, parseErr.Error(), "buffer")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "vlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("list:\n  scroll_bar: false\n  border: round\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.List.ScrollBar)
	require.Equal(t, "round", cfg.List.Border)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("list: {"), 0o600))
	_, err = Load(bad)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, bad, parseErr.Path)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	require.Equal(t, "parse error: a.yaml:3: boom", NewParseError("a.yaml", 3, errString("boom")).Error())
	require.Equal(t, "parse error: a.yaml: boom", NewParseError("a.yaml", 0, errString("boom")).Error())
	require.Equal(t, "validation error: list.gap: bad", NewValidationError("list.gap", "bad", nil).Error())
	require.Equal(t, "validation error: bad", NewValidationError("", "bad", nil).Error())

	var nilParse *ParseError
	require.Empty(t, nilParse.Error())
	require.NoError(t, nilParse.Unwrap())
}

type errString string

func (e errString) Error() string { return string(e) }
