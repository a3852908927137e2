// Package config loads the settings of virtual lists from YAML.
package config

import (
	"time"

	"github.com/xqrs/tview/virtual"
)

// Config is the root of a configuration file.
type Config struct {
	List  List  `yaml:"list"`
	Keys  Keys  `yaml:"keys"`
	Frame Frame `yaml:"frame"`
	Log   Log   `yaml:"log"`
}

// List configures a virtual list. ScrollBarGlyphs is one of minimal,
// unicode, or legacy; Border one of none, plain, round, thick, or double.
type List struct {
	BufferSize          int    `yaml:"buffer_size" validate:"min=1"`
	InverseLoading      bool   `yaml:"inverse_loading"`
	EstimatedItemHeight int    `yaml:"estimated_item_height" validate:"min=1"`
	Gap                 int    `yaml:"gap" validate:"min=0"`
	ScrollBar           bool   `yaml:"scroll_bar"`
	ScrollBarGlyphs     string `yaml:"scroll_bar_glyphs" validate:"oneof=minimal unicode legacy"`
	Border              string `yaml:"border" validate:"oneof=none plain round thick double"`
}

// Keys overrides the list keys. An empty list keeps the built-in keys.
type Keys struct {
	Up       []string `yaml:"up" validate:"dive,keyspec"`
	Down     []string `yaml:"down" validate:"dive,keyspec"`
	PageUp   []string `yaml:"page_up" validate:"dive,keyspec"`
	PageDown []string `yaml:"page_down" validate:"dive,keyspec"`
	Top      []string `yaml:"top" validate:"dive,keyspec"`
	Bottom   []string `yaml:"bottom" validate:"dive,keyspec"`
}

// Frame configures how often resolution cycles may run.
type Frame struct {
	Interval time.Duration `yaml:"interval" validate:"gte=1ms"`
}

// Log configures the logger.
type Log struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the configuration used when no file is given. Parsed files
// start from it, so omitted keys keep these values.
func Default() Config {
	return Config{
		List: List{
			BufferSize:          virtual.DefaultBufferSize,
			EstimatedItemHeight: 1,
			ScrollBar:           true,
			ScrollBarGlyphs:     "minimal",
			Border:              "none",
		},
		Frame: Frame{Interval: virtual.DefaultFrameInterval},
		Log:   Log{Level: "info"},
	}
}

// Window returns the window configuration of the list section.
func (c Config) Window() virtual.Config {
	return virtual.Config{
		BufferSize:     c.List.BufferSize,
		InverseLoading: c.List.InverseLoading,
	}
}
