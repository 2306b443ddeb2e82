// Package config loads the TOML configuration of the lineedit demo.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/lineedit/editor"
	"github.com/iw2rmb/lineedit/internal/logger"
)

// Config holds the combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Field  FieldConfig   `toml:"field"`

	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string `toml:"-"`
}

// FieldConfig is the [field] table.
type FieldConfig struct {
	// Width in cells; 0 follows the terminal width.
	Width       int    `toml:"width"`
	TabWidth    int    `toml:"tab_width"`
	Placeholder string `toml:"placeholder"`

	SystemClipboard       bool `toml:"system_clipboard"`
	SelectAllOnFocus      bool `toml:"select_all_on_focus"`
	LoseFocusOnActivation bool `toml:"lose_focus_on_activation"`

	// DropPolicy is "insert" or "ignore".
	DropPolicy string `toml:"drop_policy"`
}

const (
	DefaultTabWidth    = 4
	DropPolicyInsert   = "insert"
	DropPolicyIgnore   = "ignore"
	defaultPlaceholder = "type and press enter"
)

func Default() Config {
	return Config{
		Logger: logger.DefaultConfig(),
		Field: FieldConfig{
			TabWidth:              DefaultTabWidth,
			Placeholder:           defaultPlaceholder,
			SystemClipboard:       true,
			LoseFocusOnActivation: true,
			DropPolicy:            DropPolicyInsert,
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error; an empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("parse config %q: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, k.String())
	}

	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// validate resets out-of-range values to defaults and rejects unknown enums.
func (c *Config) validate() error {
	if c.Field.Width < 0 {
		c.Field.Width = 0
	}
	if c.Field.TabWidth <= 0 {
		c.Field.TabWidth = DefaultTabWidth
	}
	if c.Logger.Level == "" {
		c.Logger.Level = logger.DefaultConfig().Level
	}

	c.Field.DropPolicy = strings.ToLower(strings.TrimSpace(c.Field.DropPolicy))
	switch c.Field.DropPolicy {
	case "":
		c.Field.DropPolicy = DropPolicyInsert
	case DropPolicyInsert, DropPolicyIgnore:
	default:
		return fmt.Errorf("field.drop_policy: unknown value %q", c.Field.DropPolicy)
	}
	return nil
}

// Editor returns the editor configuration for a terminal field. The command
// modifier is Ctrl since terminals do not report the Command key.
func (c Config) Editor(log *slog.Logger) editor.Config {
	cfg := editor.DefaultConfig()
	cfg.CommandModifier = editor.ModCtrl
	cfg.TabWidth = c.Field.TabWidth
	cfg.Placeholder = c.Field.Placeholder
	cfg.SelectAllOnFocus = c.Field.SelectAllOnFocus
	cfg.LoseFocusOnActivation = c.Field.LoseFocusOnActivation
	cfg.Logger = log

	if c.Field.DropPolicy == DropPolicyIgnore {
		cfg.DropPolicy = editor.DropIgnore
	}

	cfg.Clipboard = &editor.MemoryClipboard{}
	if sys := (editor.SystemClipboard{}); c.Field.SystemClipboard && sys.Supported() {
		cfg.Clipboard = sys
	}
	return cfg
}
