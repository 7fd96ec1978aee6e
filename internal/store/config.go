package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configName = ".treetool" // .yaml is implicit
	envPrefix  = "TREETOOL"
)

// Glyph sets for fold markers.
const (
	GlyphsASCII   = "ascii"
	GlyphsUnicode = "unicode"
)

type Config struct {
	// ShowHelp opens the TUI with the help bar visible.
	ShowHelp bool
	// FlashBlinks is how many times a new status message blinks.
	FlashBlinks int
	// FlashInterval is the time between blink frames.
	FlashInterval time.Duration
	// PreserveDelimiter makes saves reuse the delimiter a file was read with.
	PreserveDelimiter bool
	// RecentDB is the path of the recent-files index; empty disables it.
	RecentDB    string
	RecentLimit int
	Glyphs      string

	// File is the config file that was read, if any.
	File string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("show_help", false)
	v.SetDefault("flash_blinks", 2)
	v.SetDefault("flash_interval", "96ms")
	v.SetDefault("preserve_delimiter", false)
	v.SetDefault("recent_db", "~/.treetool/recent.sqlite")
	v.SetDefault("recent_limit", 20)
	v.SetDefault("glyphs", GlyphsASCII)
}

// LoadConfig reads .treetool.yaml from $TREETOOL_CONFIG_PATH, the home
// directory or the working directory, in that order. TREETOOL_* environment
// variables override file values. A missing config file is not an error;
// explicit, when set, names a config file that must exist.
func LoadConfig(explicit string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if explicit != "" {
		p, err := homedir.Expand(explicit)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(p)
	} else {
		v.SetConfigName(configName)
		if override := os.Getenv(envPrefix + "_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		ShowHelp:          v.GetBool("show_help"),
		FlashBlinks:       v.GetInt("flash_blinks"),
		FlashInterval:     v.GetDuration("flash_interval"),
		PreserveDelimiter: v.GetBool("preserve_delimiter"),
		RecentLimit:       v.GetInt("recent_limit"),
		Glyphs:            v.GetString("glyphs"),
		File:              v.ConfigFileUsed(),
	}
	if db := v.GetString("recent_db"); db != "" {
		p, err := homedir.Expand(db)
		if err != nil {
			return nil, err
		}
		cfg.RecentDB = filepath.Clean(p)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.FlashBlinks < 0 {
		return fmt.Errorf("flash_blinks must be >= 0 (got %d)", c.FlashBlinks)
	}
	if c.FlashInterval <= 0 {
		return fmt.Errorf("flash_interval must be positive (got %s)", c.FlashInterval)
	}
	if c.RecentLimit <= 0 {
		return fmt.Errorf("recent_limit must be positive (got %d)", c.RecentLimit)
	}
	switch c.Glyphs {
	case GlyphsASCII, GlyphsUnicode:
	default:
		return fmt.Errorf("glyphs must be %q or %q (got %q)", GlyphsASCII, GlyphsUnicode, c.Glyphs)
	}
	return nil
}

// ExpandPath resolves a leading ~ in a user-supplied file path.
func ExpandPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	return homedir.Expand(p)
}
