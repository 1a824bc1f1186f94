package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ModeGrid = "grid"
	ModeRows = "rows"
)

type ServerConfig struct {
	Addr string `mapstructure:"addr"` // ":8000"
}

type RenderConfig struct {
	Weeks int `mapstructure:"weeks"`
}

type RowsConfig struct {
	Days     int      `mapstructure:"days"`
	Habits   []string `mapstructure:"habits"`
	Font     string   `mapstructure:"font"`      // path to a .ttf, empty for the built-in face
	FontSize float64  `mapstructure:"font_size"` // points at 72 dpi
}

type GenerateConfig struct {
	Daily bool   `mapstructure:"daily"` // run the generator while serving
	Time  string `mapstructure:"time"`  // "00:05"
	Seed  uint64 `mapstructure:"seed"`  // 0 picks a random seed
}

type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Config struct {
	DataPath string         `mapstructure:"data_path"`
	Theme    string         `mapstructure:"theme"`
	Mode     string         `mapstructure:"mode"`
	Timezone string         `mapstructure:"timezone"` // e.g. "Europe/Berlin" (optional)
	Server   ServerConfig   `mapstructure:"server"`
	Render   RenderConfig   `mapstructure:"render"`
	Rows     RowsConfig     `mapstructure:"rows"`
	Generate GenerateConfig `mapstructure:"generate"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Log      LogConfig      `mapstructure:"log"`
}

func Default() Config {
	return Config{
		DataPath: "habit_data.json",
		Theme:    "light",
		Mode:     ModeGrid,
		Server:   ServerConfig{Addr: ":8000"},
		Render:   RenderConfig{Weeks: 53},
		Rows: RowsConfig{
			Days:     21,
			Habits:   []string{"water", "journal", "meditate", "read", "exercise"},
			FontSize: 14,
		},
		Generate: GenerateConfig{Time: "00:05"},
		Log:      LogConfig{Level: "info"},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "habitcal", "config.yaml"), nil
}

// Load reads path if given, otherwise ./habitcal.yaml or the XDG config
// file, whichever exists. HABITCAL_* environment variables override both.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("habitcal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("data_path", cfg.DataPath)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("mode", cfg.Mode)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("render.weeks", cfg.Render.Weeks)
	v.SetDefault("rows.days", cfg.Rows.Days)
	v.SetDefault("rows.habits", cfg.Rows.Habits)
	v.SetDefault("rows.font", cfg.Rows.Font)
	v.SetDefault("rows.font_size", cfg.Rows.FontSize)
	v.SetDefault("generate.daily", cfg.Generate.Daily)
	v.SetDefault("generate.time", cfg.Generate.Time)
	v.SetDefault("generate.seed", cfg.Generate.Seed)
	v.SetDefault("notify.enabled", cfg.Notify.Enabled)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.development", cfg.Log.Development)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if found := discover(); found != "" {
		v.SetConfigFile(found)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", found, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	// normalize habit names
	habits := cfg.Rows.Habits[:0]
	for _, h := range cfg.Rows.Habits {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			habits = append(habits, h)
		}
	}
	cfg.Rows.Habits = habits
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))

	return cfg, cfg.Validate()
}

func discover() string {
	candidates := []string{"habitcal.yaml"}
	if p, err := xdgConfigPath(); err == nil {
		candidates = append(candidates, p)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate rejects settings the renderer cannot honor.
func (c Config) Validate() error {
	var errs []error
	if c.Theme != "light" && c.Theme != "dark" {
		errs = append(errs, fmt.Errorf("theme must be light or dark, got %q", c.Theme))
	}
	if c.Mode != ModeGrid && c.Mode != ModeRows {
		errs = append(errs, fmt.Errorf("mode must be %s or %s, got %q", ModeGrid, ModeRows, c.Mode))
	}
	if c.Render.Weeks <= 0 {
		errs = append(errs, fmt.Errorf("render.weeks must be positive, got %d", c.Render.Weeks))
	}
	if c.Rows.Days <= 0 {
		errs = append(errs, fmt.Errorf("rows.days must be positive, got %d", c.Rows.Days))
	}
	if c.Mode == ModeRows && len(c.Rows.Habits) == 0 {
		errs = append(errs, errors.New("rows.habits must list at least one habit"))
	}
	if _, err := time.Parse("15:04", c.Generate.Time); err != nil {
		errs = append(errs, fmt.Errorf("generate.time must be HH:MM, got %q", c.Generate.Time))
	}
	if c.DataPath == "" {
		errs = append(errs, errors.New("data_path must not be empty"))
	}
	return errors.Join(errs...)
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
