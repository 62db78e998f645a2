// Package config loads diario settings from .diario.yaml, DIARIO_*
// environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/diario/pkg/store"
)

const (
	// FileName is the config file name without extension.
	FileName = ".diario"
	// EnvPrefix prefixes environment overrides, e.g. DIARIO_PATH.
	EnvPrefix = "DIARIO"
	// PathOverrideEnv names an extra directory searched for the config file.
	PathOverrideEnv = "DIARIO_CONFIG_PATH"

	DefaultPath    = "~/.diario"
	DefaultHour    = 9
	DefaultMinute  = 0
	DefaultAddr    = "127.0.0.1:8080"
	DefaultLogFile = "diario.log"
)

// Config is the resolved configuration.
type Config struct {
	// Path is the store directory with ~ expanded.
	Path     string
	Driver   store.Driver
	Debug    bool
	Reminder Reminder
	Serve    Serve
	// File is the config file that was read, empty when none was found.
	File string
}

type Reminder struct {
	Enabled bool
	Hour    int
	Minute  int
}

type Serve struct {
	Addr    string
	Origins []string
}

// LogFile is where interactive sessions write their log.
func (c *Config) LogFile() string {
	return filepath.Join(c.Path, DefaultLogFile)
}

// StoreOptions returns the options to open the configured store.
func (c *Config) StoreOptions() store.Options {
	return store.Options{Driver: c.Driver, BasePath: c.Path}
}

// New returns a viper instance with defaults, search paths and environment
// binding set up. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("driver", string(store.DriverDiskv))
	v.SetDefault("debug", false)
	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.hour", DefaultHour)
	v.SetDefault("reminder.minute", DefaultMinute)
	v.SetDefault("serve.addr", DefaultAddr)
	v.SetDefault("serve.origins", []string{})

	v.SetConfigName(FileName) // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // reminder.hour -> DIARIO_REMINDER_HOUR
	v.AutomaticEnv()

	if override := os.Getenv(PathOverrideEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// Load reads the config file, if any, and resolves the settings in v.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expanding path: %w", err)
	}
	driver, err := store.ParseDriver(v.GetString("driver"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		Path:   path,
		Driver: driver,
		Debug:  v.GetBool("debug"),
		Reminder: Reminder{
			Enabled: v.GetBool("reminder.enabled"),
			Hour:    v.GetInt("reminder.hour"),
			Minute:  v.GetInt("reminder.minute"),
		},
		Serve: Serve{
			Addr:    v.GetString("serve.addr"),
			Origins: v.GetStringSlice("serve.origins"),
		},
		File: v.ConfigFileUsed(),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Reminder.Hour < 0 || c.Reminder.Hour > 23 {
		return fmt.Errorf("config: reminder.hour %d out of range 0-23", c.Reminder.Hour)
	}
	if c.Reminder.Minute < 0 || c.Reminder.Minute > 59 {
		return fmt.Errorf("config: reminder.minute %d out of range 0-59", c.Reminder.Minute)
	}
	return nil
}
