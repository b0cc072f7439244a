package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/keep/internal/codec"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFile is the name of the user settings file inside the data
	// directory. It is user-managed and never written by keep.
	SettingsFile = ".keepconfig.yaml"

	// Default settings values
	DefaultBinaryFormat = false
	DefaultStrictKeys   = false
	DefaultLogging      = true
	DefaultLogLevel     = "warn"
	DefaultLock         = false
	DefaultValidate     = true
)

// Settings represents user configuration from .keepconfig.yaml.
type Settings struct {
	// BinaryFormat stores records as CBOR instead of YAML.
	BinaryFormat bool `yaml:"binary_format"`

	// StrictKeys rejects empty storage keys instead of falling back to the
	// record type name.
	StrictKeys bool `yaml:"strict_keys"`

	// Logging enables the store logging hook.
	Logging bool `yaml:"logging"`

	// LogLevel is the minimum level written when logging is enabled.
	LogLevel string `yaml:"log_level"`

	// Lock takes an advisory file lock around every save and load.
	Lock bool `yaml:"lock"`

	// Validate runs record validation on save and load.
	Validate bool `yaml:"validate"`
}

// DefaultSettings returns Settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BinaryFormat: DefaultBinaryFormat,
		StrictKeys:   DefaultStrictKeys,
		Logging:      DefaultLogging,
		LogLevel:     DefaultLogLevel,
		Lock:         DefaultLock,
		Validate:     DefaultValidate,
	}
}

// LoadSettings loads .keepconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial files are merged with defaults.
func LoadSettings(dir string) (*Settings, error) {
	path := SettingsPath(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}

	return cfg, nil
}

// SettingsPath returns the path to the settings file in dir.
func SettingsPath(dir string) string {
	return filepath.Join(dir, SettingsFile)
}

// Config builds a store Config for key in dir. log is only attached when
// logging is enabled.
func (s *Settings) Config(dir, key string, log LogFunc) Config {
	cfg := Config{
		Dir:      dir,
		Key:      key,
		Format:   codec.FormatText,
		Validate: s.Validate,
		Lock:     s.Lock,
	}
	if s.BinaryFormat {
		cfg.Format = codec.FormatBinary
	}
	if s.StrictKeys {
		cfg.KeyPolicy = KeyStrict
	}
	if s.Logging {
		cfg.Log = log
	}
	return cfg
}
