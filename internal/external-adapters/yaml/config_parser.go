// Package yaml provides YAML-based loader configuration parsing.
package yaml

import (
	"fmt"
	"os"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	License             string                  `yaml:"license"`
	LogLevel            string                  `yaml:"log_level"`
	Concurrency         *int                    `yaml:"concurrency"`
	Reader              yamlReader              `yaml:"reader"`
	LicenseVerification yamlLicenseVerification `yaml:"license_verification"`
}

type yamlReader struct {
	Backend        string          `yaml:"backend"`
	Command        string          `yaml:"command"`
	Args           []string        `yaml:"args"`
	TimeoutSeconds *int            `yaml:"timeout_seconds"`
	Operations     *yamlOperations `yaml:"operations"`
}

type yamlOperations struct {
	BuildToolType string `yaml:"build_tool_type"`
	Gradle        string `yaml:"gradle"`
	Maven         string `yaml:"maven"`
}

type yamlLicenseVerification struct {
	Keyring   string `yaml:"keyring"`
	Signature string `yaml:"signature"`
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ConfigParser parses YAML loader configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML configuration file into a LoaderConfig entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.LoaderConfig, error) {
	//nolint:gosec // G304: filePath is the user-provided configuration file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a LoaderConfig entity, applying defaults for absent values
func (p *ConfigParser) Parse(data []byte) (*entities.LoaderConfig, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := entities.DefaultLoaderConfig()
	cfg.License = raw.License
	if raw.LogLevel != "" {
		cfg.LogLevel = raw.LogLevel
	}
	if raw.Concurrency != nil {
		cfg.Concurrency = *raw.Concurrency
	}
	cfg.Reader = convertReader(raw.Reader, cfg.Reader)
	cfg.LicenseVerification = entities.LicenseVerificationConfig{
		Keyring:   raw.LicenseVerification.Keyring,
		Signature: raw.LicenseVerification.Signature,
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configuration regardless of where its values came from
func Validate(cfg *entities.LoaderConfig) error {
	if !logLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level %q (expected debug, info, warn or error)", cfg.LogLevel)
	}
	if cfg.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	if cfg.Reader.TimeoutSeconds < 1 {
		return fmt.Errorf("reader timeout_seconds must be at least 1, got %d", cfg.Reader.TimeoutSeconds)
	}

	switch cfg.Reader.Backend {
	case entities.BackendFile:
	case entities.BackendExec:
		if cfg.Reader.Command == "" {
			return fmt.Errorf("reader backend %q requires a command", entities.BackendExec)
		}
	default:
		return fmt.Errorf("unknown reader backend %q (expected %s or %s)",
			cfg.Reader.Backend, entities.BackendFile, entities.BackendExec)
	}

	if cfg.LicenseVerification.Signature != "" && !cfg.LicenseVerification.Enabled() {
		return fmt.Errorf("license_verification signature requires a keyring")
	}
	return nil
}

func convertReader(yr yamlReader, defaults entities.ReaderConfig) entities.ReaderConfig {
	reader := defaults
	if yr.Backend != "" {
		reader.Backend = yr.Backend
	}
	reader.Command = yr.Command
	reader.Args = yr.Args
	if yr.TimeoutSeconds != nil {
		reader.TimeoutSeconds = *yr.TimeoutSeconds
	}
	// An explicit operations block replaces the defaults; omitted entries are unsupported
	if yr.Operations != nil {
		reader.Operations = entities.ReaderOperations{
			BuildToolType: yr.Operations.BuildToolType,
			Gradle:        yr.Operations.Gradle,
			Maven:         yr.Operations.Maven,
		}
	}
	return reader
}
