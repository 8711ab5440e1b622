package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	adapters "github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain-adapters/gateways"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces/gateways"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces/services"
	domainservices "github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/services"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/external-adapters/yaml"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/external-adapters/zaplog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	licensePath string
	backend     string
	verbose     bool

	// Resolved before any sub-command runs
	cfg    *entities.LoaderConfig
	logger *zaplog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scandump",
	Short: "Read Develocity Build Scan dumps of Gradle and Maven builds",
	Long: `scandump reads Build Scan dumps captured by the Develocity Gradle plugin or
Maven extension and extracts their build attributes and build cache performance.

Reading dumps requires a Develocity license file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err = zaplog.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&licensePath, "license", "l", "", "Develocity license file")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "dump reader backend (file or exec)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(typeCmd, readCmd, verifyLicenseCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, and applies flag overrides
func loadConfig(cmd *cobra.Command) (*entities.LoaderConfig, error) {
	config := entities.DefaultLoaderConfig()
	if configPath != "" {
		var err error
		if config, err = yaml.NewConfigParser().ParseFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("license") {
		config.License = licensePath
	}
	if flags.Changed("backend") {
		config.Reader.Backend = backend
	}
	if verbose {
		config.LogLevel = "debug"
	}

	if err := yaml.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// openDumpReader wires the configured backend and opens a reading session for the license
func openDumpReader(ctx context.Context) (services.BuildScanDumpReader, error) {
	if cfg.License == "" {
		return nil, fmt.Errorf("a license file is required (--license or license in the config file)")
	}

	log := domainLogger()

	var verifier gateways.LicenseVerifier
	if cfg.LicenseVerification.Enabled() {
		v, err := adapters.NewLicenseVerifier(cfg.LicenseVerification, log)
		if err != nil {
			return nil, err
		}
		verifier = v
	}

	factory := adapters.NewDumpReaderFactory(cfg.Reader, verifier, log)
	return domainservices.NewBuildScanDumpReader(ctx, factory, cfg.License, log)
}

// domainLogger returns the logger as the domain interface, never a typed nil
func domainLogger() interfaces.Logger {
	if logger == nil {
		return &interfaces.NoOpLogger{}
	}
	return logger
}
