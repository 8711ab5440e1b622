package gateways

import (
	"bytes"
	"context"
	"fmt"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces/gateways"
	"github.com/viant/afs"
)

// dumpReaderFactory resolves the dump reading backend from configuration
type dumpReaderFactory struct {
	config   entities.ReaderConfig
	verifier gateways.LicenseVerifier
	fs       afs.Service
	logger   interfaces.Logger
}

// NewDumpReaderFactory creates a factory for the configured backend.
// verifier may be nil when license signatures are not checked.
func NewDumpReaderFactory(config entities.ReaderConfig, verifier gateways.LicenseVerifier, logger interfaces.Logger) gateways.DumpReaderFactory {
	return NewDumpReaderFactoryWithDeps(config, verifier, afs.New(), logger)
}

// NewDumpReaderFactoryWithDeps creates a factory with a custom storage service
// This is useful for testing or when dumps live on non-local storage
func NewDumpReaderFactoryWithDeps(
	config entities.ReaderConfig,
	verifier gateways.LicenseVerifier,
	fs afs.Service,
	logger interfaces.Logger,
) gateways.DumpReaderFactory {
	return &dumpReaderFactory{
		config:   config,
		verifier: verifier,
		fs:       fs,
		logger:   interfaces.OrNoOp(logger),
	}
}

// NewDumpReader checks the license and opens a session on the configured backend
func (f *dumpReaderFactory) NewDumpReader(ctx context.Context, licensePath string) (gateways.DumpReader, error) {
	if err := f.checkLicense(ctx, licensePath); err != nil {
		return nil, entities.NewDumpError(entities.KindInitialization, entities.OpOpen, licensePath, err)
	}

	switch f.config.Backend {
	case "", entities.BackendFile:
		f.logger.Debug("Using file Build Scan dump reader")
		return NewFileDumpReader(f.fs), nil
	case entities.BackendExec:
		reader, err := NewExecDumpReader(f.config, licensePath, f.logger)
		if err != nil {
			return nil, err
		}
		f.logger.Debug("Using external Build Scan dump reader", interfaces.F("command", reader.command))
		return reader, nil
	default:
		return nil, entities.NewDumpError(entities.KindInitialization, entities.OpOpen, licensePath,
			fmt.Errorf("unknown dump reader backend %q", f.config.Backend))
	}
}

func (f *dumpReaderFactory) checkLicense(ctx context.Context, licensePath string) error {
	data, err := f.fs.DownloadWithURL(ctx, location(licensePath))
	if err != nil {
		return fmt.Errorf("unable to read license file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("license file is empty")
	}

	if f.verifier != nil {
		if err := f.verifier.VerifyLicense(ctx, licensePath); err != nil {
			return err
		}
	}
	return nil
}
