// Package gateways defines interfaces for external service adapters.
package gateways

import (
	"context"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
)

// DumpReader is an open session of a Build Scan dump reading capability.
// Failures should be *entities.DumpError values; other errors are mapped by the caller.
type DumpReader interface {
	// ReadBuildToolType returns the raw tool type tag recorded in the dump
	ReadBuildToolType(ctx context.Context, dumpPath string) (string, error)

	// ReadGradleBuildScanDump returns the JSON text fields of a Gradle dump
	ReadGradleBuildScanDump(ctx context.Context, dumpPath string) (*entities.RawBuildScanDump, error)

	// ReadMavenBuildScanDump returns the JSON text fields of a Maven dump
	ReadMavenBuildScanDump(ctx context.Context, dumpPath string) (*entities.RawBuildScanDump, error)
}

// DumpReaderFactory opens dump reading sessions for a license credential
type DumpReaderFactory interface {
	NewDumpReader(ctx context.Context, licensePath string) (DumpReader, error)
}

// LicenseVerifier checks the integrity of a license credential before it is used
type LicenseVerifier interface {
	VerifyLicense(ctx context.Context, licensePath string) error
}
