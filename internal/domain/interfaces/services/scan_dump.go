// Package services defines interfaces for domain service contracts.
package services

import (
	"context"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
)

// BuildScanDumpReader is the handle returned by the loader.
// Every method returns either a result or a single *entities.DumpError.
type BuildScanDumpReader interface {
	ReadBuildToolType(ctx context.Context, dumpPath string) (entities.BuildToolType, error)
	ReadGradleBuildScanDump(ctx context.Context, dumpPath string) (*entities.GradleBuildScanData, error)
	ReadMavenBuildScanDump(ctx context.Context, dumpPath string) (*entities.MavenBuildScanData, error)
}
