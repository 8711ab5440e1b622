// Package services implements domain business logic and use cases.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces/gateways"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces/services"
	"github.com/goccy/go-json"
)

// buildScanDumpReader adapts a dump reading session to typed Build Scan data
type buildScanDumpReader struct {
	reader gateways.DumpReader
	logger interfaces.Logger
}

// NewBuildScanDumpReader opens a dump reading session for the license and returns the handle
// used by all other operations. It fails with an initialization DumpError when the
// capability cannot be located or constructed.
func NewBuildScanDumpReader(
	ctx context.Context,
	factory gateways.DumpReaderFactory,
	licensePath string,
	logger interfaces.Logger,
) (services.BuildScanDumpReader, error) {
	logger = interfaces.OrNoOp(logger)

	if factory == nil {
		return nil, entities.NewDumpError(entities.KindInitialization, entities.OpOpen, licensePath,
			errors.New("unable to find the Build Scan dump reader"))
	}
	if licensePath == "" {
		return nil, entities.NewDumpError(entities.KindInitialization, entities.OpOpen, "",
			errors.New("license file is required"))
	}

	reader, err := factory.NewDumpReader(ctx, licensePath)
	if err != nil {
		return nil, entities.AsDumpError(entities.KindInitialization, entities.OpOpen, licensePath, err)
	}
	if reader == nil {
		return nil, entities.NewDumpError(entities.KindInitialization, entities.OpOpen, licensePath,
			errors.New("dump reader factory returned no reader"))
	}

	logger.Debug("Opened Build Scan dump reader", interfaces.F("license", licensePath))
	return &buildScanDumpReader{reader: reader, logger: logger}, nil
}

// ReadBuildToolType reports which build tool produced the dump
func (r *buildScanDumpReader) ReadBuildToolType(ctx context.Context, dumpPath string) (entities.BuildToolType, error) {
	tag, err := r.reader.ReadBuildToolType(ctx, dumpPath)
	if err != nil {
		return "", entities.AsDumpError(entities.KindRead, entities.OpReadBuildToolType, dumpPath, err)
	}

	toolType, err := entities.ParseBuildToolType(tag)
	if err != nil {
		return "", entities.NewDumpError(entities.KindRead, entities.OpReadBuildToolType, dumpPath, err)
	}

	r.logger.Debug("Read build tool type", interfaces.F("dump", dumpPath), interfaces.F("tool", toolType))
	return toolType, nil
}

// ReadGradleBuildScanDump extracts Gradle attributes and build cache performance
func (r *buildScanDumpReader) ReadGradleBuildScanDump(ctx context.Context, dumpPath string) (*entities.GradleBuildScanData, error) {
	raw, err := r.reader.ReadGradleBuildScanDump(ctx, dumpPath)
	if err != nil {
		return nil, entities.AsDumpError(entities.KindRead, entities.OpReadGradleScanDump, dumpPath, err)
	}

	data, err := decodeBuildScanData[entities.GradleAttributes, entities.GradleBuildCachePerformance](entities.OpReadGradleScanDump, dumpPath, raw)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Read Gradle Build Scan dump", interfaces.F("dump", dumpPath))
	return data, nil
}

// ReadMavenBuildScanDump extracts Maven attributes and build cache performance
func (r *buildScanDumpReader) ReadMavenBuildScanDump(ctx context.Context, dumpPath string) (*entities.MavenBuildScanData, error) {
	raw, err := r.reader.ReadMavenBuildScanDump(ctx, dumpPath)
	if err != nil {
		return nil, entities.AsDumpError(entities.KindRead, entities.OpReadMavenScanDump, dumpPath, err)
	}

	data, err := decodeBuildScanData[entities.MavenAttributes, entities.MavenBuildCachePerformance](entities.OpReadMavenScanDump, dumpPath, raw)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Read Maven Build Scan dump", interfaces.F("dump", dumpPath))
	return data, nil
}

// decodeBuildScanData deserializes both JSON text fields independently.
// The attributes field is always decoded first.
func decodeBuildScanData[A, P any](op, dumpPath string, raw *entities.RawBuildScanDump) (*entities.BuildScanData[A, P], error) {
	if raw == nil {
		return nil, entities.NewDumpError(entities.KindRead, op, dumpPath, errors.New("dump reader returned no data"))
	}

	var attributes A
	if err := decodeField("attributes", raw.Attributes, &attributes); err != nil {
		return nil, entities.NewDumpError(entities.KindParse, op, dumpPath, err)
	}

	var performance P
	if err := decodeField("buildCachePerformance", raw.BuildCachePerformance, &performance); err != nil {
		return nil, entities.NewDumpError(entities.KindParse, op, dumpPath, err)
	}

	return &entities.BuildScanData[A, P]{
		Attributes:            attributes,
		BuildCachePerformance: performance,
	}, nil
}

func decodeField(name, text string, target interface{}) error {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("missing %s field", name)
	}
	if err := json.Unmarshal(trimmed, target); err != nil {
		return fmt.Errorf("malformed %s field: %w", name, err)
	}
	return nil
}
