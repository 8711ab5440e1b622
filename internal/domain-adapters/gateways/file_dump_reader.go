package gateways

import (
	"context"
	"fmt"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/viant/afs"
)

// fileDumpReader reads JSON dump envelopes from any location supported by afs.
// It holds no mutable state and is safe for concurrent use.
type fileDumpReader struct {
	fs afs.Service
}

// NewFileDumpReader creates a dump reader over afs storage
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewFileDumpReader(fs afs.Service) *fileDumpReader {
	if fs == nil {
		fs = afs.New()
	}
	return &fileDumpReader{fs: fs}
}

// ReadBuildToolType returns the tool type tag recorded in the dump
func (r *fileDumpReader) ReadBuildToolType(ctx context.Context, dumpPath string) (string, error) {
	envelope, err := r.readEnvelope(ctx, entities.OpReadBuildToolType, dumpPath)
	if err != nil {
		return "", err
	}
	return envelope.BuildToolType, nil
}

// ReadGradleBuildScanDump returns the JSON text fields of a Gradle dump
func (r *fileDumpReader) ReadGradleBuildScanDump(ctx context.Context, dumpPath string) (*entities.RawBuildScanDump, error) {
	return r.readRawDump(ctx, entities.OpReadGradleScanDump, dumpPath, entities.BuildToolGradle)
}

// ReadMavenBuildScanDump returns the JSON text fields of a Maven dump
func (r *fileDumpReader) ReadMavenBuildScanDump(ctx context.Context, dumpPath string) (*entities.RawBuildScanDump, error) {
	return r.readRawDump(ctx, entities.OpReadMavenScanDump, dumpPath, entities.BuildToolMaven)
}

func (r *fileDumpReader) readRawDump(ctx context.Context, op, dumpPath string, toolType entities.BuildToolType) (*entities.RawBuildScanDump, error) {
	envelope, err := r.readEnvelope(ctx, op, dumpPath)
	if err != nil {
		return nil, err
	}
	if err := envelope.checkToolType(toolType); err != nil {
		return nil, entities.NewDumpError(entities.KindRead, op, dumpPath, err)
	}

	raw, err := envelope.rawDump()
	if err != nil {
		return nil, entities.NewDumpError(entities.KindParse, op, dumpPath, err)
	}
	return raw, nil
}

func (r *fileDumpReader) readEnvelope(ctx context.Context, op, dumpPath string) (*dumpEnvelope, error) {
	if dumpPath == "" {
		return nil, entities.NewDumpError(entities.KindRead, op, dumpPath, fmt.Errorf("dump path is required"))
	}

	data, err := r.fs.DownloadWithURL(ctx, location(dumpPath))
	if err != nil {
		return nil, entities.NewDumpError(entities.KindRead, op, dumpPath, fmt.Errorf("failed to read dump: %w", err))
	}

	envelope, err := decodeDumpEnvelope(data)
	if err != nil {
		return nil, entities.NewDumpError(entities.KindRead, op, dumpPath, err)
	}
	return envelope, nil
}
