package gateways

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// dumpEnvelope is the JSON document produced by dump readers.
// attributes and buildCachePerformance are either JSON objects or JSON text strings.
type dumpEnvelope struct {
	BuildToolType         string          `json:"buildToolType"`
	Attributes            json.RawMessage `json:"attributes"`
	BuildCachePerformance json.RawMessage `json:"buildCachePerformance"`
}

// decodeDumpEnvelope decodes a possibly gzip-compressed envelope
func decodeDumpEnvelope(data []byte) (*dumpEnvelope, error) {
	if bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open compressed dump: %w", err)
		}
		//nolint:errcheck // Defer close on in-memory reader
		defer zr.Close()

		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("failed to decompress dump: %w", err)
		}
	}

	var envelope dumpEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("not a Build Scan dump: %w", err)
	}
	return &envelope, nil
}

// rawDump converts the envelope into the JSON text fields consumed by the loader
func (e *dumpEnvelope) rawDump() (*entities.RawBuildScanDump, error) {
	attributes, err := embeddedJSONText(e.Attributes)
	if err != nil {
		return nil, fmt.Errorf("invalid attributes field: %w", err)
	}
	performance, err := embeddedJSONText(e.BuildCachePerformance)
	if err != nil {
		return nil, fmt.Errorf("invalid buildCachePerformance field: %w", err)
	}
	return &entities.RawBuildScanDump{
		Attributes:            attributes,
		BuildCachePerformance: performance,
	}, nil
}

// checkToolType rejects envelopes recorded for another build tool
func (e *dumpEnvelope) checkToolType(want entities.BuildToolType) error {
	if strings.TrimSpace(e.BuildToolType) != want.String() {
		return fmt.Errorf("%w: dump was produced by %q, not %s",
			entities.ErrBuildToolTypeMismatch, e.BuildToolType, want)
	}
	return nil
}

func embeddedJSONText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return string(trimmed), nil
	}
	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return "", err
	}
	return text, nil
}

// location turns a plain file path into an absolute path; URLs are returned unchanged
func location(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
