// Package entities defines core domain models and data structures.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// BuildToolType identifies the build tool that produced a Build Scan dump
type BuildToolType string

// Known build tools
const (
	BuildToolGradle BuildToolType = "GRADLE"
	BuildToolMaven  BuildToolType = "MAVEN"
)

// ErrUnknownBuildToolType is wrapped when a tool type tag has no enumerated value
var ErrUnknownBuildToolType = errors.New("unknown build tool type")

// ErrBuildToolTypeMismatch is wrapped when an extractor is used on a dump of another tool
var ErrBuildToolTypeMismatch = errors.New("build tool type mismatch")

// ParseBuildToolType maps a tool type tag onto its enumerated value.
// Matching is exact; only surrounding whitespace is ignored.
func ParseBuildToolType(value string) (BuildToolType, error) {
	switch t := BuildToolType(strings.TrimSpace(value)); t {
	case BuildToolGradle, BuildToolMaven:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBuildToolType, value)
	}
}

// String returns the tag form of the build tool type
func (t BuildToolType) String() string {
	return string(t)
}

// BuildScanData holds the data extracted from a single Build Scan dump.
// ID is never populated by the dump readers and stays nil.
type BuildScanData[A, P any] struct {
	ID                    *string `json:"id,omitempty"`
	Attributes            A       `json:"attributes"`
	BuildCachePerformance P       `json:"buildCachePerformance"`
}

// GradleBuildScanData is the Build Scan data of a Gradle build
type GradleBuildScanData = BuildScanData[GradleAttributes, GradleBuildCachePerformance]

// MavenBuildScanData is the Build Scan data of a Maven build
type MavenBuildScanData = BuildScanData[MavenAttributes, MavenBuildCachePerformance]

// RawBuildScanDump is the intermediate result of a dump reader: both fields carry JSON text
type RawBuildScanDump struct {
	Attributes            string
	BuildCachePerformance string
}
