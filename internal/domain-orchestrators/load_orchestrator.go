// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces/services"
	"golang.org/x/sync/errgroup"
)

// LoadOrchestrator classifies Build Scan dumps and dispatches them to the matching extractor
type LoadOrchestrator struct {
	reader      services.BuildScanDumpReader
	logger      interfaces.Logger
	concurrency int
}

// LoadOrchestratorConfig holds configuration for the orchestrator
type LoadOrchestratorConfig struct {
	// Concurrency bounds the number of dumps loaded at once by LoadBuildScans
	Concurrency int
}

// NewLoadOrchestrator creates a new load orchestrator
func NewLoadOrchestrator(reader services.BuildScanDumpReader, logger interfaces.Logger, config LoadOrchestratorConfig) *LoadOrchestrator {
	concurrency := config.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &LoadOrchestrator{
		reader:      reader,
		logger:      interfaces.OrNoOp(logger),
		concurrency: concurrency,
	}
}

// BuildScanResult is the data loaded from one dump. Exactly one of Gradle and Maven is set.
type BuildScanResult struct {
	Path          string                        `json:"path"`
	BuildToolType entities.BuildToolType        `json:"buildToolType"`
	Gradle        *entities.GradleBuildScanData `json:"gradle,omitempty"`
	Maven         *entities.MavenBuildScanData  `json:"maven,omitempty"`
	LoadDuration  time.Duration                 `json:"-"`
}

// LoadBuildScan reads the build tool type of a dump, then extracts it with the matching extractor
func (o *LoadOrchestrator) LoadBuildScan(ctx context.Context, dumpPath string) (*BuildScanResult, error) {
	startTime := time.Now()

	toolType, err := o.reader.ReadBuildToolType(ctx, dumpPath)
	if err != nil {
		return nil, err
	}

	result := &BuildScanResult{
		Path:          dumpPath,
		BuildToolType: toolType,
	}

	switch toolType {
	case entities.BuildToolGradle:
		result.Gradle, err = o.reader.ReadGradleBuildScanDump(ctx, dumpPath)
	case entities.BuildToolMaven:
		result.Maven, err = o.reader.ReadMavenBuildScanDump(ctx, dumpPath)
	default:
		err = entities.NewDumpError(entities.KindRead, entities.OpReadBuildToolType, dumpPath,
			fmt.Errorf("%w: %q", entities.ErrUnknownBuildToolType, toolType))
	}
	if err != nil {
		return nil, err
	}

	result.LoadDuration = time.Since(startTime)
	o.logger.Info("Loaded Build Scan dump",
		interfaces.F("dump", dumpPath),
		interfaces.F("tool", toolType),
		interfaces.F("duration", result.LoadDuration))
	return result, nil
}

// LoadBuildScans loads every dump, stopping at the first failure.
// Results are returned in the order of dumpPaths.
func (o *LoadOrchestrator) LoadBuildScans(ctx context.Context, dumpPaths []string) ([]*BuildScanResult, error) {
	results := make([]*BuildScanResult, len(dumpPaths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, dumpPath := range dumpPaths {
		i, dumpPath := i, dumpPath
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := o.LoadBuildScan(gctx, dumpPath)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.logger.Error("Failed to load Build Scan dumps", interfaces.F("error", err))
		return nil, err
	}
	return results, nil
}

// GetLoadSummary generates a human-readable summary of a loaded dump
func (o *LoadOrchestrator) GetLoadSummary(result *BuildScanResult) string {
	var b strings.Builder

	switch {
	case result.Gradle != nil:
		attrs, perf := result.Gradle.Attributes, result.Gradle.BuildCachePerformance
		fmt.Fprintf(&b, "%s: Gradle %s build of %s\n", result.Path,
			valueOr(attrs.GradleVersion, "?"), valueOr(attrs.RootProjectName, "<unnamed>"))
		fmt.Fprintf(&b, "   Requested tasks: %s\n", strings.Join(attrs.RequestedTasks, " "))
		fmt.Fprintf(&b, "   Outcome: %s\n", buildOutcome(attrs.HasFailed))
		writeExecutionSummary(&b, "Tasks", gradleOutcomes(perf.TaskExecution), perf.BuildTime, perf.AvoidanceSavingsSummary)
	case result.Maven != nil:
		attrs, perf := result.Maven.Attributes, result.Maven.BuildCachePerformance
		fmt.Fprintf(&b, "%s: Maven %s build of %s\n", result.Path,
			valueOr(attrs.MavenVersion, "?"), valueOr(attrs.TopLevelProjectName, "<unnamed>"))
		fmt.Fprintf(&b, "   Requested goals: %s\n", strings.Join(attrs.RequestedGoals, " "))
		fmt.Fprintf(&b, "   Outcome: %s\n", buildOutcome(attrs.HasFailed))
		writeExecutionSummary(&b, "Goals", mavenOutcomes(perf.GoalExecution), perf.BuildTime, perf.AvoidanceSavingsSummary)
	default:
		fmt.Fprintf(&b, "%s: %s build (no data)\n", result.Path, result.BuildToolType)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeExecutionSummary(b *strings.Builder, label string, outcomes []entities.AvoidanceOutcome, buildTime *int64, savings *entities.AvoidanceSavingsSummary) {
	avoided, executed := 0, 0
	for _, outcome := range outcomes {
		switch {
		case outcome.IsAvoided():
			avoided++
		case outcome.IsExecuted():
			executed++
		}
	}
	fmt.Fprintf(b, "   %s: %d total, %d avoided, %d executed\n", label, len(outcomes), avoided, executed)

	if buildTime != nil {
		fmt.Fprintf(b, "   Build time: %v\n", time.Duration(*buildTime)*time.Millisecond)
	}
	if savings != nil && savings.Total != nil {
		line := fmt.Sprintf("   Avoidance savings: %v", time.Duration(*savings.Total)*time.Millisecond)
		if savings.Ratio != nil {
			line += fmt.Sprintf(" (%.1f%%)", *savings.Ratio*100)
		}
		b.WriteString(line + "\n")
	}
}

func gradleOutcomes(entries []entities.GradleTaskExecutionEntry) []entities.AvoidanceOutcome {
	outcomes := make([]entities.AvoidanceOutcome, 0, len(entries))
	for _, entry := range entries {
		outcomes = append(outcomes, entry.AvoidanceOutcome)
	}
	return outcomes
}

func mavenOutcomes(entries []entities.MavenGoalExecutionEntry) []entities.AvoidanceOutcome {
	outcomes := make([]entities.AvoidanceOutcome, 0, len(entries))
	for _, entry := range entries {
		outcomes = append(outcomes, entry.AvoidanceOutcome)
	}
	return outcomes
}

func buildOutcome(hasFailed *bool) string {
	switch {
	case hasFailed == nil:
		return "unknown"
	case *hasFailed:
		return "FAILED"
	default:
		return "SUCCESS"
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
