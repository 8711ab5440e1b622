package main

import (
	"fmt"

	orchestrators "github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain-orchestrators"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	readSummary     bool
	readConcurrency int
)

// readCmd loads Build Scan dumps with the extractor matching their build tool
var readCmd = &cobra.Command{
	Use:   "read <dump>...",
	Short: "Extract build attributes and build cache performance from Build Scan dumps",
	Long: `Classifies each Build Scan dump, extracts it with the matching Gradle or Maven
extractor and prints the results as a JSON array in argument order.

Loading stops at the first dump that cannot be read.

Example:
  scandump read --license develocity.license first-build.scan second-build.scan
  scandump read --summary --concurrency 4 builds/*.scan`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readSummary, "summary", false, "print a text summary instead of JSON")
	readCmd.Flags().IntVar(&readConcurrency, "concurrency", 0, "number of dumps read at once (defaults to the configured concurrency)")
}

func runRead(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	reader, err := openDumpReader(ctx)
	if err != nil {
		return err
	}

	concurrency := cfg.Concurrency
	if readConcurrency > 0 {
		concurrency = readConcurrency
	}
	orch := orchestrators.NewLoadOrchestrator(reader, domainLogger(), orchestrators.LoadOrchestratorConfig{
		Concurrency: concurrency,
	})

	results, err := orch.LoadBuildScans(ctx, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if readSummary {
		for i, result := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, orch.GetLoadSummary(result))
		}
		return nil
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
