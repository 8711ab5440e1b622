package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// typeCmd prints the build tool that produced each dump
var typeCmd = &cobra.Command{
	Use:   "type <dump>...",
	Short: "Print the build tool type of Build Scan dumps",
	Long: `Reads the build tool type recorded in each Build Scan dump and prints it as
"<dump>: GRADLE" or "<dump>: MAVEN".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runType,
}

func runType(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	reader, err := openDumpReader(ctx)
	if err != nil {
		return err
	}

	for _, dumpPath := range args {
		toolType, err := reader.ReadBuildToolType(ctx, dumpPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", dumpPath, toolType)
	}
	return nil
}
