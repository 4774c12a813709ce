// =============================================================================
// XML Status Summary - Process Command
// =============================================================================
//
// This file defines the 'process' command, which is the main command of the
// tool. It runs the extraction pipeline over one input directory.
//
// COMMAND USAGE:
//   xmlstatus process --input-dir DIR [flags]
//
// FLAGS:
//   --input-dir, -i   : Directory containing the XML files (required)
//   --output-file, -o : Output CSV path (default status_output.csv)
//   --exclude         : Glob of file names to skip (repeatable)
//   --summary-dir     : Directory for the processing summary log
//
// PROCESSING PIPELINE:
//   1. Load configuration (file, then flags)
//   2. Create the logger
//   3. Run the converter
//   4. Print the completion line
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/XML-status-summary/internal/config"
	"github.com/ginjaninja78/XML-status-summary/internal/converter"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputDir is the directory scanned for .xml files.
var inputDir string

// outputFile is the path of the CSV table.
var outputFile string

// excludePatterns are file name globs to skip.
var excludePatterns []string

// summaryDir receives the processing summary log when set.
var summaryDir string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Extract item codes and latest statuses into a CSV table",
	Long: `The process command scans the input directory (not recursively) for files
ending in .xml, in name order. For each file it extracts the item code and
the status of the last StatusHistoryRow.

Each successful file becomes one row of the output table. A file that fails
is logged with its path and the reason, and processing continues with the
next file.

The run fails only if the input directory is missing or the output table
cannot be written.`,

	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		applyProcessFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runProcess(cmd, cfg)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(
		&inputDir,
		"input-dir",
		"i",
		"",
		"Directory containing the XML files",
	)

	processCmd.Flags().StringVarP(
		&outputFile,
		"output-file",
		"o",
		config.DefaultOutputFile,
		"Path of the CSV table to write",
	)

	processCmd.Flags().StringSliceVar(
		&excludePatterns,
		"exclude",
		nil,
		"Glob of file names to skip (repeatable)",
	)

	processCmd.Flags().StringVar(
		&summaryDir,
		"summary-dir",
		"",
		"Directory for the processing summary log",
	)
}

// applyProcessFlags copies explicitly set flags over the loaded configuration.
func applyProcessFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = inputDir
	}
	if cmd.Flags().Changed("output-file") {
		cfg.OutputFile = outputFile
	}
	if cmd.Flags().Changed("exclude") {
		cfg.ExcludePatterns = excludePatterns
	}
	if cmd.Flags().Changed("summary-dir") {
		cfg.SummaryDir = summaryDir
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess runs the pipeline and prints the completion line.
func runProcess(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	summary, err := converter.New(cfg, logger).Run()
	if err != nil {
		return err
	}

	logger.Summary(len(summary.Records), summary.OutputFile)
	return nil
}
