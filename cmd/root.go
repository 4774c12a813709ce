// =============================================================================
// XML Status Summary - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (xmlstatus)
//   ├── processCmd (xmlstatus process)
//   ├── extractCmd (xmlstatus extract)
//   └── versionCmd (xmlstatus version)
//
// CONFIGURATION:
//   The root command owns the flags shared by every subcommand and the
//   loading of the optional config file. Flags set on the command line
//   override values read from the file.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/XML-status-summary/internal/config"
	"github.com/ginjaninja78/XML-status-summary/internal/logging"
	"github.com/ginjaninja78/XML-status-summary/pkg/utils"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// defaultConfigFile is read when present and --config is not given.
const defaultConfigFile = "config.yaml"

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose prints per-file progress to stdout.
var verbose bool

// logLevel sets the level of the structured log on stderr.
var logLevel string

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xmlstatus",
	Short: "XML Status Summary - Collect the latest status of every XML item file",

	Long: `XML Status Summary scans a directory of XML item files, extracts an item
code and the most recent status from each, and writes one CSV table with
the header itemCode,filename,status.

Files that cannot be read or parsed, or that have no status history, are
logged and left out of the table. They never stop the run.

Example Usage:
  xmlstatus process -i ./items                  # write status_output.csv
  xmlstatus process -i ./items -o out.csv -v    # custom output, verbose progress
  xmlstatus extract ./items/a.xml ./items/b.xml # print rows for single files`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes a fatal error and any operator hints attached to it.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		defaultConfigFile,
		"Path to the configuration file (used only if present unless set explicitly)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Print each processed file and its extracted values",
	)

	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"info",
		"Structured log level: debug, info, warn or error",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig builds the run configuration for cmd.
//
// LOADING ORDER:
//  1. Defaults
//  2. The config file: required when --config is given explicitly, otherwise
//     read only if the default file exists
//  3. Flags changed on the command line
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	explicit := cmd.Flags().Changed("config")
	if explicit || utils.FileExists(cfgFile) {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, errors.WithHint(err, "check the file passed with --config")
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = strings.ToLower(logLevel)
	}

	return cfg, nil
}

// newLogger creates the run logger writing to the command's output streams.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.WithHint(err, "valid levels are debug, info, warn and error")
	}
	return logging.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), level, cfg.Verbose), nil
}
