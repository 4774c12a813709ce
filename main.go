// =============================================================================
// XML Status Summary - Main Entry Point
// =============================================================================
//
// This is the main entry point for the XML Status Summary CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   xmlstatus process -i DIR  - Summarize every XML file in DIR into a CSV table
//   xmlstatus extract FILE... - Print the rows for individual files
//   xmlstatus version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core logic (XML tree, extraction, CSV output, config, logging)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/XML-status-summary/cmd"
)

func main() {
	cmd.Execute()
}
