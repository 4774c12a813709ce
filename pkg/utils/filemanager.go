// =============================================================================
// XML Status Summary - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the batch run:
//   - Input directory checks
//   - Candidate file discovery
//   - Processing summary logs
//
// DISCOVERY RULES:
//   - Only entries directly inside the input directory are considered.
//   - A candidate is a regular file (symlinks are followed) whose extension
//     is exactly ".xml". A file named just ".xml" has no extension.
//   - Names matching any exclude pattern are skipped.
//   - Candidates are returned in lexicographic order of file name.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/ginjaninja78/XML-status-summary/internal/types"
)

// InputExtension is the extension a file must have to be processed.
const InputExtension = ".xml"

// =============================================================================
// DIRECTORY CHECKS
// =============================================================================

// CheckInputDir verifies that dir exists and is a directory.
//
// RETURNS:
//   - An error marked with types.ErrSetup otherwise.
func CheckInputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		setupErr := errors.Newf("the input directory doesn't exist or is not a directory: %s", dir)
		if err != nil && !os.IsNotExist(err) {
			setupErr = errors.Wrapf(err, "the input directory is not accessible: %s", dir)
		}
		return errors.WithHint(errors.Mark(setupErr, types.ErrSetup),
			"check the --input-dir flag or the input_dir setting")
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles lists the candidate XML files in inputDir.
//
// PARAMETERS:
//   - inputDir: The directory to scan (not recursively).
//   - excludePatterns: Glob patterns matched against file names; matches are skipped.
//
// RETURNS:
//   - The full paths of the candidates, sorted by file name.
//   - An error marked with types.ErrSetup if the directory cannot be listed.
func DiscoverInputFiles(inputDir string, excludePatterns []string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, errors.Wrapf(errors.Mark(err, types.ErrSetup), "failed to scan input directory %s", inputDir)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if !HasInputExtension(name) {
			continue
		}
		if excluded(name, excludePatterns) {
			continue
		}

		path := filepath.Join(inputDir, name)

		// os.Stat follows symlinks, so a link to a regular file counts.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		files = append(files, path)
	}

	return files, nil
}

// HasInputExtension reports whether name ends in ".xml" with a non-empty stem.
func HasInputExtension(name string) bool {
	return name != InputExtension && filepath.Ext(name) == InputExtension
}

func excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			// Invalid pattern, skip it.
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// ProcessingSummary contains summary information about a processing run.
type ProcessingSummary struct {
	RunID           string
	StartTime       time.Time
	EndTime         time.Time
	InputDir        string
	OutputFile      string
	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     []FailedFileInfo
}

// FailedFileInfo contains information about a failed file.
type FailedFileInfo struct {
	InputFile    string
	ErrorType    string
	ErrorMessage string
}

// WriteSummaryLog writes a processing summary to a text file in outputDir.
//
// PARAMETERS:
//   - summary: The processing summary.
//   - outputDir: The directory to write the summary file. Created if missing.
//
// RETURNS:
//   - The path to the summary file.
//   - An error if writing fails.
func WriteSummaryLog(summary ProcessingSummary, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create summary directory %s", outputDir)
	}

	summaryPath := filepath.Join(outputDir, SummaryFileName(summary))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to create summary file")
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	fmt.Fprintf(writer, "XML Status Summary - Processing Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Run ID:         %s\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n"+
		"  Input Dir:      %s\n"+
		"  Output File:    %s\n\n"+
		"Statistics:\n"+
		"  Total Files:    %d\n"+
		"  Successful:     %d\n"+
		"  Failed:         %d\n\n",
		summary.RunID,
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.InputDir,
		summary.OutputFile,
		summary.TotalFiles,
		summary.SuccessfulFiles,
		len(summary.FailedFiles))

	if len(summary.FailedFiles) > 0 {
		writer.WriteString("Failed Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, ff := range summary.FailedFiles {
			fmt.Fprintf(writer, "  File:  %s\n", ff.InputFile)
			fmt.Fprintf(writer, "  Kind:  %s\n", ff.ErrorType)
			fmt.Fprintf(writer, "  Error: %s\n\n", ff.ErrorMessage)
		}
	}

	writer.WriteString("================================================================================\n" +
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", errors.Wrap(err, "failed to flush summary file")
	}

	return summaryPath, nil
}

// SummaryFileName builds the summary file name from the run start time and ID.
// Example: processing_summary_20240115_093000_1b4e28ba.txt
func SummaryFileName(summary ProcessingSummary) string {
	id := summary.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("processing_summary_%s_%s.txt", summary.StartTime.Format("20060102_150405"), id)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
