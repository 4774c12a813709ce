// =============================================================================
// XML Status Summary - Converter Module
// =============================================================================
//
// This module drives one batch run, from input discovery to the output table.
//
// CONVERSION PIPELINE:
//   1. Check the input directory (fatal if missing)
//   2. Discover candidate .xml files, sorted by name
//   3. For each file, one at a time:
//      a. Read the file
//      b. Extract the item code and latest status
//      c. Keep the record, or log the failure and move on
//   4. Write the output table once (fatal on failure)
//   5. Write the processing summary log, if configured
//
// ERROR ISOLATION:
//   Every per-file failure is captured in that file's Result. It is logged
//   and excluded from the table; it never stops the batch. Only steps 1, 2
//   and 4 can fail a run.
//
// =============================================================================

package converter

import (
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/ginjaninja78/XML-status-summary/internal/config"
	"github.com/ginjaninja78/XML-status-summary/internal/csvwriter"
	"github.com/ginjaninja78/XML-status-summary/internal/extractor"
	"github.com/ginjaninja78/XML-status-summary/internal/logging"
	"github.com/ginjaninja78/XML-status-summary/internal/types"
	"github.com/ginjaninja78/XML-status-summary/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// Record is the extracted summary. Zero if processing failed.
	Record types.Record

	// Err contains the error if processing failed.
	Err error
}

// Success reports whether the file produced a record.
func (r Result) Success() bool {
	return r.Err == nil
}

// Summary describes a completed (or aborted) run.
type Summary struct {
	// RunID identifies the run in logs and in the summary log file name.
	RunID string

	StartTime time.Time
	EndTime   time.Time

	// Results holds one entry per candidate file, in processing order.
	Results []Result

	// Records holds the successful records, in processing order.
	Records []types.Record

	// OutputFile is the path of the table that was written.
	OutputFile string

	// SummaryFile is the path of the summary log, if one was written.
	SummaryFile string
}

// Failed returns the results of the files that did not produce a record.
func (s *Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.Success() {
			failed = append(failed, r)
		}
	}
	return failed
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter runs the extraction pipeline over a directory of XML files.
type Converter struct {
	cfg    *config.Config
	logger *logging.Logger
}

// New creates a new Converter instance.
//
// PARAMETERS:
//   - cfg: The run configuration.
//   - logger: The console and structured logger.
func New(cfg *config.Config, logger *logging.Logger) *Converter {
	return &Converter{
		cfg:    cfg,
		logger: logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline for the configured input directory.
//
// RETURNS:
//   - The run summary. It is non-nil whenever extraction took place, even if
//     the final write failed.
//   - An error marked with types.ErrSetup or types.ErrWrite on a fatal failure.
func (c *Converter) Run() (*Summary, error) {
	summary := &Summary{
		RunID:      uuid.NewString(),
		StartTime:  time.Now(),
		OutputFile: c.cfg.OutputFile,
	}
	logger := c.logger.WithRunID(summary.RunID)

	// =========================================================================
	// STEP 1: CHECK INPUT
	// =========================================================================

	if err := c.cfg.RequireInputDir(); err != nil {
		return nil, errors.Mark(err, types.ErrSetup)
	}
	if err := utils.CheckInputDir(c.cfg.InputDir); err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	files, err := utils.DiscoverInputFiles(c.cfg.InputDir, c.cfg.ExcludePatterns)
	if err != nil {
		return nil, err
	}
	logger.Zerolog().Debug().Int("candidates", len(files)).Str("input_dir", c.cfg.InputDir).Msg("discovered input files")

	// =========================================================================
	// STEP 3: PROCESS FILES SEQUENTIALLY
	// =========================================================================

	for _, path := range files {
		logger.Processing(path)

		result := c.ProcessFile(path)
		summary.Results = append(summary.Results, result)

		if !result.Success() {
			logger.FileFailed(path, result.Err)
			continue
		}

		logger.Extracted(result.Record)
		summary.Records = append(summary.Records, result.Record)
	}

	// =========================================================================
	// STEP 4: WRITE OUTPUT TABLE
	// =========================================================================

	if err := csvwriter.Write(c.cfg.OutputFile, summary.Records); err != nil {
		summary.EndTime = time.Now()
		return summary, err
	}
	summary.EndTime = time.Now()

	// =========================================================================
	// STEP 5: SUMMARY LOG
	// =========================================================================

	if c.cfg.SummaryDir != "" {
		path, err := utils.WriteSummaryLog(summary.processingSummary(c.cfg.InputDir), c.cfg.SummaryDir)
		if err != nil {
			// The table is already written; a missing summary log does not fail the run.
			logger.Warn("failed to write processing summary", err)
		} else {
			summary.SummaryFile = path
		}
	}

	return summary, nil
}

// ExtractFiles processes the given files without writing any output.
// Failures are logged and returned in the results.
func (c *Converter) ExtractFiles(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		c.logger.Processing(path)
		result := c.ProcessFile(path)
		if result.Success() {
			c.logger.Extracted(result.Record)
		} else {
			c.logger.FileFailed(path, result.Err)
		}
		results = append(results, result)
	}
	return results
}

// ProcessFile reads and extracts a single file. It never panics on bad input
// and never returns a failure other than through Result.Err.
func (c *Converter) ProcessFile(path string) Result {
	result := Result{FilePath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = errors.Wrapf(errors.Mark(err, types.ErrRead), "failed to read file %s", path)
		return result
	}
	if !utf8.Valid(data) {
		result.Err = errors.Mark(errors.Newf("failed to read file %s: content is not valid UTF-8", path), types.ErrRead)
		return result
	}

	record, err := extractor.Extract(string(data), filepath.Base(path))
	if err != nil {
		result.Err = err
		return result
	}

	result.Record = record
	return result
}

// processingSummary converts the run summary to the summary log format.
func (s *Summary) processingSummary(inputDir string) utils.ProcessingSummary {
	ps := utils.ProcessingSummary{
		RunID:           s.RunID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		InputDir:        inputDir,
		OutputFile:      s.OutputFile,
		TotalFiles:      len(s.Results),
		SuccessfulFiles: len(s.Records),
	}
	for _, r := range s.Failed() {
		ps.FailedFiles = append(ps.FailedFiles, utils.FailedFileInfo{
			InputFile:    r.FilePath,
			ErrorType:    types.Kind(r.Err),
			ErrorMessage: r.Err.Error(),
		})
	}
	return ps
}
