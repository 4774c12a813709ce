// =============================================================================
// XML Status Summary - CSV Writer Module
// =============================================================================
//
// This module writes the extracted records as a single delimited table.
//
// OUTPUT FORMAT:
//   itemCode,filename,status
//   AB-9,item_001.xml,Approved
//   ,item_002.xml,"On hold, pending"
//
//   - Exactly one header row, columns in fixed order.
//   - One row per record, in the order the records were produced.
//   - RFC 4180 quoting: fields containing a comma, a quote or a line break
//     are quoted and embedded quotes are doubled.
//   - Rows end with "\n".
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/ginjaninja78/XML-status-summary/internal/types"
)

// Header is the fixed header row of the output table.
var Header = []string{"itemCode", "filename", "status"}

// Write creates (or truncates) the file at outputPath and writes the table to it.
// The file is flushed and closed before Write returns.
//
// PARAMETERS:
//   - outputPath: The path of the output file.
//   - records: The records to write, in output order.
//
// RETURNS:
//   - An error marked with types.ErrWrite if the file cannot be created,
//     written, flushed or closed.
func Write(outputPath string, records []types.Record) (err error) {
	file, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, types.ErrWrite), "failed to create output file %s", outputPath)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(errors.Mark(cerr, types.ErrWrite), "failed to close output file %s", outputPath)
		}
	}()

	if err := WriteTo(file, records); err != nil {
		return errors.Wrapf(err, "failed to write output file %s", outputPath)
	}

	return nil
}

// WriteTo writes the header and one row per record to w and flushes.
// Errors are marked with types.ErrWrite.
func WriteTo(w io.Writer, records []types.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return errors.Wrap(errors.Mark(err, types.ErrWrite), "failed to write header")
	}

	for i, record := range records {
		if err := writer.Write(record.Fields()); err != nil {
			return errors.Wrapf(errors.Mark(err, types.ErrWrite), "failed to write row %d (%s)", i+1, record.SourceName)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(errors.Mark(err, types.ErrWrite), "failed to flush rows")
	}

	return nil
}
