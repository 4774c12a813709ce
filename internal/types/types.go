// =============================================================================
// XML Status Summary - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - extractor
//   - csvwriter
//   - converter
//
// =============================================================================

package types

// =============================================================================
// RECORD TYPES
// =============================================================================

// Record is the summary of a single XML document.
// One Record is produced per successfully processed file and becomes one row
// in the output table. Records are never modified after creation.
type Record struct {
	// ItemCode is the selected identifying code.
	// It may be empty when the document has no usable itemCode element.
	ItemCode string

	// SourceName is the base name of the originating file (not the full path).
	SourceName string

	// Status is the status text of the most recent StatusHistoryRow.
	// It is never empty for a Record returned without error.
	Status string
}

// Fields returns the record as a table row, in column order.
func (r Record) Fields() []string {
	return []string{r.ItemCode, r.SourceName, r.Status}
}
