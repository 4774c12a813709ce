package types

import (
	"github.com/cockroachdb/errors"
)

// =============================================================================
// ERROR KINDS
// =============================================================================
// Failures are attached to one of these sentinels with errors.Mark, so callers
// can test them with errors.Is without parsing messages.

var (
	// ErrSetup marks a missing or unusable input directory. Fatal.
	ErrSetup = errors.New("setup error")

	// ErrParse marks a candidate file that is not well-formed XML.
	ErrParse = errors.New("xml parse error")

	// ErrMissingStatusHistory marks a document without any StatusHistoryRow.
	ErrMissingStatusHistory = errors.New("missing status history")

	// ErrMissingStatus marks a last StatusHistoryRow without readable status text.
	ErrMissingStatus = errors.New("missing status")

	// ErrRead marks a candidate file that could not be read.
	ErrRead = errors.New("read error")

	// ErrWrite marks a failure writing the output table. Fatal.
	ErrWrite = errors.New("write error")
)

// kinds is ordered so the most specific kind wins when an error carries several marks.
var kinds = []struct {
	sentinel error
	name     string
}{
	{ErrParse, "ParseError"},
	{ErrMissingStatusHistory, "MissingStatusHistory"},
	{ErrMissingStatus, "MissingStatus"},
	{ErrRead, "ReadError"},
	{ErrWrite, "WriteError"},
	{ErrSetup, "SetupError"},
}

// Kind returns the name of the failure kind carried by err, or "" if err is nil
// or carries no known kind.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.name
		}
	}
	return ""
}
