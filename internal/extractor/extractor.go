// =============================================================================
// XML Status Summary - Extractor Module
// =============================================================================
//
// This module turns one XML document into one summary Record. It is the core
// of the tool: everything else lists files and writes rows.
//
// EXTRACTION RULES:
//   1. Parse the document. Malformed XML is a ParseError.
//   2. Collect the direct text of every <itemCode> element in document order
//      and select one code (see SelectItemCode). No code is not an error.
//   3. Collect every <StatusHistoryRow> element anywhere in the tree.
//      None is a MissingStatusHistory error.
//   4. The last row in document order is the current one. The first <status>
//      element inside it supplies the status. None (or no text) is a
//      MissingStatus error.
//
// Tag names are matched by local name only; namespace prefixes are ignored.
//
// =============================================================================

package extractor

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ginjaninja78/XML-status-summary/internal/types"
	"github.com/ginjaninja78/XML-status-summary/internal/xmldoc"
)

// Tag names the extractor looks for.
const (
	ItemCodeTag         = "itemCode"
	StatusHistoryRowTag = "StatusHistoryRow"
	StatusTag           = "status"
)

// Extract applies the extraction rules to one document.
//
// PARAMETERS:
//   - documentText: The full XML text of the document.
//   - sourceName: The base name of the file the text came from. It is copied
//     into the Record and used in error messages; it is never read from the XML.
//
// RETURNS:
//   - The extracted Record.
//   - An error marked with types.ErrParse, types.ErrMissingStatusHistory or
//     types.ErrMissingStatus.
func Extract(documentText, sourceName string) (types.Record, error) {
	root, err := xmldoc.Parse(documentText)
	if err != nil {
		return types.Record{}, errors.Wrapf(errors.Mark(err, types.ErrParse),
			"failed to parse XML in file %s", sourceName)
	}

	itemCode := SelectItemCode(CollectItemCodes(root))

	rows := root.FindAll(StatusHistoryRowTag)
	if len(rows) == 0 {
		return types.Record{}, errors.Mark(
			errors.Newf("no %s found in file %s", StatusHistoryRowTag, sourceName),
			types.ErrMissingStatusHistory)
	}

	current := rows[len(rows)-1]

	status, ok := "", false
	if node := current.Find(StatusTag); node != nil {
		status, ok = node.DirectText()
	}
	if !ok {
		return types.Record{}, errors.Mark(
			errors.Newf("no %s tag found in the last %s in file %s", StatusTag, StatusHistoryRowTag, sourceName),
			types.ErrMissingStatus)
	}

	return types.Record{
		ItemCode:   itemCode,
		SourceName: sourceName,
		Status:     status,
	}, nil
}

// CollectItemCodes returns the direct text of every itemCode element under root,
// in document order. Elements without direct text are skipped.
func CollectItemCodes(root *xmldoc.Node) []string {
	var codes []string
	for _, node := range root.FindAll(ItemCodeTag) {
		if text, ok := node.DirectText(); ok {
			codes = append(codes, text)
		}
	}
	return codes
}

// SelectItemCode picks the item code from the candidates, in order of preference:
//   - the first non-empty candidate that is not digits-only
//   - the first non-empty candidate
//   - the empty string
//
// Source documents often carry a numeric internal reference next to the
// meaningful alphanumeric code; the first rule prefers the latter.
func SelectItemCode(candidates []string) string {
	for _, code := range candidates {
		if code != "" && !IsDigitsOnly(code) {
			return code
		}
	}
	for _, code := range candidates {
		if code != "" {
			return code
		}
	}
	return ""
}

// IsDigitsOnly reports whether s, after trimming surrounding whitespace, is a
// non-empty run of ASCII decimal digits.
func IsDigitsOnly(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
