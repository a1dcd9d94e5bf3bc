package obras

import "errors"

// Conditions the importer reports without writing any output.
var (
	ErrWorkbookNotFound = errors.New("workbook not found")
	ErrNoRecords        = errors.New("no records found")
	ErrSheetNotFound    = errors.New("sheet not found")
)

// IsGraceful reports whether err is a condition that ends an import without
// output but is not a failure of the tool itself.
func IsGraceful(err error) bool {
	return errors.Is(err, ErrWorkbookNotFound) || errors.Is(err, ErrNoRecords)
}
