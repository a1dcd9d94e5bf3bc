package obras

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell is one raw cell value. Numeric is set when the workbook stores the
// value as a number (or date/bool); text cells leave it false.
type Cell struct {
	Value   string
	Numeric bool
}

// Sheet is the content of one worksheet: its name and raw cell rows.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// Values returns the cell values of row.
func Values(row []Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.Value
	}
	return out
}

// ReadSheet opens the workbook at path and returns the rows of the named
// sheet. An empty name selects the active sheet; names match case-insensitively.
// Cells are returned unformatted, so dates come back as Excel serials.
func ReadSheet(path, name string) (*Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
		}
		return nil, fmt.Errorf("stat workbook: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet, err := pickSheet(f, name)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	out := make([][]Cell, len(rows))
	for r, row := range rows {
		out[r] = make([]Cell, len(row))
		for c, v := range row {
			out[r][c] = Cell{Value: v}
			if v == "" {
				continue
			}
			numeric, err := isNumericCell(f, sheet, c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
			}
			out[r][c].Numeric = numeric
		}
	}
	return &Sheet{Name: sheet, Rows: out}, nil
}

// isNumericCell reports whether the cell at (col, row) is stored as a value
// rather than as text. Cells without a type attribute are numbers.
func isNumericCell(f *excelize.File, sheet string, col, row int) (bool, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, err
	}
	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return false, err
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return false, nil
	}
	return true, nil
}

func pickSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		active := f.GetSheetName(f.GetActiveSheetIndex())
		if active != "" {
			return active, nil
		}
		list := f.GetSheetList()
		if len(list) == 0 {
			return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
		}
		return list[0], nil
	}

	for _, s := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}
