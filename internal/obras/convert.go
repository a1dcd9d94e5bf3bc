package obras

// convert.go turns raw workbook cells into nullable record values.
//
// Cells arrive as raw strings (numbers unformatted, dates as Excel serials)
// together with whether the workbook stores them as numbers. A cell is falsy,
// and therefore NULL, when it is empty after trimming or when it is a numeric
// cell equal to zero; a text cell such as "0000" is kept. Text is otherwise
// kept as-is; dates are normalized to YYYY-MM-DD where they can be
// recognized; the total value accepts plain numbers and Brazilian currency
// text.

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidAmount is returned when a total value cannot be read as a number.
var ErrInvalidAmount = errors.New("invalid number")

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// time.Parse reads "06" as 1969-2068; years more than this many years in the
// future are moved back a century.
var TwoDigitYearPivot = 20

// Day-first layouts, as written in Brazilian sheets.
var (
	twoDigitYearLayouts = []string{
		"2/1/06", "02/01/06", "2-1-06", "2.1.06",
	}
	fourDigitYearLayouts = []string{
		"2/1/2006", "02/01/2006", "2-1-2006", "02-01-2006", "2.1.2006", "02.01.2006",
	}
)

// CleanCell trims whitespace and strips an Excel formula prefix (="...").
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = strings.TrimSpace(s[2 : len(s)-1])
	}
	return s
}

// Falsy reports whether c counts as absent: empty after cleaning, or a
// numeric cell equal to zero.
func (c Cell) Falsy() bool {
	s := CleanCell(c.Value)
	if s == "" {
		return true
	}
	if c.Numeric {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
			return true
		}
	}
	return false
}

// ToText converts a cell to a nullable text value.
func ToText(c Cell) pgtype.Text {
	if c.Falsy() {
		return pgtype.Text{}
	}
	return pgtype.Text{String: CleanCell(c.Value), Valid: true}
}

// ToDate converts a cell to a nullable date string.
// Numeric cells are Excel serials and become YYYY-MM-DD, as do day-first
// dates written as text; a value starting with an ISO date keeps that prefix;
// anything else is kept verbatim.
func ToDate(c Cell) pgtype.Text {
	if c.Falsy() {
		return pgtype.Text{}
	}
	s := CleanCell(c.Value)

	if c.Numeric {
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return pgtype.Text{String: t.Format(time.DateOnly), Valid: true}
			}
		}
		return pgtype.Text{String: s, Valid: true}
	}

	if m := isoDatePrefix.FindString(s); m != "" {
		return pgtype.Text{String: m, Valid: true}
	}

	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Text{String: t.Format(time.DateOnly), Valid: true}
		}
	}

	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return pgtype.Text{String: t.Format(time.DateOnly), Valid: true}
		}
	}

	return pgtype.Text{String: s, Valid: true}
}

// ToAmount converts a cell to a nullable float.
//
// Accepted forms: plain numbers ("1461860.68"), Brazilian currency
// ("R$ 1.461.860,68"), and accounting negatives ("(R$ 10,00)"). Falsy cells,
// "R$ -" and "-" are NULL. Anything else is NULL with ErrInvalidAmount.
func ToAmount(c Cell) (pgtype.Float8, error) {
	if c.Falsy() {
		return pgtype.Float8{}, nil
	}
	s := CleanCell(c.Value)

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return amount(f, s)
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" || s == "-" {
		return pgtype.Float8{}, nil
	}

	// Brazilian grouping: '.' for thousands, ',' for decimals.
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	s = strings.ReplaceAll(s, " ", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return pgtype.Float8{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if negative {
		f = -f
	}
	return amount(f, s)
}

func amount(f float64, raw string) (pgtype.Float8, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return pgtype.Float8{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return pgtype.Float8{Float64: f, Valid: true}, nil
}
