package obras

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// headerSynonyms lists the spellings seen in the workbook for each field.
// Matching is done on normalized forms, so accented and unaccented variants
// of the same word are equivalent; both are listed to keep the table honest.
var headerSynonyms = []struct {
	field Field
	names []string
}{
	{FieldMunicipality, []string{"municipio", "município"}},
	{FieldDescription, []string{"obra"}},
	{FieldAgency, []string{"orgão", "orgao"}},
	{FieldProcessID, []string{"sei"}},
	{FieldMeasurementProcessID, []string{"sei medição", "sei medicao", "sei_medicao"}},
	{FieldStatus, []string{"status"}},
	{FieldPublishedOn, []string{"publicação da os", "publicacao da os", "publicacao_os"}},
	{FieldMeasurementRequestedOn, []string{"solicitação medição", "solicitacao medicao", "solicitacao_medicao"}},
	{FieldMeasuredOn, []string{"data medição", "data medicao", "data_medicao"}},
	{FieldMeasurementStatus, []string{"status medição", "status medicao", "status_medicao"}},
	{FieldTotalValue, []string{"valor total", "valor_total"}},
}

// synonymIndex maps a normalized header to its field.
var synonymIndex = buildSynonymIndex()

func buildSynonymIndex() map[string]Field {
	idx := make(map[string]Field)
	for _, s := range headerSynonyms {
		for _, name := range s.names {
			idx[NormalizeHeader(name)] = s.field
		}
	}
	return idx
}

// NormalizeHeader folds a header cell for synonym matching: accents are
// removed, text is lower-cased, underscores become spaces and runs of
// whitespace collapse to one space.
func NormalizeHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = strings.ReplaceAll(folded, "_", " ")
	return strings.Join(strings.Fields(folded), " ")
}

// LookupHeader returns the field a header cell maps to.
func LookupHeader(header string) (Field, bool) {
	f, ok := synonymIndex[NormalizeHeader(header)]
	return f, ok
}

// HeaderIndex maps each recognized field to its column position.
type HeaderIndex map[Field]int

// MakeHeaderIndex builds a HeaderIndex from a header row.
// Unrecognized headers are ignored. When two headers resolve to the same
// field, the rightmost column wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		if f, ok := LookupHeader(h); ok {
			idx[f] = i
		}
	}
	return idx
}

// Has reports whether f was found in the header row.
func (h HeaderIndex) Has(f Field) bool {
	_, ok := h[f]
	return ok
}

// Cell returns the cell in row for f, or an empty cell if f is absent or the
// row is short.
func (h HeaderIndex) Cell(row []Cell, f Field) Cell {
	pos, ok := h[f]
	if !ok || pos >= len(row) {
		return Cell{}
	}
	return row[pos]
}
