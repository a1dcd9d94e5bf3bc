package obras

import "fmt"

// Coercion describes a cell that could not be converted and was set to NULL.
type Coercion struct {
	Field Field
	Value string
	Err   error
}

func (c Coercion) String() string {
	return fmt.Sprintf("%s=%q: %v", c.Field, c.Value, c.Err)
}

// BuildObra maps one data row onto an Obra using idx.
// It reports false when the row has no work description; such rows are
// dropped. Degraded cells are returned so the caller can log them.
func BuildObra(row []Cell, idx HeaderIndex, line int) (Obra, []Coercion, bool) {
	o := Obra{Line: line}

	desc := ToText(idx.Cell(row, FieldDescription))
	if !desc.Valid {
		return o, nil, false
	}
	o.Description = desc.String

	var degraded []Coercion
	for _, f := range Fields {
		cell := idx.Cell(row, f)
		switch {
		case f == FieldDescription:
		case f == FieldTotalValue:
			v, err := ToAmount(cell)
			if err != nil {
				degraded = append(degraded, Coercion{Field: f, Value: cell.Value, Err: err})
			}
			o.TotalValue = v
		case f.isDate():
			*o.text(f) = ToDate(cell)
		default:
			*o.text(f) = ToText(cell)
		}
	}
	return o, degraded, true
}
