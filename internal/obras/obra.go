// Package obras imports public-works ("obras") records from an Excel workbook
// and renders them as SQL INSERT statements for the obras table.
//
// # Flow
//
//  1. The selected sheet is read; its first row holds the headers.
//  2. Each header is normalized and matched against a synonym table, giving a
//     [HeaderIndex] from logical [Field] to column position.
//  3. Every following row becomes an [Obra]. Cells are trimmed; falsy cells
//     (empty, or numeric zero) become NULL. Rows without a work description
//     are dropped.
//  4. Surviving records are rendered in sheet order into one SQL file, and
//     optionally exported as JSON.
//
// No database is contacted; the output is text only.
package obras

import "github.com/jackc/pgx/v5/pgtype"

// Field is a logical column of the obras table.
type Field int

const (
	FieldMunicipality Field = iota
	FieldDescription
	FieldAgency
	FieldProcessID
	FieldMeasurementProcessID
	FieldStatus
	FieldPublishedOn
	FieldMeasurementRequestedOn
	FieldMeasuredOn
	FieldMeasurementStatus
	FieldTotalValue
)

// Fields lists every logical field in table column order.
var Fields = []Field{
	FieldMunicipality,
	FieldDescription,
	FieldAgency,
	FieldProcessID,
	FieldMeasurementProcessID,
	FieldStatus,
	FieldPublishedOn,
	FieldMeasurementRequestedOn,
	FieldMeasuredOn,
	FieldMeasurementStatus,
	FieldTotalValue,
}

var columnNames = map[Field]string{
	FieldMunicipality:           "municipio",
	FieldDescription:            "obra",
	FieldAgency:                 "orgao",
	FieldProcessID:              "sei",
	FieldMeasurementProcessID:   "sei_medicao",
	FieldStatus:                 "status",
	FieldPublishedOn:            "publicacao_os",
	FieldMeasurementRequestedOn: "solicitacao_medicao",
	FieldMeasuredOn:             "data_medicao",
	FieldMeasurementStatus:      "status_medicao",
	FieldTotalValue:             "valor_total",
}

// Column returns the database column name of f.
func (f Field) Column() string {
	return columnNames[f]
}

func (f Field) String() string {
	return f.Column()
}

// isDate reports whether f holds a calendar date.
func (f Field) isDate() bool {
	switch f {
	case FieldPublishedOn, FieldMeasurementRequestedOn, FieldMeasuredOn:
		return true
	}
	return false
}

// Obra is one public-works record. Invalid pgtype values render as NULL.
type Obra struct {
	Line                   int           `json:"-"` // 1-based sheet row
	Municipality           pgtype.Text   `json:"municipio"`
	Description            string        `json:"obra"`
	Agency                 pgtype.Text   `json:"orgao"`
	ProcessID              pgtype.Text   `json:"sei"`
	MeasurementProcessID   pgtype.Text   `json:"sei_medicao"`
	Status                 pgtype.Text   `json:"status"`
	PublishedOn            pgtype.Text   `json:"publicacao_os"`
	MeasurementRequestedOn pgtype.Text   `json:"solicitacao_medicao"`
	MeasuredOn             pgtype.Text   `json:"data_medicao"`
	MeasurementStatus      pgtype.Text   `json:"status_medicao"`
	TotalValue             pgtype.Float8 `json:"valor_total"`
}

// text returns a pointer to the text field backing f, or nil for fields that
// are not nullable text.
func (o *Obra) text(f Field) *pgtype.Text {
	switch f {
	case FieldMunicipality:
		return &o.Municipality
	case FieldAgency:
		return &o.Agency
	case FieldProcessID:
		return &o.ProcessID
	case FieldMeasurementProcessID:
		return &o.MeasurementProcessID
	case FieldStatus:
		return &o.Status
	case FieldPublishedOn:
		return &o.PublishedOn
	case FieldMeasurementRequestedOn:
		return &o.MeasurementRequestedOn
	case FieldMeasuredOn:
		return &o.MeasuredOn
	case FieldMeasurementStatus:
		return &o.MeasurementStatus
	}
	return nil
}
