package obras

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// Table is the target table of generated statements.
const Table = "obras"

const banner = "-- ============================================\n" +
	"-- IMPORTAR OBRAS DO ARQUIVO EXCEL\n" +
	"-- ============================================\n" +
	"\n" +
	"-- Este arquivo foi gerado automaticamente pelo obratools import-obras\n" +
	"\n"

// Column layout of the INSERT: six per line, then the rest.
const columnsPerFirstLine = 6

// QuoteLiteral returns s as a SQL string literal with embedded quotes doubled.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func textLiteral(t pgtype.Text) string {
	if !t.Valid {
		return "NULL"
	}
	return QuoteLiteral(t.String)
}

func floatLiteral(f pgtype.Float8) string {
	if !f.Valid {
		return "NULL"
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

// values returns the SQL literals of o in column order.
func (o *Obra) values() []string {
	out := make([]string, 0, len(Fields))
	for _, f := range Fields {
		switch f {
		case FieldDescription:
			out = append(out, QuoteLiteral(o.Description))
		case FieldTotalValue:
			out = append(out, floatLiteral(o.TotalValue))
		default:
			out = append(out, textLiteral(*o.text(f)))
		}
	}
	return out
}

// RenderInsert renders o as one multi-line INSERT statement, without a
// trailing newline.
func RenderInsert(o Obra) string {
	cols := make([]string, len(Fields))
	for i, f := range Fields {
		cols[i] = f.Column()
	}
	vals := o.values()

	var b strings.Builder
	b.WriteString("INSERT INTO " + Table + " (\n")
	writeSplit(&b, cols)
	b.WriteString(") VALUES (\n")
	writeSplit(&b, vals)
	b.WriteString(");")
	return b.String()
}

func writeSplit(b *strings.Builder, items []string) {
	b.WriteString("  ")
	b.WriteString(strings.Join(items[:columnsPerFirstLine], ", "))
	b.WriteString(",\n  ")
	b.WriteString(strings.Join(items[columnsPerFirstLine:], ", "))
	b.WriteString("\n")
}

// Render returns the full SQL file: the comment banner followed by one
// statement per record, each followed by a blank line.
func Render(obras []Obra) []byte {
	var buf bytes.Buffer
	buf.WriteString(banner)
	for _, o := range obras {
		buf.WriteString(RenderInsert(o))
		buf.WriteString("\n\n")
	}
	return buf.Bytes()
}
