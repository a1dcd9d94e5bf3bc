package obras

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{
	"Município", "Obra", "Orgão", "SEI", "SEI Medição", "Status",
	"Publicação da OS", "Solicitação Medição", "Data Medição", "Status Medição", "Valor Total",
}

func TestBuildObra(t *testing.T) {
	idx := MakeHeaderIndex(testHeader)
	row := []Cell{
		strCell("Recife"), strCell(" Ponte A "), strCell("SEINFRA"), numCell("0"), strCell(""), strCell("Concluída"),
		numCell("45306"), strCell("05/03/2024"), strCell(""), strCell("0"), strCell("R$ 1.461.860,68"),
	}

	o, degraded, ok := BuildObra(row, idx, 2)
	require.True(t, ok)
	assert.Empty(t, degraded)

	assert.Equal(t, 2, o.Line)
	assert.Equal(t, "Ponte A", o.Description)
	assert.Equal(t, text("Recife"), o.Municipality)
	assert.Equal(t, text("SEINFRA"), o.Agency)
	assert.False(t, o.ProcessID.Valid, "numeric zero is absent")
	assert.False(t, o.MeasurementProcessID.Valid)
	assert.Equal(t, text("2024-01-15"), o.PublishedOn)
	assert.Equal(t, text("2024-03-05"), o.MeasurementRequestedOn)
	assert.False(t, o.MeasuredOn.Valid)
	assert.Equal(t, text("0"), o.MeasurementStatus, "text zero is kept")
	assert.True(t, o.TotalValue.Valid)
	assert.InDelta(t, 1461860.68, o.TotalValue.Float64, 1e-9)
}

func TestBuildObra_EmptyDescriptionDropped(t *testing.T) {
	idx := MakeHeaderIndex(testHeader)
	row := []Cell{
		strCell("Recife"), strCell("   "), strCell("SEINFRA"), numCell("123"), numCell("456"), strCell("Ativa"),
		numCell("45306"), numCell("45307"), numCell("45308"), strCell("OK"), numCell("100"),
	}

	_, _, ok := BuildObra(row, idx, 3)
	assert.False(t, ok)
}

func TestBuildObra_NoDescriptionColumn(t *testing.T) {
	idx := MakeHeaderIndex([]string{"Município"})
	_, _, ok := BuildObra([]Cell{strCell("Recife")}, idx, 2)
	assert.False(t, ok)
}

func TestBuildObra_DegradedAmount(t *testing.T) {
	idx := MakeHeaderIndex([]string{"Obra", "Valor Total"})

	o, degraded, ok := BuildObra([]Cell{strCell("Ponte A"), strCell("a definir")}, idx, 2)
	require.True(t, ok)
	require.Len(t, degraded, 1)
	assert.Equal(t, FieldTotalValue, degraded[0].Field)
	assert.ErrorIs(t, degraded[0].Err, ErrInvalidAmount)
	assert.False(t, o.TotalValue.Valid)
}
