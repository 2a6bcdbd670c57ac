package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingTable() Table {
	return Table{
		Title:   "The Musical Hop bookings 2024-01-01",
		Headers: []string{"Start", "End", "Artist"},
		Rows: [][]string{
			{"18:00", "19:00", "Guns N Petals"},
			{"21:00", "22:30", "The Wild Sax Band", "ignored"},
			{"23:00"},
		},
	}
}

func TestCSVRendererNormalisesRows(t *testing.T) {
	out, err := NewCSVRenderer().Render(bookingTable())
	require.NoError(t, err)
	assert.Equal(t, "Start,End,Artist\n18:00,19:00,Guns N Petals\n21:00,22:30,The Wild Sax Band\n23:00,,\n", string(out))
}

func TestRenderersRequireHeaders(t *testing.T) {
	_, err := NewCSVRenderer().Render(Table{})
	assert.Error(t, err)
	_, err = NewPDFRenderer().Render(Table{})
	assert.Error(t, err)
}

func TestPDFRenderer(t *testing.T) {
	out, err := NewPDFRenderer().Render(bookingTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	format, err = ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", format.ContentType())

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)

	renderer, err := ForFormat(FormatPDF)
	require.NoError(t, err)
	assert.IsType(t, &PDFRenderer{}, renderer)
}
