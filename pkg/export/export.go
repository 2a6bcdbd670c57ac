// Package export renders tabular data as downloadable documents.
package export

import "fmt"

// Format names a supported output document type.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// Table is an ordered grid with a header row. Every row should have len(Headers) cells;
// missing cells render empty and extra cells are dropped.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func (t Table) cells(row []string) []string {
	out := make([]string, len(t.Headers))
	copy(out, row)
	return out
}

// Renderer turns a table into document bytes.
type Renderer interface {
	Render(table Table) ([]byte, error)
}

// ParseFormat validates a user supplied format, defaulting to CSV when empty.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// ForFormat returns the renderer for format.
func ForFormat(format Format) (Renderer, error) {
	switch format {
	case FormatCSV:
		return NewCSVRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
