// internal/export/export.go
package export

import (
	"errors"
	"fmt"
	"strings"

	"mission-quotation/internal/catalog"
	"mission-quotation/internal/common/metrics"
	"mission-quotation/internal/models"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Document is a rendered quotation ready to be saved or attached.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Export renders q in the requested format. cat supplies vendor details for
// the spreadsheet and may be nil.
func Export(q *models.Quotation, format Format, cat *catalog.Catalog) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatCSV:
		doc, err = exportCSV(q)
	case FormatJSON:
		doc, err = exportJSON(q)
	case FormatXLSX:
		doc, err = exportXLSX(q, cat)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}

	metrics.ExportsTotal.WithLabelValues(string(format)).Inc()
	return doc, nil
}
