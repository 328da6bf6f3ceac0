// internal/workers/quotation/export-quotation/models.go
package exportquotation

import "mission-quotation/internal/models"

type Input struct {
	Quotation *models.Quotation `json:"quotation"`
	Format    string            `json:"format"`
}

const (
	EncodingText   = "text"
	EncodingBase64 = "base64"
)

// Output carries the rendered file. Binary formats are base64 encoded.
type Output struct {
	FileName        string `json:"fileName"`
	ContentType     string `json:"contentType"`
	ContentEncoding string `json:"contentEncoding"`
	Content         string `json:"content"`
}
