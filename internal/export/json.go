// internal/export/json.go
package export

import (
	"encoding/json"
	"fmt"

	"mission-quotation/internal/models"
)

func JSON(q *models.Quotation) ([]byte, error) {
	return json.MarshalIndent(q, "", "  ")
}

// ParseJSON reads a quotation previously written by JSON.
func ParseJSON(data []byte) (*models.Quotation, error) {
	var q models.Quotation
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("parse quotation: %w", err)
	}
	return &q, nil
}

func exportJSON(q *models.Quotation) (*Document, error) {
	content, err := JSON(q)
	if err != nil {
		return nil, err
	}
	return &Document{
		FileName:    q.QuotationID + "_quotation.json",
		ContentType: "application/json",
		Content:     content,
	}, nil
}
