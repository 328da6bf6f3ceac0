// internal/export/csv.go
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"mission-quotation/internal/models"
)

var csvHeader = []string{
	"SKU", "Item Name", "Brand", "Category", "Unit Price", "Quantity", "Total Price",
	"Assigned To", "Lead Time (Days)", "Weight (lbs)", "Vendor", "In Stock",
}

// CSV writes one row per line item under a fixed header.
func CSV(q *models.Quotation) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, li := range q.Items {
		record := []string{
			li.SKU,
			li.Name,
			li.Brand,
			li.Category,
			formatCurrency(li.UnitPrice),
			strconv.Itoa(li.Quantity),
			formatCurrency(li.TotalPrice),
			li.AssignedTo,
			strconv.Itoa(li.LeadTime),
			strconv.FormatFloat(li.Weight, 'f', -1, 64),
			li.Vendor,
			yesNo(li.InStock),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportCSV(q *models.Quotation) (*Document, error) {
	content, err := CSV(q)
	if err != nil {
		return nil, err
	}
	return &Document{
		FileName:    q.QuotationID + "_equipment_list.csv",
		ContentType: "text/csv",
		Content:     content,
	}, nil
}

func formatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
