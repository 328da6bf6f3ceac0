// internal/export/xlsx.go
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"mission-quotation/internal/catalog"
	"mission-quotation/internal/models"
)

const (
	itemsSheet    = "Quotation"
	assigneeSheet = "By Assignee"
	headerRow     = 5
	dateLayout    = "2006-01-02"
	currencyFmt   = "$#,##0.00"
)

// XLSX renders the quotation as a workbook: line items with a totals block
// on the first sheet, per-assignee subtotals on the second.
func XLSX(q *models.Quotation, cat *catalog.Catalog) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), itemsSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	lastCol := columns[len(columns)-1]

	widths := []float64{30, 40, 20, 18, 12, 10, 14, 24, 16, 12, 16, 10}
	for i, col := range columns {
		if err := f.SetColWidth(itemsSheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	// Title block.
	if err := f.MergeCell(itemsSheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(itemsSheet, "A1", sanitizeExcelCell("Equipment Quotation: "+q.MissionName))
	f.SetCellStyle(itemsSheet, "A1", lastCol+"1", styles.title)

	f.SetCellValue(itemsSheet, "A2", "Quotation: "+q.QuotationID)
	f.SetCellValue(itemsSheet, "A3", fmt.Sprintf("Created: %s    Valid until: %s",
		q.Created.Format(dateLayout), q.ValidUntil.Format(dateLayout)))
	f.SetCellValue(itemsSheet, "D2", sanitizeExcelCell(fmt.Sprintf("Mission type: %s", q.MissionType)))
	f.SetCellValue(itemsSheet, "D3", sanitizeExcelCell(fmt.Sprintf("Environment: %s    Threat: %s    Duration: %d days",
		q.Environment, q.ThreatLevel, q.Duration)))
	f.SetCellStyle(itemsSheet, "A2", "D3", styles.subtitle)

	for i, h := range csvHeader {
		f.SetCellValue(itemsSheet, fmt.Sprintf("%s%d", columns[i], headerRow), h)
	}
	f.SetCellStyle(itemsSheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), styles.header)

	row := headerRow + 1
	for _, li := range q.Items {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(itemsSheet, "A"+r, sanitizeExcelCell(li.SKU))
		f.SetCellValue(itemsSheet, "B"+r, sanitizeExcelCell(li.Name))
		f.SetCellValue(itemsSheet, "C"+r, sanitizeExcelCell(li.Brand))
		f.SetCellValue(itemsSheet, "D"+r, sanitizeExcelCell(li.Category))
		f.SetCellValue(itemsSheet, "E"+r, li.UnitPrice)
		f.SetCellValue(itemsSheet, "F"+r, li.Quantity)
		f.SetCellValue(itemsSheet, "G"+r, li.TotalPrice)
		f.SetCellValue(itemsSheet, "H"+r, sanitizeExcelCell(li.AssignedTo))
		f.SetCellValue(itemsSheet, "I"+r, li.LeadTime)
		f.SetCellValue(itemsSheet, "J"+r, li.Weight)
		f.SetCellValue(itemsSheet, "K"+r, sanitizeExcelCell(li.Vendor))
		f.SetCellValue(itemsSheet, "L"+r, yesNo(li.InStock))

		f.SetCellStyle(itemsSheet, "A"+r, lastCol+r, styles.item)
		f.SetCellStyle(itemsSheet, "E"+r, "E"+r, styles.itemCurrency)
		f.SetCellStyle(itemsSheet, "G"+r, "G"+r, styles.itemCurrency)
		row++
	}

	// Totals block, one blank row below the items.
	row++
	s := q.Summary
	totals := []struct {
		label    string
		value    interface{}
		currency bool
	}{
		{"Line Items:", s.TotalItems, false},
		{"Total Quantity:", s.TotalQuantity, false},
		{"Total Weight (lbs):", s.TotalWeight, false},
		{"Max Lead Time (Days):", s.MaxLeadTime, false},
		{"Subtotal:", s.Subtotal, true},
		{"Tax:", s.Tax, true},
		{"Shipping:", s.Shipping, true},
		{"Total:", s.Total, true},
	}
	for _, t := range totals {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(itemsSheet, "F"+r, t.label)
		f.SetCellStyle(itemsSheet, "F"+r, "F"+r, styles.summaryLabel)
		f.SetCellValue(itemsSheet, "G"+r, t.value)
		valueStyle := styles.summaryValue
		if t.currency {
			valueStyle = styles.summaryCurrency
		}
		f.SetCellStyle(itemsSheet, "G"+r, "G"+r, valueStyle)
		row++
	}

	if vendors := quotedVendors(q, cat); len(vendors) > 0 {
		row++
		f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row), "Vendors")
		f.SetCellStyle(itemsSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.summaryValue)
		row++
		for _, v := range vendors {
			r := fmt.Sprintf("%d", row)
			f.SetCellValue(itemsSheet, "A"+r, sanitizeExcelCell(v.Name))
			f.SetCellValue(itemsSheet, "B"+r, sanitizeExcelCell(v.Website))
			f.SetCellValue(itemsSheet, "C"+r, sanitizeExcelCell(v.Contact))
			f.SetCellValue(itemsSheet, "D"+r, sanitizeExcelCell(v.ShippingPolicy))
			if v.GSAContract {
				f.SetCellValue(itemsSheet, "E"+r, "GSA")
			}
			row++
		}
	}

	if err := writeAssigneeSheet(f, q, styles); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func writeAssigneeSheet(f *excelize.File, q *models.Quotation, styles *sheetStyles) error {
	if _, err := f.NewSheet(assigneeSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := f.SetColWidth(assigneeSheet, "A", "A", 28); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(assigneeSheet, "B", "C", 14); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}

	f.SetCellValue(assigneeSheet, "A1", "Assigned To")
	f.SetCellValue(assigneeSheet, "B1", "Line Items")
	f.SetCellValue(assigneeSheet, "C1", "Subtotal")
	f.SetCellStyle(assigneeSheet, "A1", "C1", styles.header)

	for i, g := range q.GroupByAssignee() {
		r := fmt.Sprintf("%d", i+2)
		f.SetCellValue(assigneeSheet, "A"+r, sanitizeExcelCell(g.Assignee))
		f.SetCellValue(assigneeSheet, "B"+r, len(g.Items))
		f.SetCellValue(assigneeSheet, "C"+r, g.Subtotal)
		f.SetCellStyle(assigneeSheet, "A"+r, "B"+r, styles.item)
		f.SetCellStyle(assigneeSheet, "C"+r, "C"+r, styles.itemCurrency)
	}
	return nil
}

func exportXLSX(q *models.Quotation, cat *catalog.Catalog) (*Document, error) {
	content, err := XLSX(q, cat)
	if err != nil {
		return nil, err
	}
	return &Document{
		FileName:    q.QuotationID + "_quotation.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     content,
	}, nil
}

// quotedVendors returns catalog details for each vendor named on a line
// item, in first-appearance order. Vendors the catalog does not know are
// listed by name only.
func quotedVendors(q *models.Quotation, cat *catalog.Catalog) []catalog.Vendor {
	var out []catalog.Vendor
	seen := map[string]bool{}
	for _, li := range q.Items {
		if li.Vendor == "" || seen[li.Vendor] {
			continue
		}
		seen[li.Vendor] = true
		v := catalog.Vendor{Name: li.Vendor}
		if cat != nil {
			if known, ok := cat.Vendor(li.Vendor); ok {
				v = known
			}
		}
		out = append(out, v)
	}
	return out
}

type sheetStyles struct {
	title           int
	subtitle        int
	header          int
	item            int
	itemCurrency    int
	summaryLabel    int
	summaryValue    int
	summaryCurrency int
}

func newStyles(f *excelize.File) (*sheetStyles, error) {
	currency := currencyFmt
	s := &sheetStyles{}

	defs := []struct {
		name  string
		dst   *int
		style *excelize.Style
	}{
		{"title", &s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{"subtitle", &s.subtitle, &excelize.Style{Font: &excelize.Font{Size: 11}}},
		{"header", &s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{"item", &s.item, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{"item currency", &s.itemCurrency, &excelize.Style{
			Font:         &excelize.Font{Size: 10},
			Border:       thinBorders(),
			CustomNumFmt: &currency,
		}},
		{"summary label", &s.summaryLabel, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{"summary value", &s.summaryValue, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}}},
		{"summary currency", &s.summaryCurrency, &excelize.Style{
			Font:         &excelize.Font{Bold: true, Size: 11},
			CustomNumFmt: &currency,
		}},
	}

	for _, def := range defs {
		id, err := f.NewStyle(def.style)
		if err != nil {
			return nil, fmt.Errorf("create %s style: %w", def.name, err)
		}
		*def.dst = id
	}
	return s, nil
}

// sanitizeExcelCell prefixes values Excel would evaluate as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
