package invoice

import (
	"bytes"
	"fmt"
	"time"

	"workorder_service/internal/domain/entities"
	"workorder_service/internal/usecase"

	"github.com/jung-kurt/gofpdf"
)

// PDFGenerator renders a single work-order invoice.
//
// Totals are recomputed from the line items at render time. The quoted
// estimate amount is printed alongside the grand total; the two are not
// reconciled.
type PDFGenerator struct{}

var _ usecase.InvoiceGenerator = (*PDFGenerator)(nil)

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

func (g *PDFGenerator) Generate(w entities.WorkOrder) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Work Order Invoice", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Work order %s", w.ID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s  Created: %s", w.Status, w.CreatedAt.Format("2006-01-02")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if w.IssueDescription != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, "Issue", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, w.IssueDescription, "", "L", false)
		pdf.Ln(2)
	}

	widths := []float64{110, 20, 25, 25}
	drawRow := func(cols []string, header bool) {
		style := ""
		if header {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		for i, col := range cols {
			align := "L"
			if i > 0 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, col, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	totals := w.Totals()

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Parts", "", 1, "L", false, 0, "")
	drawRow([]string{"Part", "Qty", "Unit", "Total"}, true)
	for _, p := range w.CostBreakdown.PartsUsed {
		drawRow([]string{p.Name, fmt.Sprintf("%d", p.Quantity), money(p.UnitPrice), money(float64(p.Quantity) * p.UnitPrice)}, false)
	}
	drawRow([]string{"Parts total", "", "", money(totals.PartsTotal)}, true)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Labor", "", 1, "L", false, 0, "")
	drawRow([]string{"Description", "Hours", "Rate", "Total"}, true)
	for _, l := range w.CostBreakdown.LaborLines {
		drawRow([]string{l.Description, fmt.Sprintf("%.2f", l.Hours), money(l.RatePerHour), money(l.Hours * l.RatePerHour)}, false)
	}
	drawRow([]string{"Labor total", "", "", money(totals.LaborTotal)}, true)
	pdf.Ln(2)

	if len(w.CostBreakdown.AdditionalCharges) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, "Additional charges", "", 1, "L", false, 0, "")
		drawRow([]string{"Description", "", "", "Amount"}, true)
		for _, c := range w.CostBreakdown.AdditionalCharges {
			drawRow([]string{c.Description, "", "", money(c.Amount)}, false)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Grand total: %s", money(totals.GrandTotal)), "", 1, "R", false, 0, "")
	if w.Estimate != nil {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Quoted estimate (%s): %s", w.Estimate.Status, money(w.Estimate.Amount)), "", 1, "R", false, 0, "")
	}

	if len(w.Payments) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, "Payments", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, p := range w.Payments {
			line := fmt.Sprintf("%s  %s  %s", p.Timestamp.Format(time.RFC3339), p.Method, money(p.Amount))
			if p.Notes != "" {
				line += "  " + p.Notes
			}
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
