package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/pkordes/sidequest/internal/domain"
)

const pdfFont = "Helvetica"

// PDF renders a one-page itinerary summary with a stop table.
// The core Helvetica font only covers cp1252, so text is translated from UTF-8.
func PDF(t domain.Trip, rows []domain.ExportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 10, tr("Side Quest: "+t.Destination), "", 1, "L", false, 0, "")

	pdf.SetFont(pdfFont, "", 11)
	scheduled := "not scheduled"
	if t.ScheduledDate != nil {
		scheduled = t.ScheduledDate.Format(dateLayout)
	}
	for _, line := range []string{
		fmt.Sprintf("Status: %s", t.Status),
		fmt.Sprintf("Date: %s", scheduled),
		fmt.Sprintf("Distance: %.1f mi", t.Itinerary.TotalDistance),
		fmt.Sprintf("Duration: %s", formatMinutes(t.Itinerary.TotalDuration)),
		fmt.Sprintf("Estimated cost: $%.2f (fuel $%.2f, food $%.2f)",
			t.Itinerary.EstimatedCost.Total, t.Itinerary.EstimatedCost.Fuel, t.Itinerary.EstimatedCost.Food),
	} {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, 8, "Stops", "", 1, "L", false, 0, "")

	widths := []float64{10, 25, 55, 70, 20}
	drawTableRow(pdf, tr, []string{"#", "Type", "Name", "Address", "Minutes"}, widths, true)
	for _, r := range rows {
		if r.Seq == 0 {
			pdf.SetFont(pdfFont, "", 10)
			pdf.CellFormat(0, 8, "No stops planned.", "", 1, "L", false, 0, "")
			break
		}
		drawTableRow(pdf, tr, []string{
			strconv.Itoa(r.Seq),
			r.StopType,
			r.StopName,
			r.StopAddress,
			strconv.Itoa(r.StopDuration),
		}, widths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(pdfFont, style, 10)
	for i, col := range cols {
		align := "L"
		if i == 0 || i == len(cols)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

// formatMinutes renders 135.4 as "2h 15m".
func formatMinutes(m float64) string {
	total := int(m + 0.5)
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
