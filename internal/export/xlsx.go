package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pkordes/sidequest/internal/domain"
)

const (
	summarySheet = "Summary"
	stopsSheet   = "Stops"
)

// XLSX renders a workbook with a trip summary sheet and a stop table sheet.
// Numeric columns are written as numbers so they stay usable in formulas.
func XLSX(t domain.Trip, rows []domain.ExportRow) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	writeSummary(file, t)

	if _, err := file.NewSheet(stopsSheet); err != nil {
		return nil, err
	}
	writeStops(file, rows)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummary(file *excelize.File, t domain.Trip) {
	set := func(cell string, value any) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}

	scheduled := ""
	if t.ScheduledDate != nil {
		scheduled = t.ScheduledDate.Format(dateLayout)
	}

	set("A1", "Trip")
	set("B1", t.ID.String())
	set("A2", "Destination")
	set("B2", t.Destination)
	set("A3", "Status")
	set("B3", string(t.Status))
	set("A4", "Scheduled date")
	set("B4", scheduled)
	set("A5", "Distance (mi)")
	set("B5", t.Itinerary.TotalDistance)
	set("A6", "Duration (min)")
	set("B6", t.Itinerary.TotalDuration)
	set("A7", "Fuel cost")
	set("B7", t.Itinerary.EstimatedCost.Fuel)
	set("A8", "Food cost")
	set("B8", t.Itinerary.EstimatedCost.Food)
	set("A9", "Total cost")
	set("B9", t.Itinerary.EstimatedCost.Total)

	_ = file.SetColWidth(summarySheet, "A", "A", 18)
	_ = file.SetColWidth(summarySheet, "B", "B", 40)
}

func writeStops(file *excelize.File, rows []domain.ExportRow) {
	set := func(col, row int, value any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = file.SetCellValue(stopsSheet, cell, value)
	}

	for i, h := range headers {
		set(i+1, 1, h)
	}

	for i, r := range rows {
		row := i + 2
		set(1, row, r.TripID)
		set(2, row, r.Destination)
		set(3, row, r.Status)
		set(4, row, r.ScheduledDate)
		if r.Seq > 0 {
			set(5, row, r.Seq)
			set(6, row, r.StopType)
			set(7, row, r.StopName)
			set(8, row, r.StopAddress)
			set(9, row, r.StopLat)
			set(10, row, r.StopLng)
			set(11, row, r.StopDuration)
			set(12, row, r.StopNotes)
		}
		set(13, row, r.TotalDistance)
		set(14, row, r.TotalDuration)
		set(15, row, r.FuelCost)
		set(16, row, r.FoodCost)
		set(17, row, r.TotalCost)
	}

	_ = file.SetColWidth(stopsSheet, "A", "A", 38)
	_ = file.SetColWidth(stopsSheet, "B", "D", 16)
	_ = file.SetColWidth(stopsSheet, "G", "H", 32)
	_ = file.SetColWidth(stopsSheet, "L", "L", 32)
	_ = file.AutoFilter(stopsSheet, fmt.Sprintf("A1:Q%d", len(rows)+1), nil)
}
