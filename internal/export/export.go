// Package export renders a trip itinerary as a downloadable document.
// Every format is built from the same flat rows: one per stop, in itinerary
// order, with the trip fields and totals repeated on each row.
package export

import (
	"fmt"
	"strconv"

	"github.com/pkordes/sidequest/internal/domain"
)

const dateLayout = "2006-01-02"

// Rows flattens a trip into export rows. A trip without stops yields a single
// row whose stop fields are zero.
func Rows(t domain.Trip) []domain.ExportRow {
	base := domain.ExportRow{
		TripID:        t.ID.String(),
		Destination:   t.Destination,
		Status:        string(t.Status),
		TotalDistance: t.Itinerary.TotalDistance,
		TotalDuration: t.Itinerary.TotalDuration,
		FuelCost:      t.Itinerary.EstimatedCost.Fuel,
		FoodCost:      t.Itinerary.EstimatedCost.Food,
		TotalCost:     t.Itinerary.EstimatedCost.Total,
	}
	if t.ScheduledDate != nil {
		base.ScheduledDate = t.ScheduledDate.Format(dateLayout)
	}

	if len(t.Itinerary.Stops) == 0 {
		return []domain.ExportRow{base}
	}

	rows := make([]domain.ExportRow, 0, len(t.Itinerary.Stops))
	for i, s := range t.Itinerary.Stops {
		r := base
		r.Seq = i + 1
		r.StopType = string(s.Type)
		r.StopName = s.Name
		r.StopAddress = s.Address
		r.StopLat = s.Lat
		r.StopLng = s.Lng
		r.StopDuration = s.Duration
		r.StopNotes = s.Notes
		rows = append(rows, r)
	}
	return rows
}

// Render builds the document for t in the requested format.
func Render(format domain.ExportFormat, t domain.Trip) (domain.ExportDocument, error) {
	rows := Rows(t)

	var (
		data        []byte
		contentType string
		err         error
	)
	switch format {
	case domain.ExportCSV:
		data, err = CSV(rows)
		contentType = "text/csv"
	case domain.ExportPDF:
		data, err = PDF(t, rows)
		contentType = "application/pdf"
	case domain.ExportXLSX:
		data, err = XLSX(t, rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return domain.ExportDocument{}, fmt.Errorf("%w: unsupported export format %q", domain.ErrValidation, format)
	}
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("export.Render %s: %w", format, err)
	}

	return domain.ExportDocument{
		Format:      format,
		ContentType: contentType,
		Filename:    fmt.Sprintf("trip-%s.%s", t.ID, format),
		Data:        data,
	}, nil
}

// headers are the column names shared by the CSV and XLSX stop tables.
var headers = []string{
	"trip_id", "destination", "status", "scheduled_date",
	"seq", "stop_type", "stop_name", "stop_address", "stop_lat", "stop_lng",
	"stop_duration_min", "stop_notes",
	"total_distance_mi", "total_duration_min", "fuel_cost", "food_cost", "total_cost",
}

// record encodes a row as strings. Stop columns are blank for a stopless trip.
func record(r domain.ExportRow) []string {
	rec := []string{r.TripID, r.Destination, r.Status, r.ScheduledDate}
	if r.Seq == 0 {
		rec = append(rec, "", "", "", "", "", "", "", "")
	} else {
		rec = append(rec,
			strconv.Itoa(r.Seq),
			r.StopType,
			r.StopName,
			r.StopAddress,
			strconv.FormatFloat(r.StopLat, 'f', -1, 64),
			strconv.FormatFloat(r.StopLng, 'f', -1, 64),
			strconv.Itoa(r.StopDuration),
			r.StopNotes,
		)
	}
	return append(rec,
		fixed(r.TotalDistance, 2),
		fixed(r.TotalDuration, 0),
		fixed(r.FuelCost, 2),
		fixed(r.FoodCost, 2),
		fixed(r.TotalCost, 2),
	)
}

func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
