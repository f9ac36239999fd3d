package domain

import "fmt"

// ExportFormat selects the document type produced by a trip export.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportPDF  ExportFormat = "pdf"
	ExportXLSX ExportFormat = "xlsx"
)

// ParseExportFormat maps a query value to an ExportFormat.
// An empty value selects CSV.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportPDF:
		return ExportPDF, nil
	case ExportXLSX:
		return ExportXLSX, nil
	}
	return "", fmt.Errorf("%w: unsupported export format %q", ErrValidation, s)
}

// ExportRow is a single row of a trip export.
// It is a flat, denormalized view: one row per itinerary stop, with trip
// fields repeated on every row. A trip without stops yields one row with
// zero values for all stop fields.
type ExportRow struct {
	// Trip fields, repeated for every stop.
	TripID        string
	Destination   string
	Status        string
	ScheduledDate string // "2006-01-02", empty when unscheduled

	// Stop fields, zero values when the itinerary has no stops.
	Seq          int // 1-based position in the itinerary, 0 when no stop
	StopType     string
	StopName     string
	StopAddress  string
	StopLat      float64
	StopLng      float64
	StopDuration int
	StopNotes    string

	// Trip totals.
	TotalDistance float64
	TotalDuration float64
	FuelCost      float64
	FoodCost      float64
	TotalCost     float64
}

// ExportDocument is a rendered export ready to be sent to the client.
type ExportDocument struct {
	Format      ExportFormat
	ContentType string
	Filename    string
	Data        []byte
}
