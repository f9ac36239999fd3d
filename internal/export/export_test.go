package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/export"
)

// ---- helpers ---------------------------------------------------------------

func tripFixture() domain.Trip {
	date := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:            uuid.MustParse("4b0f3c1e-8a8e-4d1a-9d84-2f6f3b1a7c55"),
		Destination:   "Snoqualmie Falls",
		Status:        domain.TripStatusPlanned,
		ScheduledDate: &date,
		Itinerary: domain.Itinerary{
			Stops: []domain.Stop{
				{Type: domain.StopAttraction, Name: "Snoqualmie Falls Viewpoint", Address: "6501 Railroad Ave SE, Snoqualmie, WA", Lat: 47.542, Lng: -121.8374, Duration: 30, Notes: "Main viewpoint and trails"},
				{Type: domain.StopFood, Name: "Snoqualmie Falls Cafe", Address: "Near falls parking area", Lat: 47.5422, Lng: -121.8375, Duration: 45},
			},
			TotalDistance: 23.4812,
			TotalDuration: 103.18,
			EstimatedCost: domain.Cost{Fuel: 3.13, Food: 12, Total: 15.13},
		},
	}
}

// ---- Rows ------------------------------------------------------------------

func TestRows_OnePerStopInOrder(t *testing.T) {
	trip := tripFixture()

	rows := export.Rows(trip)

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Seq)
	assert.Equal(t, "Snoqualmie Falls Viewpoint", rows[0].StopName)
	assert.Equal(t, 2, rows[1].Seq)
	assert.Equal(t, "food", rows[1].StopType)
	for _, r := range rows {
		assert.Equal(t, trip.ID.String(), r.TripID)
		assert.Equal(t, "2026-06-20", r.ScheduledDate)
		assert.Equal(t, 15.13, r.TotalCost)
	}
}

func TestRows_NoStops(t *testing.T) {
	trip := tripFixture()
	trip.Itinerary.Stops = nil
	trip.ScheduledDate = nil

	rows := export.Rows(trip)

	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Seq)
	assert.Empty(t, rows[0].StopName)
	assert.Empty(t, rows[0].ScheduledDate)
	assert.Equal(t, "Snoqualmie Falls", rows[0].Destination)
}

// ---- CSV -------------------------------------------------------------------

func TestCSV(t *testing.T) {
	data, err := export.CSV(export.Rows(tripFixture()))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3, "header plus one row per stop")
	assert.Equal(t, "trip_id", records[0][0])
	assert.Equal(t, "total_cost", records[0][len(records[0])-1])
	assert.Equal(t, []string{
		"4b0f3c1e-8a8e-4d1a-9d84-2f6f3b1a7c55", "Snoqualmie Falls", "planned", "2026-06-20",
		"1", "attraction", "Snoqualmie Falls Viewpoint", "6501 Railroad Ave SE, Snoqualmie, WA",
		"47.542", "-121.8374", "30", "Main viewpoint and trails",
		"23.48", "103", "3.13", "12.00", "15.13",
	}, records[1])
	assert.Equal(t, "", records[2][11], "missing notes stay empty")
}

func TestCSV_NoStopsLeavesStopColumnsBlank(t *testing.T) {
	trip := tripFixture()
	trip.Itinerary.Stops = nil

	data, err := export.CSV(export.Rows(trip))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	for i := 4; i <= 11; i++ {
		assert.Empty(t, records[1][i], "column %d", i)
	}
}

// ---- PDF -------------------------------------------------------------------

func TestPDF(t *testing.T) {
	trip := tripFixture()
	trip.Destination = "Café Crawl"

	data, err := export.PDF(trip, export.Rows(trip))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output is a PDF document")
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

// ---- XLSX ------------------------------------------------------------------

func TestXLSX(t *testing.T) {
	trip := tripFixture()

	data, err := export.XLSX(trip, export.Rows(trip))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Stops"}, f.GetSheetList())

	dest, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Snoqualmie Falls", dest)

	rows, err := f.GetRows("Stops")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "stop_name", rows[0][6])
	assert.Equal(t, "Snoqualmie Falls Cafe", rows[2][6])
	assert.Equal(t, "45", rows[2][10])
}

// ---- Render ----------------------------------------------------------------

func TestRender(t *testing.T) {
	trip := tripFixture()

	tests := []struct {
		format      domain.ExportFormat
		contentType string
	}{
		{domain.ExportCSV, "text/csv"},
		{domain.ExportPDF, "application/pdf"},
		{domain.ExportXLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	}
	for _, tc := range tests {
		t.Run(string(tc.format), func(t *testing.T) {
			doc, err := export.Render(tc.format, trip)

			require.NoError(t, err)
			assert.Equal(t, tc.format, doc.Format)
			assert.Equal(t, tc.contentType, doc.ContentType)
			assert.Equal(t, "trip-4b0f3c1e-8a8e-4d1a-9d84-2f6f3b1a7c55."+string(tc.format), doc.Filename)
			assert.NotEmpty(t, doc.Data)
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := export.Render("docx", tripFixture())

	assert.ErrorIs(t, err, domain.ErrValidation)
}
