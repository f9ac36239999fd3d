package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/export"
	"github.com/pkordes/sidequest/internal/repo"
)

// ExportService renders a visible trip as a downloadable document.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns the trip as CSV, PDF or XLSX. Any participant may export.
func (s *ExportService) Export(ctx context.Context, userID, tripID uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error) {
	trip, err := s.trips.FindForUser(ctx, tripID, userID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	doc, err := export.Render(format, trip)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return doc, nil
}
