package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// ExportTrip handles GET /trips/{id}/export.
// ?format= selects csv (default), pdf or xlsx; the body is sent as an
// attachment named after the trip.
func (s *Server) ExportTrip(ctx context.Context, req gen.ExportTripRequestObject) (gen.ExportTripResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var raw string
	if req.Params.Format != nil {
		raw = string(*req.Params.Format)
	}
	format, err := domain.ParseExportFormat(raw)
	if err != nil {
		return gen.ExportTrip422JSONResponse(validationBody(err)), nil
	}

	doc, err := s.export.Export(ctx, userID, req.Id, format)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ExportTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return buildFileResponse(doc), nil
}

// buildFileResponse wraps a rendered document in the response type matching
// its content type.
func buildFileResponse(doc domain.ExportDocument) gen.ExportTripResponseObject {
	headers := gen.ExportTrip200ResponseHeaders{
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", doc.Filename),
	}
	body := bytes.NewReader(doc.Data)
	size := int64(len(doc.Data))

	switch doc.Format {
	case domain.ExportPDF:
		return gen.ExportTrip200ApplicationpdfResponse{Body: body, Headers: headers, ContentLength: size}
	case domain.ExportXLSX:
		return gen.ExportTrip200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse{
			Body: body, Headers: headers, ContentLength: size,
		}
	default:
		return gen.ExportTrip200TextcsvResponse{Body: body, Headers: headers, ContentLength: size}
	}
}
