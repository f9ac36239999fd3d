package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// GenerateTrip handles POST /trips/generate.
// The itinerary is built from the caller's saved preferences, so onboarding
// must be complete (400 otherwise).
func (s *Server) GenerateTrip(ctx context.Context, req gen.GenerateTripRequestObject) (gen.GenerateTripResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.GenerateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	trip, err := s.trips.Generate(ctx, userID, req.Body.Destination, req.Body.Lat, req.Body.Lng)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesRequired) {
			return gen.GenerateTrip400JSONResponse(preferencesRequiredBody()), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.GenerateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.GenerateTrip201JSONResponse(tripToResponse(trip)), nil
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	trips, total, err := s.trips.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return gen.ListTrips200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	trip, err := s.trips.Get(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// UpdateTrip handles PATCH /trips/{id}.
// Absent fields are left unchanged.
func (s *Server) UpdateTrip(ctx context.Context, req gen.UpdateTripRequestObject) (gen.UpdateTripResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.UpdateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.trips.Update(ctx, userID, req.Id, requestToTripUpdate(*req.Body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateTrip404JSONResponse(notFoundBody("trip not found")), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.UpdateTrip403JSONResponse(forbiddenBody(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateTrip200JSONResponse(tripToResponse(updated)), nil
}

// --- mapping helpers --------------------------------------------------------

func requestToTripUpdate(body gen.UpdateTripRequest) domain.TripUpdate {
	var upd domain.TripUpdate
	if body.Status != nil {
		st := domain.TripStatus(*body.Status)
		upd.Status = &st
	}
	if body.ScheduledDate != nil {
		d := body.ScheduledDate.Time
		upd.ScheduledDate = &d
	}
	return upd
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
// Participants are only included when the read path loaded them.
func tripToResponse(t domain.Trip) gen.Trip {
	resp := gen.Trip{
		Id:             t.ID,
		OwnerId:        t.OwnerID,
		Destination:    t.Destination,
		DestinationLat: t.DestinationLat,
		DestinationLng: t.DestinationLng,
		Itinerary:      itineraryToResponse(t.Itinerary),
		EstimatedCost:  t.EstimatedCost,
		Distance:       t.Distance,
		Duration:       t.Duration,
		Status:         gen.TripStatus(t.Status),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
	if t.ScheduledDate != nil {
		d := openapi_types.Date{Time: *t.ScheduledDate}
		resp.ScheduledDate = &d
	}
	if t.Participants != nil {
		ps := make([]gen.Participant, len(t.Participants))
		for i, p := range t.Participants {
			ps[i] = participantToResponse(p)
		}
		resp.Participants = &ps
	}
	return resp
}

func itineraryToResponse(it domain.Itinerary) gen.Itinerary {
	waypoints := make([]gen.Waypoint, len(it.Route.Waypoints))
	for i, w := range it.Route.Waypoints {
		waypoints[i] = gen.Waypoint{Lat: w.Lat, Lng: w.Lng}
	}
	stops := make([]gen.Stop, len(it.Stops))
	for i, st := range it.Stops {
		stops[i] = gen.Stop{
			Type:     gen.StopType(st.Type),
			Name:     st.Name,
			Address:  st.Address,
			Lat:      st.Lat,
			Lng:      st.Lng,
			Duration: st.Duration,
		}
		if st.Notes != "" {
			notes := st.Notes
			stops[i].Notes = &notes
		}
	}
	return gen.Itinerary{
		Route: gen.Route{
			StartLat:  it.Route.StartLat,
			StartLng:  it.Route.StartLng,
			EndLat:    it.Route.EndLat,
			EndLng:    it.Route.EndLng,
			Waypoints: waypoints,
		},
		Stops:         stops,
		TotalDistance: it.TotalDistance,
		TotalDuration: it.TotalDuration,
		EstimatedCost: gen.Cost{
			Fuel:  it.EstimatedCost.Fuel,
			Food:  it.EstimatedCost.Food,
			Total: it.EstimatedCost.Total,
		},
	}
}
