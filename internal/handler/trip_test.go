package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

func newTripHTTPHandler(svc handler.TripServicer) http.Handler {
	return newHTTPHandler(handler.NewServer(nil, nil, nil, svc, nil, nil))
}

// ---- POST /trips/generate --------------------------------------------------

func TestGenerateTrip_201(t *testing.T) {
	user := uuid.New()
	fixture := tripFixture(user)
	fixture.Participants = []domain.Participant{}
	var gotDest string
	var gotLat, gotLng float64
	svc := &mockTripServicer{
		generate: func(_ context.Context, userID uuid.UUID, dest string, lat, lng float64) (domain.Trip, error) {
			assert.Equal(t, user, userID)
			gotDest, gotLat, gotLng = dest, lat, lng
			return fixture, nil
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), user, http.MethodPost, "/trips/generate", map[string]any{
		"destination": "Bainbridge Island", "lat": 47.6262, "lng": -122.5212,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bainbridge Island", gotDest)
	assert.Equal(t, 47.6262, gotLat)
	assert.Equal(t, -122.5212, gotLng)

	var resp gen.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, gen.TripStatusPlanned, resp.Status)
	require.Len(t, resp.Itinerary.Stops, 1)
	assert.Equal(t, gen.StopTypeFood, resp.Itinerary.Stops[0].Type)
	require.NotNil(t, resp.Itinerary.Stops[0].Notes)
	assert.Equal(t, "Try the pastries", *resp.Itinerary.Stops[0].Notes)
	assert.Equal(t, 25.76, resp.Itinerary.EstimatedCost.Total)
	require.NotNil(t, resp.Participants, "a fresh trip reports an empty participant list")
	assert.Empty(t, *resp.Participants)
}

func TestGenerateTrip_400_PreferencesRequired(t *testing.T) {
	svc := &mockTripServicer{
		generate: func(context.Context, uuid.UUID, string, float64, float64) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Generate: %w", domain.ErrPreferencesRequired)
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), uuid.New(), http.MethodPost, "/trips/generate", map[string]any{
		"destination": "Leavenworth", "lat": 47.5962, "lng": -120.6615,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "preferences_required", detail.Code)
	assert.Equal(t, "complete onboarding first", detail.Message)
}

func TestGenerateTrip_422_ValidationError(t *testing.T) {
	svc := &mockTripServicer{
		generate: func(context.Context, uuid.UUID, string, float64, float64) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Generate: %w: lat must be between -90 and 90", domain.ErrValidation)
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), uuid.New(), http.MethodPost, "/trips/generate", map[string]any{
		"destination": "Nowhere", "lat": 123.0, "lng": 0.0,
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "validation_error", detail.Code)
	assert.Equal(t, "lat must be between -90 and 90", detail.Message)
}

func TestGenerateTrip_400_MalformedJSON(t *testing.T) {
	h := newTripHTTPHandler(&mockTripServicer{})
	req := asUser(mustRequest(t, http.MethodPost, "/trips/generate", `{"destination":`), uuid.New())
	rec := recordTo(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	user := uuid.New()
	trips := []domain.Trip{tripFixture(user), tripFixture(uuid.New())}
	var gotParams domain.PaginationParams
	svc := &mockTripServicer{
		list: func(_ context.Context, _ uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			gotParams = p
			return trips, 42, nil
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), user, http.MethodGet, "/trips?page=2&limit=500", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: domain.MaxPageLimit}, gotParams)

	var resp gen.TripList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, gen.Pagination{Page: 2, Limit: 100, Total: 42}, resp.Pagination)
	assert.Nil(t, resp.Data[0].Participants, "list responses omit participants")
}

func TestListTrips_200_EmptyIsArray(t *testing.T) {
	svc := &mockTripServicer{
		list: func(context.Context, uuid.UUID, domain.PaginationParams) ([]domain.Trip, int64, error) {
			return []domain.Trip{}, 0, nil
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), uuid.New(), http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":20,"total":0}}`, rec.Body.String())
}

func TestListTrips_400_BadQueryParam(t *testing.T) {
	rec := serve(t, newTripHTTPHandler(&mockTripServicer{}), uuid.New(), http.MethodGet, "/trips?page=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- GET /trips/{id} -------------------------------------------------------

func TestGetTrip_200_WithParticipants(t *testing.T) {
	user := uuid.New()
	fixture := tripFixture(user)
	fixture.Participants = []domain.Participant{{
		ID: uuid.New(), TripID: fixture.ID, UserID: uuid.New(),
		Email: "bob@example.com", Name: "Bob", Status: domain.ParticipantAccepted,
	}}
	svc := &mockTripServicer{
		get: func(_ context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
			assert.Equal(t, user, userID)
			assert.Equal(t, fixture.ID, tripID)
			return fixture, nil
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), user, http.MethodGet, "/trips/"+fixture.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Participants)
	require.Len(t, *resp.Participants, 1)
	assert.Equal(t, gen.ParticipantStatusAccepted, (*resp.Participants)[0].Status)
	assert.Nil(t, resp.ScheduledDate)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		get: func(context.Context, uuid.UUID, uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), uuid.New(), http.MethodGet, "/trips/"+uuid.New().String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decodeError(t, rec).Message)
}

func TestGetTrip_400_InvalidUUID(t *testing.T) {
	rec := serve(t, newTripHTTPHandler(&mockTripServicer{}), uuid.New(), http.MethodGet, "/trips/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTrip_500_UnexpectedError(t *testing.T) {
	svc := &mockTripServicer{
		get: func(context.Context, uuid.UUID, uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, errors.New("connection reset")
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), uuid.New(), http.MethodGet, "/trips/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---- PATCH /trips/{id} -----------------------------------------------------

func TestUpdateTrip_200(t *testing.T) {
	user := uuid.New()
	fixture := tripFixture(user)
	var got domain.TripUpdate
	svc := &mockTripServicer{
		update: func(_ context.Context, _ uuid.UUID, _ uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
			got = upd
			return upd.Apply(fixture), nil
		},
	}

	rec := serve(t, newTripHTTPHandler(svc), user, http.MethodPatch, "/trips/"+fixture.ID.String(), map[string]any{
		"status": "ongoing", "scheduledDate": "2026-07-04",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Status)
	assert.Equal(t, domain.TripStatusOngoing, *got.Status)
	require.NotNil(t, got.ScheduledDate)
	assert.Equal(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), *got.ScheduledDate)

	var resp gen.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.TripStatusOngoing, resp.Status)
	require.NotNil(t, resp.ScheduledDate)
	assert.Equal(t, "2026-07-04", resp.ScheduledDate.String())
}

func TestUpdateTrip_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"participant is not owner", fmt.Errorf("service: %w: only the trip owner can update it", domain.ErrForbidden), http.StatusForbidden},
		{"not visible", domain.ErrNotFound, http.StatusNotFound},
		{"bad status", fmt.Errorf("%w: invalid status \"lost\"", domain.ErrValidation), http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockTripServicer{
				update: func(context.Context, uuid.UUID, uuid.UUID, domain.TripUpdate) (domain.Trip, error) {
					return domain.Trip{}, tc.err
				},
			}

			rec := serve(t, newTripHTTPHandler(svc), uuid.New(), http.MethodPatch, "/trips/"+uuid.New().String(),
				map[string]any{"status": "lost"})

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
