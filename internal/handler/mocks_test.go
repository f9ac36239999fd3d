package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sidequest/internal/auth"
	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// Hand-written test doubles for the servicer interfaces.
// Set only the method fields your test needs.

type mockAuthServicer struct {
	register func(ctx context.Context, email, password, name string) (domain.User, string, error)
	login    func(ctx context.Context, email, password string) (domain.User, string, error)
}

func (m *mockAuthServicer) Register(ctx context.Context, email, password, name string) (domain.User, string, error) {
	return m.register(ctx, email, password, name)
}
func (m *mockAuthServicer) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	return m.login(ctx, email, password)
}

type mockPreferenceServicer struct {
	save func(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) (domain.Preferences, error)
	get  func(ctx context.Context, userID uuid.UUID) (domain.Preferences, error)
}

func (m *mockPreferenceServicer) Save(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) (domain.Preferences, error) {
	return m.save(ctx, userID, prefs)
}
func (m *mockPreferenceServicer) Get(ctx context.Context, userID uuid.UUID) (domain.Preferences, error) {
	return m.get(ctx, userID)
}

type mockRecommendationServicer struct {
	recommend func(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error)
}

func (m *mockRecommendationServicer) Recommend(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error) {
	return m.recommend(ctx, userID)
}

type mockTripServicer struct {
	generate func(ctx context.Context, userID uuid.UUID, destination string, lat, lng float64) (domain.Trip, error)
	get      func(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	list     func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update   func(ctx context.Context, userID, tripID uuid.UUID, upd domain.TripUpdate) (domain.Trip, error)
}

func (m *mockTripServicer) Generate(ctx context.Context, userID uuid.UUID, destination string, lat, lng float64) (domain.Trip, error) {
	return m.generate(ctx, userID, destination, lat, lng)
}
func (m *mockTripServicer) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	return m.get(ctx, userID, tripID)
}
func (m *mockTripServicer) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, userID, p)
}
func (m *mockTripServicer) Update(ctx context.Context, userID, tripID uuid.UUID, upd domain.TripUpdate) (domain.Trip, error) {
	return m.update(ctx, userID, tripID, upd)
}

type mockParticipantServicer struct {
	invite  func(ctx context.Context, ownerID, tripID uuid.UUID, email string) (domain.Participant, error)
	respond func(ctx context.Context, userID, tripID uuid.UUID, status domain.ParticipantStatus) (domain.Participant, error)
	list    func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Participant, error)
}

func (m *mockParticipantServicer) Invite(ctx context.Context, ownerID, tripID uuid.UUID, email string) (domain.Participant, error) {
	return m.invite(ctx, ownerID, tripID, email)
}
func (m *mockParticipantServicer) Respond(ctx context.Context, userID, tripID uuid.UUID, status domain.ParticipantStatus) (domain.Participant, error) {
	return m.respond(ctx, userID, tripID, status)
}
func (m *mockParticipantServicer) List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.list(ctx, userID, tripID)
}

type mockExportServicer struct {
	export func(ctx context.Context, userID, tripID uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error)
}

func (m *mockExportServicer) Export(ctx context.Context, userID, tripID uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error) {
	return m.export(ctx, userID, tripID, format)
}

// compile-time checks: mocks must satisfy the handler's servicer interfaces.
var (
	_ handler.AuthServicer           = (*mockAuthServicer)(nil)
	_ handler.PreferenceServicer     = (*mockPreferenceServicer)(nil)
	_ handler.RecommendationServicer = (*mockRecommendationServicer)(nil)
	_ handler.TripServicer           = (*mockTripServicer)(nil)
	_ handler.ParticipantServicer    = (*mockParticipantServicer)(nil)
	_ handler.ExportServicer         = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server into the generated chi router the way main.go
// does, minus the authenticator: requests carry their caller via asUser.
func newHTTPHandler(srv *handler.Server) http.Handler {
	return gen.Handler(gen.NewStrictHandler(srv, nil))
}

// asUser attaches an authenticated caller to req.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(auth.WithUserID(req.Context(), userID))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// serve sends a request as caller through h and returns the recorder.
// A nil body sends no body.
func serve(t *testing.T, h http.Handler, caller uuid.UUID, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, jsonBody(t, body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if caller != uuid.Nil {
		req = asUser(req, caller)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func tripFixture(owner uuid.UUID) domain.Trip {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.Trip{
		ID:             uuid.New(),
		OwnerID:        owner,
		Destination:    "Bainbridge Island",
		DestinationLat: 47.6262,
		DestinationLng: -122.5212,
		Itinerary: domain.Itinerary{
			Route: domain.Route{
				StartLat: 47.6062, StartLng: -122.3321,
				EndLat: 47.6262, EndLng: -122.5212,
				Waypoints: []domain.Coordinates{{Lat: 47.6235, Lng: -122.5110}},
			},
			Stops: []domain.Stop{{
				Type: domain.StopFood, Name: "Blackbird Bakery", Address: "210 Winslow Way E",
				Lat: 47.6235, Lng: -122.5110, Duration: 60, Notes: "Try the pastries",
			}},
			TotalDistance: 8.92,
			TotalDuration: 73.37,
			EstimatedCost: domain.Cost{Fuel: 0.76, Food: 25, Total: 25.76},
		},
		EstimatedCost: 25.76,
		Distance:      8.92,
		Duration:      73.37,
		Status:        domain.TripStatusPlanned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func mustRequest(t *testing.T, method, target, raw string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func recordTo(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
