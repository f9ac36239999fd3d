// Package handler implements the HTTP handlers for the Side Quest API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (auth.go, trip.go, etc.) but all share
// the same Server struct so they can access its dependencies.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config ../../oapi-codegen.yaml ../../spec/openapi.yaml

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/auth"
	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// AuthServicer defines the account operations the auth handlers depend on.
// Defining the interfaces here (in the consumer package) lets handler tests
// inject mocks without touching the database or service layer.
type AuthServicer interface {
	Register(ctx context.Context, email, password, name string) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
}

// PreferenceServicer defines the onboarding operations.
type PreferenceServicer interface {
	Save(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) (domain.Preferences, error)
	Get(ctx context.Context, userID uuid.UUID) (domain.Preferences, error)
}

// RecommendationServicer ranks destinations for a user.
type RecommendationServicer interface {
	Recommend(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error)
}

// TripServicer defines the trip operations.
type TripServicer interface {
	Generate(ctx context.Context, userID uuid.UUID, destination string, lat, lng float64) (domain.Trip, error)
	Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, userID, tripID uuid.UUID, upd domain.TripUpdate) (domain.Trip, error)
}

// ParticipantServicer defines the invitation operations.
type ParticipantServicer interface {
	Invite(ctx context.Context, ownerID, tripID uuid.UUID, email string) (domain.Participant, error)
	Respond(ctx context.Context, userID, tripID uuid.UUID, status domain.ParticipantStatus) (domain.Participant, error)
	List(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Participant, error)
}

// ExportServicer renders a trip as a downloadable document.
type ExportServicer interface {
	Export(ctx context.Context, userID, tripID uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions.
type Server struct {
	auth         AuthServicer
	prefs        PreferenceServicer
	recs         RecommendationServicer
	trips        TripServicer
	participants ParticipantServicer
	export       ExportServicer
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// Tests may pass nil for services the exercised endpoints never reach.
func NewServer(
	authSvc AuthServicer,
	prefs PreferenceServicer,
	recs RecommendationServicer,
	trips TripServicer,
	participants ParticipantServicer,
	export ExportServicer,
) *Server {
	return &Server{
		auth:         authSvc,
		prefs:        prefs,
		recs:         recs,
		trips:        trips,
		participants: participants,
		export:       export,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil, nil)
}

// callerID returns the authenticated user for the request. The authenticator
// middleware guarantees one on every non-public route, so a miss means the
// route was wired without it.
func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, fmt.Errorf("handler: %w: no authenticated user", domain.ErrUnauthorized)
	}
	return id, nil
}
