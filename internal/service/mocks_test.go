package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/notify"
	"github.com/pkordes/sidequest/internal/repo"
	"github.com/pkordes/sidequest/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs. Calling an unset one panics, which fails the test
// loudly when a service touches a collaborator it should not.

type mockTripRepo struct {
	create      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	findForUser func(ctx context.Context, tripID, userID uuid.UUID) (domain.Trip, error)
	listForUser func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) FindForUser(ctx context.Context, tripID, userID uuid.UUID) (domain.Trip, error) {
	return m.findForUser(ctx, tripID, userID)
}
func (m *mockTripRepo) ListForUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listForUser(ctx, userID, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}

type mockParticipantRepo struct {
	create       func(ctx context.Context, tripID, userID uuid.UUID) (domain.Participant, error)
	updateStatus func(ctx context.Context, tripID, userID uuid.UUID, status domain.ParticipantStatus) (domain.Participant, error)
	listByTrip   func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

func (m *mockParticipantRepo) Create(ctx context.Context, tripID, userID uuid.UUID) (domain.Participant, error) {
	return m.create(ctx, tripID, userID)
}
func (m *mockParticipantRepo) UpdateStatus(ctx context.Context, tripID, userID uuid.UUID, status domain.ParticipantStatus) (domain.Participant, error) {
	return m.updateStatus(ctx, tripID, userID, status)
}
func (m *mockParticipantRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTrip(ctx, tripID)
}

type mockPreferenceRepo struct {
	get    func(ctx context.Context, userID uuid.UUID) (domain.Preferences, error)
	upsert func(ctx context.Context, p domain.Preferences) (domain.Preferences, error)
}

func (m *mockPreferenceRepo) Get(ctx context.Context, userID uuid.UUID) (domain.Preferences, error) {
	return m.get(ctx, userID)
}
func (m *mockPreferenceRepo) Upsert(ctx context.Context, p domain.Preferences) (domain.Preferences, error) {
	return m.upsert(ctx, p)
}

type mockUserRepo struct {
	create     func(ctx context.Context, u domain.User) (domain.User, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}

type mockTokenIssuer struct {
	issue func(userID uuid.UUID) (string, error)
}

func (m *mockTokenIssuer) Issue(userID uuid.UUID) (string, error) { return m.issue(userID) }

// recordingNotifier remembers every event and returns err.
type recordingNotifier struct {
	events []notify.InviteEvent
	err    error
}

func (n *recordingNotifier) Invited(_ context.Context, ev notify.InviteEvent) error {
	n.events = append(n.events, ev)
	return n.err
}

// compile-time checks: mocks must satisfy the interfaces they stand in for.
var (
	_ repo.TripRepo        = (*mockTripRepo)(nil)
	_ repo.ParticipantRepo = (*mockParticipantRepo)(nil)
	_ repo.PreferenceRepo  = (*mockPreferenceRepo)(nil)
	_ repo.UserRepo        = (*mockUserRepo)(nil)
	_ service.TokenIssuer  = (*mockTokenIssuer)(nil)
	_ notify.Notifier      = (*recordingNotifier)(nil)
)

// ---- shared fixtures -------------------------------------------------------

func validPrefs() domain.Preferences {
	return domain.Preferences{
		TripLength:       domain.TripLengthShort,
		DriverStatus:     domain.DriverStatusDriver,
		HasCar:           true,
		CarType:          domain.CarTypeEV,
		FoodPreference:   domain.FoodPreferenceAlways,
		MealType:         domain.MealTypeMeal,
		EatLocation:      domain.EatLocationStop,
		ScenicPreference: 5,
		NatureLover:      true,
		Sightseeing:      true,
	}
}

func prefsRepoReturning(p domain.Preferences, err error) *mockPreferenceRepo {
	return &mockPreferenceRepo{
		get: func(context.Context, uuid.UUID) (domain.Preferences, error) { return p, err },
	}
}
