package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/repo"
	"github.com/pkordes/sidequest/testutil"
)

func TestParticipantRepo_Create(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	owner := createUser(t, tx, "owner")
	guest := createUser(t, tx, "guest")
	trip, err := repo.NewTripRepo(tx).Create(ctx, tripFixture(owner.ID))
	require.NoError(t, err)

	got, err := repo.NewParticipantRepo(tx).Create(ctx, trip.ID, guest.ID)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, guest.ID, got.UserID)
	assert.Equal(t, domain.ParticipantInvited, got.Status)
	assert.Equal(t, guest.Email, got.Email)
	assert.Equal(t, "guest", got.Name)
}

func TestParticipantRepo_Create_Duplicate(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	owner := createUser(t, tx, "owner")
	guest := createUser(t, tx, "guest")
	trip, err := repo.NewTripRepo(tx).Create(ctx, tripFixture(owner.ID))
	require.NoError(t, err)
	r := repo.NewParticipantRepo(tx)

	_, err = r.Create(ctx, trip.ID, guest.ID)
	require.NoError(t, err)

	// The failed insert aborts the surrounding transaction, so nothing runs after it.
	_, err = r.Create(ctx, trip.ID, guest.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestParticipantRepo_UpdateStatusAndList(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	owner := createUser(t, tx, "owner")
	ann := createUser(t, tx, "ann")
	ben := createUser(t, tx, "ben")
	trip, err := repo.NewTripRepo(tx).Create(ctx, tripFixture(owner.ID))
	require.NoError(t, err)
	r := repo.NewParticipantRepo(tx)

	_, err = r.Create(ctx, trip.ID, ann.ID)
	require.NoError(t, err)
	_, err = r.Create(ctx, trip.ID, ben.ID)
	require.NoError(t, err)

	updated, err := r.UpdateStatus(ctx, trip.ID, ann.ID, domain.ParticipantAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantAccepted, updated.Status)
	assert.Equal(t, ann.Email, updated.Email)

	list, err := r.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	byUser := map[uuid.UUID]domain.ParticipantStatus{}
	for _, p := range list {
		byUser[p.UserID] = p.Status
	}
	assert.Equal(t, domain.ParticipantAccepted, byUser[ann.ID])
	assert.Equal(t, domain.ParticipantInvited, byUser[ben.ID])
}

func TestParticipantRepo_UpdateStatus_NotInvited(t *testing.T) {
	tx := testutil.NewTx(t)
	ctx := context.Background()
	owner := createUser(t, tx, "owner")
	trip, err := repo.NewTripRepo(tx).Create(ctx, tripFixture(owner.ID))
	require.NoError(t, err)

	_, err = repo.NewParticipantRepo(tx).UpdateStatus(ctx, trip.ID, uuid.New(), domain.ParticipantDeclined)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepo_ListByTrip_Empty(t *testing.T) {
	tx := testutil.NewTx(t)

	got, err := repo.NewParticipantRepo(tx).ListByTrip(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
