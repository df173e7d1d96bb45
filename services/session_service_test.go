package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
	"skillswap/services"
	"skillswap/store"
)

// matchPair seeds two users with an active match and returns their ids plus
// the match id.
func matchPair(t *testing.T, st store.Store) (a, b, matchID primitive.ObjectID) {
	t.Helper()
	ctx := context.Background()

	a = seedUser(t, st, "A", "a@example.com", nil, nil)
	b = seedUser(t, st, "B", "b@example.com", nil, nil)

	userA, userB := models.NormalizePair(a, b)
	id, err := st.InsertMatch(ctx, &models.Match{UserA: userA, UserB: userB, Status: models.MatchActive})
	require.NoError(t, err)
	return a, b, id
}

func TestCreateSessionSnapshotsParticipants(t *testing.T) {
	st := store.NewMemory()
	svc := &services.SessionService{Store: st}
	ctx := context.Background()

	a, b, matchID := matchPair(t, st)

	topic := "Guitar basics"
	when := "2026-09-01T18:00:00Z"
	id, err := svc.Create(ctx, matchID, &topic, &when, models.ModeVideo)
	require.NoError(t, err)

	session, err := st.FindSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, matchID, session.MatchID)
	userA, userB := models.NormalizePair(a, b)
	assert.Equal(t, userA, session.HostID)
	assert.Equal(t, userB, session.GuestID)
	assert.Equal(t, models.ModeVideo, session.Mode)
	assert.Equal(t, models.SessionScheduled, session.Status)
	require.NotNil(t, session.Topic)
	assert.Equal(t, topic, *session.Topic)
}

func TestCreateSessionDefaultsModeToChat(t *testing.T) {
	st := store.NewMemory()
	svc := &services.SessionService{Store: st}
	ctx := context.Background()

	_, _, matchID := matchPair(t, st)

	id, err := svc.Create(ctx, matchID, nil, nil, "")
	require.NoError(t, err)

	session, err := st.FindSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.ModeChat, session.Mode)
}

func TestCreateSessionUnknownMatch(t *testing.T) {
	st := store.NewMemory()
	svc := &services.SessionService{Store: st}

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), nil, nil, "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCompleteSessionRewardsBothParticipants(t *testing.T) {
	st := store.NewMemory()
	sessions := &services.SessionService{Store: st}
	users := &services.UserService{Store: st}
	ctx := context.Background()

	a, b, matchID := matchPair(t, st)

	sessionID, err := sessions.Create(ctx, matchID, nil, nil, "")
	require.NoError(t, err)

	awarded, err := sessions.Complete(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, services.SessionReward, awarded)

	session, err := st.FindSessionByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, session.Status)

	for _, uid := range []primitive.ObjectID{a, b} {
		balance, err := users.Balance(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, services.SessionReward, balance)

		ledger := st.RewardsFor(uid)
		require.Len(t, ledger, 1)
		assert.Equal(t, services.SessionReward, ledger[0].Amount)
		assert.Contains(t, ledger[0].Reason, sessionID.Hex())
	}
}

func TestCompleteSessionIsNotIdempotent(t *testing.T) {
	// Completing twice pays out twice; there is no completed-already guard.
	st := store.NewMemory()
	sessions := &services.SessionService{Store: st}
	users := &services.UserService{Store: st}
	ctx := context.Background()

	a, _, matchID := matchPair(t, st)

	sessionID, err := sessions.Create(ctx, matchID, nil, nil, "")
	require.NoError(t, err)

	_, err = sessions.Complete(ctx, sessionID)
	require.NoError(t, err)
	_, err = sessions.Complete(ctx, sessionID)
	require.NoError(t, err)

	balance, err := users.Balance(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 2*services.SessionReward, balance)
	assert.Len(t, st.RewardsFor(a), 2)
}

func TestBalanceAccumulatesAcrossSessions(t *testing.T) {
	st := store.NewMemory()
	sessions := &services.SessionService{Store: st}
	users := &services.UserService{Store: st}
	ctx := context.Background()

	a, _, matchID := matchPair(t, st)

	const n = 3
	for i := 0; i < n; i++ {
		sessionID, err := sessions.Create(ctx, matchID, nil, nil, "")
		require.NoError(t, err)
		_, err = sessions.Complete(ctx, sessionID)
		require.NoError(t, err)
	}

	balance, err := users.Balance(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, n*services.SessionReward, balance)
}

func TestCompleteUnknownSession(t *testing.T) {
	st := store.NewMemory()
	svc := &services.SessionService{Store: st}

	_, err := svc.Complete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, store.ErrNotFound)
}
