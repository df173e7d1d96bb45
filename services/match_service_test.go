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

func TestListForUserReturnsOtherParticipant(t *testing.T) {
	st := store.NewMemory()
	svc := &services.MatchService{Store: st}
	ctx := context.Background()

	a, b, matchID := matchPair(t, st)

	forA, err := svc.ListForUser(ctx, a)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, matchID, forA[0].ID)
	require.NotNil(t, forA[0].Other)
	assert.Equal(t, b, forA[0].Other.ID)

	forB, err := svc.ListForUser(ctx, b)
	require.NoError(t, err)
	require.Len(t, forB, 1)
	assert.Equal(t, a, forB[0].Other.ID)
}

func TestListForUserSkipsNonActiveMatches(t *testing.T) {
	st := store.NewMemory()
	svc := &services.MatchService{Store: st}
	ctx := context.Background()

	a := seedUser(t, st, "A", "a@example.com", nil, nil)
	c := seedUser(t, st, "C", "c@example.com", nil, nil)

	userA, userB := models.NormalizePair(a, c)
	_, err := st.InsertMatch(ctx, &models.Match{UserA: userA, UserB: userB, Status: models.MatchBlocked})
	require.NoError(t, err)

	matches, err := svc.ListForUser(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestListForUserUnknownUserIsEmpty(t *testing.T) {
	st := store.NewMemory()
	svc := &services.MatchService{Store: st}

	matches, err := svc.ListForUser(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, matches)
}
