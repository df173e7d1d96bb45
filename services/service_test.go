package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
	"skillswap/store"
)

// seedUser inserts a profile with the given skills and returns its id.
func seedUser(t *testing.T, st store.Store, name, email string, teach, learn []string) primitive.ObjectID {
	t.Helper()

	id, err := st.InsertUser(context.Background(), &models.UserProfile{
		Name:        name,
		Email:       email,
		TeachSkills: teach,
		LearnSkills: learn,
	})
	require.NoError(t, err)
	return id
}
