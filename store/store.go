package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
)

// ErrNotFound is returned when a lookup resolves to no document.
var ErrNotFound = errors.New("not found")

// Store is the persistence boundary for the five SkillSwap collections.
// A single implementation instance is created in main and handed to every
// service; no package keeps its own ambient handle.
type Store interface {
	// Users
	InsertUser(ctx context.Context, u *models.UserProfile) (primitive.ObjectID, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error)
	FindUserByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	ListUsersExcept(ctx context.Context, id primitive.ObjectID) ([]models.UserProfile, error)
	IncrementSkillCoins(ctx context.Context, id primitive.ObjectID, amount int) error

	// Swipes
	InsertSwipe(ctx context.Context, s *models.Swipe) (primitive.ObjectID, error)
	FindLike(ctx context.Context, from, to primitive.ObjectID) (*models.Swipe, error)

	// Matches
	InsertMatch(ctx context.Context, m *models.Match) (primitive.ObjectID, error)
	FindMatchByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error)
	FindMatchByPair(ctx context.Context, a, b primitive.ObjectID) (*models.Match, error)
	ListActiveMatches(ctx context.Context, userID primitive.ObjectID) ([]models.Match, error)

	// Sessions
	InsertSession(ctx context.Context, s *models.Session) (primitive.ObjectID, error)
	FindSessionByID(ctx context.Context, id primitive.ObjectID) (*models.Session, error)
	SetSessionStatus(ctx context.Context, id primitive.ObjectID, status string) error

	// Rewards
	InsertReward(ctx context.Context, r *models.RewardTransaction) (primitive.ObjectID, error)

	// Diagnostics, used only by the /test endpoint.
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}
