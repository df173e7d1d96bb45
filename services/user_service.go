package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
	"skillswap/store"
)

// UserService covers the user directory: idempotent creation by email,
// listing, and the skillcoins balance lookup.
type UserService struct {
	Store store.Store
}

// CreateOrGet returns the existing profile for the payload's email, or
// inserts a new one. When the email already exists the rest of the payload
// is discarded, not merged.
func (s *UserService) CreateOrGet(ctx context.Context, payload models.UserCreate) (*models.UserProfile, error) {
	existing, err := s.Store.FindUserByEmail(ctx, payload.Email)
	if err == nil {
		return existing, nil
	}
	if err != store.ErrNotFound {
		return nil, err
	}

	user := payload.Profile()
	id, err := s.Store.InsertUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.Store.FindUserByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.UserProfile, error) {
	return s.Store.ListUsers(ctx)
}

// Balance returns the user's cached skillcoins value.
func (s *UserService) Balance(ctx context.Context, userID primitive.ObjectID) (int, error) {
	user, err := s.Store.FindUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.SkillCoins, nil
}
