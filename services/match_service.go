package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
	"skillswap/store"
)

// MatchWithOther pairs a match id with the other participant's profile, the
// shape GET /api/matches returns. Other is null when the profile cannot be
// resolved.
type MatchWithOther struct {
	ID    primitive.ObjectID  `json:"id"`
	Other *models.UserProfile `json:"other"`
}

type MatchService struct {
	Store store.Store
}

// ListForUser returns the user's active matches, each enriched with the
// other participant's profile. An unknown user simply has no matches.
func (s *MatchService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]MatchWithOther, error) {
	matches, err := s.Store.ListActiveMatches(ctx, userID)
	if err != nil {
		return nil, err
	}

	enriched := []MatchWithOther{}
	for _, m := range matches {
		other, err := s.Store.FindUserByID(ctx, m.Other(userID))
		if err != nil && err != store.ErrNotFound {
			return nil, err
		}
		enriched = append(enriched, MatchWithOther{ID: m.ID, Other: other})
	}
	return enriched, nil
}
