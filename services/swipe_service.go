package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
	"skillswap/store"
)

// ErrInvalidAction is returned for a swipe action other than like or pass.
var ErrInvalidAction = errors.New("invalid action")

const (
	SwipeRecorded = "recorded"
	SwipeMatched  = "matched"
)

// SwipeResult is the outcome of a swipe. MatchID is the hex id of the new
// or already-existing match and is set only when Status is "matched".
type SwipeResult struct {
	Status  string `json:"status"`
	MatchID string `json:"match_id,omitempty"`
}

// SwipeService records swipe events and turns mutual likes into matches.
type SwipeService struct {
	Store store.Store
}

// Swipe persists the swipe event unconditionally, then checks for a mutual
// like. The mutual check inspects swipe history only, so a surviving
// opposing like from an earlier round can re-match the pair; that mirrors
// swipes never being deleted or superseded.
//
// The event insert, the reverse-like lookup and the match get-or-create are
// separate store calls with no transaction around them. Two concurrent
// likes forming the same pair can both pass the existence check.
func (s *SwipeService) Swipe(ctx context.Context, userID, targetID primitive.ObjectID, action string) (*SwipeResult, error) {
	if action != models.SwipeLike && action != models.SwipePass {
		return nil, ErrInvalidAction
	}

	swipe := &models.Swipe{UserID: userID, TargetID: targetID, Action: action}
	if _, err := s.Store.InsertSwipe(ctx, swipe); err != nil {
		return nil, err
	}

	if action != models.SwipeLike {
		return &SwipeResult{Status: SwipeRecorded}, nil
	}

	_, err := s.Store.FindLike(ctx, targetID, userID)
	if err == store.ErrNotFound {
		return &SwipeResult{Status: SwipeRecorded}, nil
	}
	if err != nil {
		return nil, err
	}

	// Mutual like: reuse the existing match for this pair if there is one.
	existing, err := s.Store.FindMatchByPair(ctx, userID, targetID)
	if err == nil {
		return &SwipeResult{Status: SwipeMatched, MatchID: existing.ID.Hex()}, nil
	}
	if err != store.ErrNotFound {
		return nil, err
	}

	userA, userB := models.NormalizePair(userID, targetID)
	match := &models.Match{UserA: userA, UserB: userB, Status: models.MatchActive}
	matchID, err := s.Store.InsertMatch(ctx, match)
	if err != nil {
		return nil, err
	}
	return &SwipeResult{Status: SwipeMatched, MatchID: matchID.Hex()}, nil
}
