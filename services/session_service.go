package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
	"skillswap/store"
)

// SessionReward is the fixed SkillCoins amount credited to each participant
// when a session completes.
const SessionReward = 10

// SessionService creates sessions against existing matches and handles
// completion plus the reward disbursement.
type SessionService struct {
	Store store.Store
}

// Create schedules a session bound to the given match. Host and guest are
// copied from the match's user_a/user_b at this moment. Topic and
// scheduled_time are stored as given; mode defaults to chat.
func (s *SessionService) Create(ctx context.Context, matchID primitive.ObjectID, topic, scheduledTime *string, mode string) (primitive.ObjectID, error) {
	match, err := s.Store.FindMatchByID(ctx, matchID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if mode == "" {
		mode = models.ModeChat
	}

	session := &models.Session{
		MatchID:       matchID,
		HostID:        match.UserA,
		GuestID:       match.UserB,
		Topic:         topic,
		ScheduledTime: scheduledTime,
		Mode:          mode,
		Status:        models.SessionScheduled,
	}
	return s.Store.InsertSession(ctx, session)
}

// Complete marks the session completed and credits SessionReward SkillCoins
// to host and guest, appending one ledger entry per user. The status write,
// the ledger appends and the balance increments are independent store calls;
// a failure mid-way leaves the earlier writes in place. Completing an
// already-completed session pays out again.
func (s *SessionService) Complete(ctx context.Context, sessionID primitive.ObjectID) (int, error) {
	session, err := s.Store.FindSessionByID(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	if err := s.Store.SetSessionStatus(ctx, sessionID, models.SessionCompleted); err != nil {
		return 0, err
	}

	reason := fmt.Sprintf("Completed session %s", sessionID.Hex())
	for _, uid := range []primitive.ObjectID{session.HostID, session.GuestID} {
		reward := &models.RewardTransaction{UserID: uid, Amount: SessionReward, Reason: reason}
		if _, err := s.Store.InsertReward(ctx, reward); err != nil {
			return 0, err
		}
		if err := s.Store.IncrementSkillCoins(ctx, uid, SessionReward); err != nil {
			return 0, err
		}
	}
	return SessionReward, nil
}
