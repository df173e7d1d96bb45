package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
)

// Memory is an in-process Store used by the test suite and for running the
// server without a MongoDB instance. Slices keep insertion order, matching
// the natural-order scans the Mongo implementation performs.
type Memory struct {
	mu       sync.Mutex
	users    []models.UserProfile
	swipes   []models.Swipe
	matches  []models.Match
	sessions []models.Session
	rewards  []models.RewardTransaction
}

func NewMemory() *Memory {
	return &Memory{}
}

// ---------- Users ----------

func (m *Memory) InsertUser(ctx context.Context, u *models.UserProfile) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u.ID = primitive.NewObjectID()
	m.users = append(m.users, *u)
	return u.ID, nil
}

func (m *Memory) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) FindUserByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.UserProfile, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *Memory) ListUsersExcept(ctx context.Context, id primitive.ObjectID) ([]models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.UserProfile{}
	for _, u := range m.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *Memory) IncrementSkillCoins(ctx context.Context, id primitive.ObjectID, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].SkillCoins += amount
			return nil
		}
	}
	return ErrNotFound
}

// ---------- Swipes ----------

func (m *Memory) InsertSwipe(ctx context.Context, s *models.Swipe) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = primitive.NewObjectID()
	m.swipes = append(m.swipes, *s)
	return s.ID, nil
}

func (m *Memory) FindLike(ctx context.Context, from, to primitive.ObjectID) (*models.Swipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.swipes {
		s := m.swipes[i]
		if s.UserID == from && s.TargetID == to && s.Action == models.SwipeLike {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// ---------- Matches ----------

func (m *Memory) InsertMatch(ctx context.Context, match *models.Match) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	match.ID = primitive.NewObjectID()
	m.matches = append(m.matches, *match)
	return match.ID, nil
}

func (m *Memory) FindMatchByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.matches {
		if m.matches[i].ID == id {
			match := m.matches[i]
			return &match, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) FindMatchByPair(ctx context.Context, a, b primitive.ObjectID) (*models.Match, error) {
	lo, hi := models.NormalizePair(a, b)

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.matches {
		if m.matches[i].UserA == lo && m.matches[i].UserB == hi {
			match := m.matches[i]
			return &match, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListActiveMatches(ctx context.Context, userID primitive.ObjectID) ([]models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Match{}
	for _, match := range m.matches {
		if match.Status != models.MatchActive {
			continue
		}
		if match.UserA == userID || match.UserB == userID {
			out = append(out, match)
		}
	}
	return out, nil
}

// ---------- Sessions ----------

func (m *Memory) InsertSession(ctx context.Context, s *models.Session) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = primitive.NewObjectID()
	m.sessions = append(m.sessions, *s)
	return s.ID, nil
}

func (m *Memory) FindSessionByID(ctx context.Context, id primitive.ObjectID) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.sessions {
		if m.sessions[i].ID == id {
			s := m.sessions[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SetSessionStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.sessions {
		if m.sessions[i].ID == id {
			m.sessions[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

// ---------- Rewards ----------

func (m *Memory) InsertReward(ctx context.Context, r *models.RewardTransaction) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r.ID = primitive.NewObjectID()
	m.rewards = append(m.rewards, *r)
	return r.ID, nil
}

// RewardsFor returns the ledger entries credited to a user, oldest first.
// Not part of the Store interface; the test suite uses it to verify the
// ledger alongside the cached balance.
func (m *Memory) RewardsFor(userID primitive.ObjectID) []models.RewardTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.RewardTransaction{}
	for _, r := range m.rewards {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// ---------- Diagnostics ----------

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) CollectionNames(ctx context.Context) ([]string, error) {
	return []string{"userprofile", "swipe", "match", "session", "rewardtransaction"}, nil
}
