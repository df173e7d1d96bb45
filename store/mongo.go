package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillswap/models"
)

// Mongo implements Store on top of a MongoDB database. Collection names
// follow the original deployment: userprofile, swipe, match, session,
// rewardtransaction.
type Mongo struct {
	db       *mongo.Database
	users    *mongo.Collection
	swipes   *mongo.Collection
	matches  *mongo.Collection
	sessions *mongo.Collection
	rewards  *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		db:       db,
		users:    db.Collection("userprofile"),
		swipes:   db.Collection("swipe"),
		matches:  db.Collection("match"),
		sessions: db.Collection("session"),
		rewards:  db.Collection("rewardtransaction"),
	}
}

// ---------- Users ----------

func (m *Mongo) InsertUser(ctx context.Context, u *models.UserProfile) (primitive.ObjectID, error) {
	res, err := m.users.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (m *Mongo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.UserProfile, error) {
	var u models.UserProfile
	err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var u models.UserProfile
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (m *Mongo) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return m.findUsers(ctx, bson.M{})
}

func (m *Mongo) ListUsersExcept(ctx context.Context, id primitive.ObjectID) ([]models.UserProfile, error) {
	return m.findUsers(ctx, bson.M{"_id": bson.M{"$ne": id}})
}

func (m *Mongo) findUsers(ctx context.Context, filter bson.M) ([]models.UserProfile, error) {
	cursor, err := m.users.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.UserProfile{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (m *Mongo) IncrementSkillCoins(ctx context.Context, id primitive.ObjectID, amount int) error {
	res, err := m.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"skillcoins": amount}})
	if err != nil {
		return fmt.Errorf("increment skillcoins: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- Swipes ----------

func (m *Mongo) InsertSwipe(ctx context.Context, s *models.Swipe) (primitive.ObjectID, error) {
	res, err := m.swipes.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert swipe: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (m *Mongo) FindLike(ctx context.Context, from, to primitive.ObjectID) (*models.Swipe, error) {
	var s models.Swipe
	err := m.swipes.FindOne(ctx, bson.M{
		"user_id":   from,
		"target_id": to,
		"action":    models.SwipeLike,
	}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find like: %w", err)
	}
	return &s, nil
}

// ---------- Matches ----------

func (m *Mongo) InsertMatch(ctx context.Context, match *models.Match) (primitive.ObjectID, error) {
	res, err := m.matches.InsertOne(ctx, match)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert match: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (m *Mongo) FindMatchByID(ctx context.Context, id primitive.ObjectID) (*models.Match, error) {
	var match models.Match
	err := m.matches.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}
	return &match, nil
}

func (m *Mongo) FindMatchByPair(ctx context.Context, a, b primitive.ObjectID) (*models.Match, error) {
	lo, hi := models.NormalizePair(a, b)
	var match models.Match
	err := m.matches.FindOne(ctx, bson.M{"user_a": lo, "user_b": hi}).Decode(&match)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find match by pair: %w", err)
	}
	return &match, nil
}

func (m *Mongo) ListActiveMatches(ctx context.Context, userID primitive.ObjectID) ([]models.Match, error) {
	cursor, err := m.matches.Find(ctx, bson.M{
		"$or":    bson.A{bson.M{"user_a": userID}, bson.M{"user_b": userID}},
		"status": models.MatchActive,
	})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer cursor.Close(ctx)

	matches := []models.Match{}
	if err := cursor.All(ctx, &matches); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}
	return matches, nil
}

// ---------- Sessions ----------

func (m *Mongo) InsertSession(ctx context.Context, s *models.Session) (primitive.ObjectID, error) {
	res, err := m.sessions.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert session: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (m *Mongo) FindSessionByID(ctx context.Context, id primitive.ObjectID) (*models.Session, error) {
	var s models.Session
	err := m.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &s, nil
}

func (m *Mongo) SetSessionStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := m.sessions.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("set session status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- Rewards ----------

func (m *Mongo) InsertReward(ctx context.Context, r *models.RewardTransaction) (primitive.ObjectID, error) {
	res, err := m.rewards.InsertOne(ctx, r)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert reward: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// ---------- Diagnostics ----------

func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, nil)
}

func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}
