package services

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillswap/models"
	"skillswap/store"
)

// DefaultRecommendationLimit caps the ranked list when the request does not
// ask for a specific size.
const DefaultRecommendationLimit = 20

// Recommendation is a candidate profile annotated with its match score.
type Recommendation struct {
	models.UserProfile
	Score int `json:"score"`
}

// RecommendationService ranks every other user by skill-overlap heuristic.
// The scan is O(users × skills) with no index or precomputation, which is
// fine at the scale this system targets.
type RecommendationService struct {
	Store store.Store
}

// Recommend scores all candidates for the given user and returns the top
// `limit`, highest score first. Candidates scoring zero are dropped, not
// returned. Ties keep the store's fetch order (stable sort).
func (s *RecommendationService) Recommend(ctx context.Context, userID primitive.ObjectID, limit int) ([]Recommendation, error) {
	me, err := s.Store.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.Store.ListUsersExcept(ctx, userID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	myTeach := skillSet(me.TeachSkills)
	myLearn := skillSet(me.LearnSkills)

	scored := []Recommendation{}
	for _, c := range candidates {
		score := matchScore(myTeach, myLearn, skillSet(c.TeachSkills), skillSet(c.LearnSkills))
		if score > 0 {
			scored = append(scored, Recommendation{UserProfile: c, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// matchScore weighs complementary skills (I teach what you learn, and the
// reverse) at 3 points each, plus 1 point per shared skill overall.
func matchScore(myTeach, myLearn, theirTeach, theirLearn map[string]struct{}) int {
	score := 0
	score += intersectionSize(myTeach, theirLearn) * 3
	score += intersectionSize(theirTeach, myLearn) * 3
	score += intersectionSize(union(myTeach, myLearn), union(theirTeach, theirLearn))
	return score
}

// skillSet lower-cases and dedupes a skill list; all comparisons are
// case-insensitive.
func skillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

func intersectionSize(a, b map[string]struct{}) int {
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func union(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}
