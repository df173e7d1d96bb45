package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/routes"
	"skillswap/services"
	"skillswap/store"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	deps := &routes.Deps{
		Store:           st,
		DBName:          "skillswap",
		Users:           &services.UserService{Store: st},
		Recommendations: &services.RecommendationService{Store: st},
		Swipes:          &services.SwipeService{Store: st},
		Matches:         &services.MatchService{Store: st},
		Sessions:        &services.SessionService{Store: st},
	}
	return routes.SetupRouter(deps)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	decoded := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

func createUser(t *testing.T, router *gin.Engine, name, email string, teach, learn []string) string {
	t.Helper()

	w, body := doJSON(t, router, http.MethodPost, "/api/users", map[string]any{
		"name":         name,
		"email":        email,
		"teach_skills": teach,
		"learn_skills": learn,
	})
	require.Equal(t, http.StatusOK, w.Code)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestRootBanner(t *testing.T) {
	router := newRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SkillSwap Backend Running", body["message"])
}

func TestDiagnosticsEndpoint(t *testing.T) {
	router := newRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "✅ Connected & Working", body["database"])
	assert.Equal(t, "Connected", body["connection_status"])
}

func TestCreateUserIdempotentOverHTTP(t *testing.T) {
	router := newRouter(t)

	first := createUser(t, router, "Alice", "alice@example.com", []string{"Python"}, []string{"Guitar"})
	second := createUser(t, router, "Imposter", "alice@example.com", nil, nil)
	assert.Equal(t, first, second)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0]["name"])
}

func TestCreateUserMissingFields(t *testing.T) {
	router := newRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/users", map[string]any{"name": "NoEmail"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationsOverHTTP(t *testing.T) {
	router := newRouter(t)

	a := createUser(t, router, "A", "a@example.com", []string{"Python"}, []string{"Guitar"})
	b := createUser(t, router, "B", "b@example.com", []string{"Guitar"}, []string{"Python"})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations?user_id="+a, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var recs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, b, recs[0]["id"])
	assert.Equal(t, float64(8), recs[0]["score"])
}

func TestRecommendationsBadInputs(t *testing.T) {
	router := newRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/recommendations?user_id=not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/recommendations?user_id=ffffffffffffffffffffffff", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwipeFlowOverHTTP(t *testing.T) {
	router := newRouter(t)

	a := createUser(t, router, "A", "a@example.com", nil, nil)
	b := createUser(t, router, "B", "b@example.com", nil, nil)

	w, body := doJSON(t, router, http.MethodPost, "/api/swipe", map[string]any{
		"user_id": a, "target_id": b, "action": "like",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "recorded", body["status"])

	w, body = doJSON(t, router, http.MethodPost, "/api/swipe", map[string]any{
		"user_id": b, "target_id": a, "action": "like",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "matched", body["status"])
	matchID, _ := body["match_id"].(string)
	require.NotEmpty(t, matchID)

	// Matches list shows the other participant for each side.
	req := httptest.NewRequest(http.MethodGet, "/api/matches?user_id="+a, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, matchID, matches[0]["id"])
	other, _ := matches[0]["other"].(map[string]any)
	require.NotNil(t, other)
	assert.Equal(t, b, other["id"])
}

func TestSwipeBadInputs(t *testing.T) {
	router := newRouter(t)

	a := createUser(t, router, "A", "a@example.com", nil, nil)
	b := createUser(t, router, "B", "b@example.com", nil, nil)

	w, _ := doJSON(t, router, http.MethodPost, "/api/swipe", map[string]any{
		"user_id": a, "target_id": b, "action": "superlike",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/swipe", map[string]any{
		"user_id": "garbage", "target_id": b, "action": "like",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	router := newRouter(t)

	a := createUser(t, router, "A", "a@example.com", nil, nil)
	b := createUser(t, router, "B", "b@example.com", nil, nil)

	_, _ = doJSON(t, router, http.MethodPost, "/api/swipe", map[string]any{
		"user_id": a, "target_id": b, "action": "like",
	})
	_, body := doJSON(t, router, http.MethodPost, "/api/swipe", map[string]any{
		"user_id": b, "target_id": a, "action": "like",
	})
	matchID, _ := body["match_id"].(string)
	require.NotEmpty(t, matchID)

	w, body := doJSON(t, router, http.MethodPost, "/api/sessions", map[string]any{
		"match_id": matchID, "topic": "Guitar basics", "mode": "video",
	})
	require.Equal(t, http.StatusOK, w.Code)
	sessionID, _ := body["id"].(string)
	require.NotEmpty(t, sessionID)

	w, body = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/sessions/%s/complete", sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, float64(10), body["skillcoins_awarded"])

	w, body = doJSON(t, router, http.MethodGet, "/api/skillcoins?user_id="+a, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(10), body["balance"])
}

func TestSessionBadInputs(t *testing.T) {
	router := newRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/sessions", map[string]any{
		"match_id": "nope", "mode": "chat",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/sessions", map[string]any{
		"match_id": "ffffffffffffffffffffffff", "mode": "chat",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/sessions/not-an-id/complete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/sessions/ffffffffffffffffffffffff/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillCoinsBadInputs(t *testing.T) {
	router := newRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/skillcoins?user_id=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/skillcoins?user_id=ffffffffffffffffffffffff", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnknownAPIRoute(t *testing.T) {
	router := newRouter(t)

	w, body := doJSON(t, router, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", body["error"])
}
