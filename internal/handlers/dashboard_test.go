package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carbonq-be/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	queries []models.Query
	err     error

	insertedPlatform string
	insertedCarbon   float64
	insertedAt       time.Time
}

func (f *fakeStore) FindAll(ctx context.Context, userID string) ([]models.Query, error) {
	return f.queries, f.err
}

func (f *fakeStore) FindSince(ctx context.Context, userID string, since time.Time) ([]models.Query, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Query, 0)
	for _, q := range f.queries {
		if !q.Timestamp.Before(since) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeStore) Insert(ctx context.Context, userID, platformKey string, carbonGrams float64, timestamp time.Time) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.insertedPlatform = platformKey
	f.insertedCarbon = carbonGrams
	f.insertedAt = timestamp
	return primitive.NewObjectID().Hex(), nil
}

func newTestRouter(store QueryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(store)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", primitive.NewObjectID().Hex())
	})

	dashboard := r.Group("/api/dashboard")
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/platforms", h.GetPlatforms)
		dashboard.GET("/recent", h.GetRecent)
		dashboard.GET("/weekly", h.GetWeekly)
		dashboard.GET("/trend", h.GetTrend)
		dashboard.POST("/query", h.SubmitQuery)
	}
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func nQueries(n int, platform string, carbon float64) []models.Query {
	now := time.Now().UTC()
	queries := make([]models.Query, n)
	for i := range queries {
		queries[i] = models.Query{
			ID:          primitive.NewObjectID(),
			Platform:    platform,
			CarbonGrams: carbon,
			Timestamp:   now.Add(-time.Duration(i) * time.Minute),
		}
	}
	return queries
}

func TestGetStatsEmpty(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := do(r, http.MethodGet, "/api/dashboard/stats", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.TotalQueries)
	assert.Zero(t, resp.TotalCarbon)
	assert.Zero(t, resp.AvgCarbon)
	assert.Empty(t, resp.Platforms)
}

func TestGetStatsAggregates(t *testing.T) {
	store := &fakeStore{queries: nQueries(3, "chatgpt", 4.25)}
	r := newTestRouter(store)

	w := do(r, http.MethodGet, "/api/dashboard/stats", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalQueries)
	assert.Equal(t, 12.75, resp.TotalCarbon)
	require.Len(t, resp.Platforms, 1)
	assert.Equal(t, "chatgpt", resp.Platforms[0].Key)
	assert.Equal(t, 100.0, resp.Platforms[0].Percentage)
}

func TestGetStatsStoreError(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("connection reset")})

	w := do(r, http.MethodGet, "/api/dashboard/stats", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetPlatformsSorted(t *testing.T) {
	queries := append(nQueries(1, "claude", 3.5), nQueries(2, "gemini", 1.5)...)
	r := newTestRouter(&fakeStore{queries: queries})

	w := do(r, http.MethodGet, "/api/dashboard/platforms", "")

	require.Equal(t, http.StatusOK, w.Code)

	var platforms []models.PlatformStat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &platforms))
	require.Len(t, platforms, 2)
	assert.Equal(t, "gemini", platforms[0].Key)
	assert.Equal(t, "claude", platforms[1].Key)
}

func TestGetRecentLimits(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		available int
		wantCode  int
		wantCount int
	}{
		{name: "default limit", query: "", available: 30, wantCode: 200, wantCount: 15},
		{name: "explicit limit", query: "?limit=5", available: 30, wantCode: 200, wantCount: 5},
		{name: "limit above available", query: "?limit=100", available: 4, wantCode: 200, wantCount: 4},
		{name: "upper bound", query: "?limit=100", available: 150, wantCode: 200, wantCount: 100},
		{name: "zero rejected", query: "?limit=0", wantCode: 400},
		{name: "above max rejected", query: "?limit=101", wantCode: 400},
		{name: "negative rejected", query: "?limit=-3", wantCode: 400},
		{name: "non-integer rejected", query: "?limit=abc", wantCode: 400},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeStore{queries: nQueries(tc.available, "chatgpt", 4.25)})

			w := do(r, http.MethodGet, "/api/dashboard/recent"+tc.query, "")

			require.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			var resp models.RecentResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCount, resp.Count)
			assert.Len(t, resp.Queries, tc.wantCount)
		})
	}
}

func TestGetRecentKeepsStoreOrder(t *testing.T) {
	queries := nQueries(3, "chatgpt", 4.25)
	r := newTestRouter(&fakeStore{queries: queries})

	w := do(r, http.MethodGet, "/api/dashboard/recent?limit=2", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RecentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, queries[0].ID.Hex(), resp.Queries[0].ID)
	assert.Equal(t, queries[1].ID.Hex(), resp.Queries[1].ID)
	assert.Equal(t, "ChatGPT", resp.Queries[0].PlatformName)
	require.NotNil(t, resp.Queries[0].Timestamp)
}

func TestGetRecentNullTimestamp(t *testing.T) {
	r := newTestRouter(&fakeStore{queries: []models.Query{
		{ID: primitive.NewObjectID(), Platform: "claude", CarbonGrams: 3.5},
	}})

	w := do(r, http.MethodGet, "/api/dashboard/recent", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RecentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Nil(t, resp.Queries[0].Timestamp)
}

func TestGetWeeklyShape(t *testing.T) {
	store := &fakeStore{queries: []models.Query{
		{ID: primitive.NewObjectID(), Platform: "chatgpt", CarbonGrams: 4.25, Timestamp: time.Now().UTC()},
		{ID: primitive.NewObjectID(), Platform: "claude", CarbonGrams: 3.5, Timestamp: time.Now().UTC().AddDate(0, 0, -2)},
	}}
	r := newTestRouter(store)

	w := do(r, http.MethodGet, "/api/dashboard/weekly", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.WeeklyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 7)
	assert.Equal(t, 2, resp.TotalQueries)
	assert.Equal(t, 7.75, resp.TotalCarbon)

	for i := 1; i < len(resp.Days); i++ {
		assert.Greater(t, resp.Days[i].Date, resp.Days[i-1].Date)
	}
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.Days[6].Date)
}

func TestGetTrendInsufficientWithSparseHistory(t *testing.T) {
	// A couple of active days cannot clear the 7-day gate.
	store := &fakeStore{queries: []models.Query{
		{ID: primitive.NewObjectID(), Platform: "chatgpt", CarbonGrams: 4.25, Timestamp: time.Now().UTC()},
		{ID: primitive.NewObjectID(), Platform: "claude", CarbonGrams: 3.5, Timestamp: time.Now().UTC().AddDate(0, 0, -1)},
	}}
	r := newTestRouter(store)

	w := do(r, http.MethodGet, "/api/dashboard/trend", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TrendResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.SufficientData)
	assert.Equal(t, "stable", resp.Trend)
	assert.Zero(t, resp.EstimatedTotalNextWeek)
	assert.Zero(t, resp.LastSmoothedValue)
	assert.Equal(t, 14, resp.DaysUsed)
}

func TestGetTrendWithDenseHistory(t *testing.T) {
	now := time.Now().UTC()
	queries := make([]models.Query, 0, 10)
	for i := 0; i < 10; i++ {
		queries = append(queries, models.Query{
			ID:          primitive.NewObjectID(),
			Platform:    "chatgpt",
			CarbonGrams: 4.25,
			Timestamp:   now.AddDate(0, 0, -i),
		})
	}
	r := newTestRouter(&fakeStore{queries: queries})

	w := do(r, http.MethodGet, "/api/dashboard/trend", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TrendResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.SufficientData)
	assert.Equal(t, 14, resp.DaysUsed)
	assert.Positive(t, resp.EstimatedTotalNextWeek)
}

func TestSubmitQuery(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w := do(r, http.MethodPost, "/api/dashboard/query", `{"platform":"chatgpt","carbon_grams":4.4}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.SubmitQueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "chatgpt", store.insertedPlatform)
	assert.Equal(t, 4.4, store.insertedCarbon)
	assert.WithinDuration(t, time.Now().UTC(), store.insertedAt, 5*time.Second)
}

func TestSubmitQueryResolvesTagAndEstimatesCarbon(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w := do(r, http.MethodPost, "/api/dashboard/query", `{"platform":"ChatGPT"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "chatgpt", store.insertedPlatform)
	assert.Equal(t, 4.4, store.insertedCarbon)
}

func TestSubmitQueryValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "missing platform", body: `{"carbon_grams":1.0}`},
		{name: "negative carbon", body: `{"platform":"chatgpt","carbon_grams":-1}`},
		{name: "malformed json", body: `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeStore{})

			w := do(r, http.MethodPost, "/api/dashboard/query", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubmitQueryStoreError(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("write failed")})

	w := do(r, http.MethodPost, "/api/dashboard/query", `{"platform":"chatgpt","carbon_grams":4.4}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
