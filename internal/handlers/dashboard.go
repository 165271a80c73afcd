package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"carbonq-be/internal/models"
	"carbonq-be/internal/platform"
	"carbonq-be/internal/stats"
	"carbonq-be/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultRecentLimit = 15
	maxRecentLimit     = 100

	weeklyWindowDays = 7
	trendWindowDays  = 14
)

// QueryStore is the slice of the query repository the dashboard needs.
// Results are ordered newest first.
type QueryStore interface {
	FindAll(ctx context.Context, userID string) ([]models.Query, error)
	FindSince(ctx context.Context, userID string, since time.Time) ([]models.Query, error)
	Insert(ctx context.Context, userID, platformKey string, carbonGrams float64, timestamp time.Time) (string, error)
}

type DashboardHandler struct {
	store QueryStore
}

func NewDashboardHandler(store QueryStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GetStats godoc
// @Summary Get aggregated query statistics
// @Description Returns totals and the per-platform breakdown for the authenticated user
// @Tags dashboard
// @Security ApiKeyAuth
// @Success 200 {object} models.StatsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	queries, err := h.store.FindAll(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to fetch queries: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats.Aggregate(queries))
}

// GetPlatforms godoc
// @Summary Get per-platform breakdown
// @Description Returns platform statistics sorted by descending query count
// @Tags dashboard
// @Security ApiKeyAuth
// @Success 200 {array} models.PlatformStat
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/platforms [get]
func (h *DashboardHandler) GetPlatforms(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	queries, err := h.store.FindAll(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to fetch queries: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats.Aggregate(queries).Platforms)
}

// GetRecent godoc
// @Summary Get most recent queries
// @Description Returns the newest queries, truncated to the limit parameter
// @Tags dashboard
// @Security ApiKeyAuth
// @Param limit query int false "Maximum entries, 1-100" default(15)
// @Success 200 {object} models.RecentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/recent [get]
func (h *DashboardHandler) GetRecent(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxRecentLimit {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "validation_error",
				Message: "limit must be an integer between 1 and 100",
			})
			return
		}
		limit = parsed
	}

	queries, err := h.store.FindAll(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to fetch queries: " + err.Error(),
		})
		return
	}

	// Already sorted newest first by the store; just truncate.
	if len(queries) > limit {
		queries = queries[:limit]
	}

	items := make([]models.RecentQuery, 0, len(queries))
	for _, q := range queries {
		var ts *string
		if !q.Timestamp.IsZero() {
			s := q.Timestamp.UTC().Format(time.RFC3339)
			ts = &s
		}
		items = append(items, models.RecentQuery{
			ID:           q.ID.Hex(),
			Platform:     q.Platform,
			PlatformName: platform.Name(q.Platform),
			CarbonGrams:  q.CarbonGrams,
			Timestamp:    ts,
		})
	}

	c.JSON(http.StatusOK, models.RecentResponse{Queries: items, Count: len(items)})
}

// GetWeekly godoc
// @Summary Get per-day activity for the last 7 days
// @Description Returns one bucket per calendar day (UTC), oldest first, zeros for silent days
// @Tags dashboard
// @Security ApiKeyAuth
// @Success 200 {object} models.WeeklyResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/weekly [get]
func (h *DashboardHandler) GetWeekly(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	now := time.Now().UTC()
	queries, err := h.store.FindSince(c.Request.Context(), userID.(string), stats.WindowStart(now, weeklyWindowDays))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to fetch queries: " + err.Error(),
		})
		return
	}

	days := stats.BucketByDay(queries, weeklyWindowDays, now)

	totalQueries := 0
	totalCarbon := 0.0
	for _, d := range days {
		totalQueries += d.Queries
		totalCarbon += d.Carbon
	}

	c.JSON(http.StatusOK, models.WeeklyResponse{
		Days:         days,
		TotalQueries: totalQueries,
		TotalCarbon:  round2(totalCarbon),
	})
}

// GetTrend godoc
// @Summary Get the emission trend forecast
// @Description Smooths the last 14 days of emissions and forecasts next week's total
// @Tags dashboard
// @Security ApiKeyAuth
// @Success 200 {object} models.TrendResult
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/trend [get]
func (h *DashboardHandler) GetTrend(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	now := time.Now().UTC()
	queries, err := h.store.FindSince(c.Request.Context(), userID.(string), stats.WindowStart(now, trendWindowDays))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to fetch queries: " + err.Error(),
		})
		return
	}

	buckets := stats.BucketByDay(queries, trendWindowDays, now)
	c.JSON(http.StatusOK, stats.EstimateTrend(stats.CarbonSeries(buckets)))
}

// SubmitQuery godoc
// @Summary Record one tracked query
// @Description Appends a query record with a server-assigned UTC timestamp
// @Tags dashboard
// @Security ApiKeyAuth
// @Param body body models.SubmitQueryRequest true "Query to record"
// @Success 201 {object} models.SubmitQueryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /dashboard/query [post]
func (h *DashboardHandler) SubmitQuery(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req models.SubmitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if req.CarbonGrams < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "carbon_grams must not be negative",
		})
		return
	}

	key := platform.Resolve(utils.SanitizeTag(req.Platform))
	carbon := req.CarbonGrams
	if carbon == 0 {
		carbon = platform.EstimateCarbon(key)
	}

	id, err := h.store.Insert(c.Request.Context(), userID.(string), key, carbon, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to record query: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.SubmitQueryResponse{
		ID:      id,
		Message: "Query recorded",
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
