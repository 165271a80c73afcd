// Package stats holds the pure aggregation, bucketing and trend-estimation
// functions behind the dashboard endpoints. Everything here is stateless and
// deterministic; malformed records degrade to zeros instead of errors so one
// bad historical document can never break a dashboard.
package stats

import (
	"math"
	"sort"

	"carbonq-be/internal/models"
	"carbonq-be/internal/platform"
)

// Aggregate computes totals and the per-platform breakdown for a set of
// queries. Input order is irrelevant; platforms are sorted by descending
// count with ties keeping first-seen order. An empty input yields an
// all-zero response with an empty (non-nil) platform list.
func Aggregate(queries []models.Query) models.StatsResponse {
	counts := make(map[string]int)
	carbon := make(map[string]float64)
	order := make([]string, 0)

	totalQueries := 0
	totalCarbon := 0.0

	for _, q := range queries {
		p := q.Platform
		if p == "" {
			p = platform.DefaultKey
		}
		totalQueries++
		totalCarbon += q.CarbonGrams
		if _, seen := counts[p]; !seen {
			order = append(order, p)
		}
		counts[p]++
		carbon[p] += q.CarbonGrams
	}

	platforms := make([]models.PlatformStat, 0, len(order))
	for _, p := range order {
		pct := 0.0
		if totalQueries > 0 {
			pct = round1(float64(counts[p]) / float64(totalQueries) * 100)
		}
		platforms = append(platforms, models.PlatformStat{
			Key:        p,
			Name:       platform.Name(p),
			Color:      platform.Color(p),
			Icon:       platform.Icon(p),
			Count:      counts[p],
			Carbon:     round2(carbon[p]),
			Percentage: pct,
		})
	}

	sort.SliceStable(platforms, func(i, j int) bool {
		return platforms[i].Count > platforms[j].Count
	})

	avgCarbon := 0.0
	if totalQueries > 0 {
		avgCarbon = round2(totalCarbon / float64(totalQueries))
	}

	return models.StatsResponse{
		TotalQueries:  totalQueries,
		TotalCarbon:   round2(totalCarbon),
		AvgCarbon:     avgCarbon,
		PlatformCount: len(platforms),
		Platforms:     platforms,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
