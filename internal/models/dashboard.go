package models

// PlatformStat - per-platform slice of the aggregated totals
type PlatformStat struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	Count      int     `json:"count"`
	Carbon     float64 `json:"carbon"`     // grams, rounded to 2 decimals
	Percentage float64 `json:"percentage"` // share of total query count, 1 decimal
}

// StatsResponse - overall aggregated statistics for one user
type StatsResponse struct {
	TotalQueries  int            `json:"total_queries"`
	TotalCarbon   float64        `json:"total_carbon"`
	AvgCarbon     float64        `json:"avg_carbon"`
	PlatformCount int            `json:"platform_count"`
	Platforms     []PlatformStat `json:"platforms"`
}

// RecentQuery - one entry of the recent-queries list. Timestamp is RFC 3339
// or null when the stored record had none.
type RecentQuery struct {
	ID           string  `json:"id"`
	Platform     string  `json:"platform"`
	PlatformName string  `json:"platform_name"`
	CarbonGrams  float64 `json:"carbon_grams"`
	Timestamp    *string `json:"timestamp"`
}

type RecentResponse struct {
	Queries []RecentQuery `json:"queries"`
	Count   int           `json:"count"`
}

// DayBucket - one UTC calendar day of activity
type DayBucket struct {
	Date    string  `json:"date"`  // YYYY-MM-DD
	Label   string  `json:"label"` // Mon..Sun
	Queries int     `json:"queries"`
	Carbon  float64 `json:"carbon"` // grams, rounded to 2 decimals
}

type WeeklyResponse struct {
	Days         []DayBucket `json:"days"`
	TotalQueries int         `json:"total_queries"`
	TotalCarbon  float64     `json:"total_carbon"`
}

// TrendResult - exponential-smoothing forecast over the last 14 days.
// When SufficientData is false the trend is "stable" and both numeric
// fields are zero.
type TrendResult struct {
	Trend                  string  `json:"trend"` // "up", "down" or "stable"
	EstimatedTotalNextWeek float64 `json:"estimated_total_next_week"`
	LastSmoothedValue      float64 `json:"last_smoothed_value"`
	DaysUsed               int     `json:"days_used"`
	SufficientData         bool    `json:"sufficient_data"`
}
