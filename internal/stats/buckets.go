package stats

import (
	"time"

	"carbonq-be/internal/models"
)

// WindowStart returns the UTC midnight opening a window of `days`
// consecutive calendar days ending on now's day.
func WindowStart(now time.Time, days int) time.Time {
	d := now.UTC().AddDate(0, 0, -(days - 1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// BucketByDay groups queries into `days` consecutive UTC calendar-day
// buckets ending today, oldest first. Days without activity appear with
// zero values. Records with a zero timestamp, or dated outside the window,
// are ignored.
func BucketByDay(queries []models.Query, days int, now time.Time) []models.DayBucket {
	type daily struct {
		queries int
		carbon  float64
	}

	grouped := make(map[string]daily)
	for _, q := range queries {
		if q.Timestamp.IsZero() {
			continue
		}
		key := q.Timestamp.UTC().Format("2006-01-02")
		d := grouped[key]
		d.queries++
		d.carbon += q.CarbonGrams
		grouped[key] = d
	}

	start := WindowStart(now, days)
	buckets := make([]models.DayBucket, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		key := day.Format("2006-01-02")
		entry := grouped[key]
		buckets = append(buckets, models.DayBucket{
			Date:    key,
			Label:   day.Weekday().String()[:3],
			Queries: entry.queries,
			Carbon:  round2(entry.carbon),
		})
	}

	return buckets
}
