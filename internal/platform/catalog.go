package platform

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Display names, carbon estimates, colors and icons for the tracked AI
// platforms. Tags outside the catalog fall back to the defaults below.

const (
	DefaultKey   = "unknown"
	DefaultColor = "#6b7280"
	DefaultIcon  = "💬"
)

var Names = map[string]string{
	"gemini":        "Gemini",
	"claude":        "Claude",
	"perplexity":    "Perplexity",
	"chatgpt":       "ChatGPT",
	"google_search": "Google Search",
}

// CarbonPerQuery - estimated grams of CO2e per query, per platform
var CarbonPerQuery = map[string]float64{
	"gemini":        1.6,
	"claude":        3.5,
	"perplexity":    4.0,
	"chatgpt":       4.4,
	"google_search": 0.2,
}

var Colors = map[string]string{
	"chatgpt":       "#10b981",
	"claude":        "#f59e0b",
	"gemini":        "#3b82f6",
	"perplexity":    "#8b5cf6",
	"google_search": "#64748b",
}

var Icons = map[string]string{
	"chatgpt":       "🤖",
	"claude":        "🧠",
	"gemini":        "✨",
	"perplexity":    "🔍",
	"google_search": "🔎",
}

// keys in a fixed order so fuzzy ranking is deterministic
var keys = []string{"chatgpt", "claude", "gemini", "perplexity", "google_search"}

// Name returns the display name for a platform key, or the key itself.
func Name(key string) string {
	if n, ok := Names[key]; ok {
		return n
	}
	if key == "" {
		return DefaultKey
	}
	return key
}

// Color returns the chart color for a platform key.
func Color(key string) string {
	if c, ok := Colors[key]; ok {
		return c
	}
	return DefaultColor
}

// Icon returns the icon for a platform key.
func Icon(key string) string {
	if i, ok := Icons[key]; ok {
		return i
	}
	return DefaultIcon
}

// EstimateCarbon returns the per-query carbon estimate for a platform key,
// 0 when the platform is not in the catalog.
func EstimateCarbon(key string) float64 {
	return CarbonPerQuery[key]
}

// Resolve normalizes a free-form platform tag to a canonical catalog key.
// The extension sends tags like "ChatGPT" or "google search"; exact matches
// win, then fuzzy matching against keys and display names. Tags that match
// nothing pass through lowercased so new platforms still aggregate.
func Resolve(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return DefaultKey
	}
	if _, ok := Names[tag]; ok {
		return tag
	}

	candidates := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		candidates = append(candidates, k, strings.ToLower(Names[k]))
	}

	matches := fuzzy.Find(tag, candidates)
	if len(matches) > 0 {
		return keys[matches[0].Index/2]
	}

	return strings.Join(strings.Fields(tag), "_")
}
