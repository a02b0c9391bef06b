package utils

import (
	"time"
)

// OnlineDurationMenu lists the durations (minutes) offered by the dashboard UI.
// The contract accepts any positive duration; this menu is advisory only.
var OnlineDurationMenu = []int{30, 60, 120, 240, 480, 720}

// Cache constants
const (
	// AnalyticsSummaryCacheKey is the cache key prefix for analytics summaries
	AnalyticsSummaryCacheKey = "analytics:summary"

	// DefaultAnalyticsCacheTTL is how long a computed summary may be served from cache
	DefaultAnalyticsCacheTTL = 60 * time.Second
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)
