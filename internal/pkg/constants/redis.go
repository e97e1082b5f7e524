package constants

import "time"

// Redis keys for dashboard metric caching
const (
	KeyDashboardMetrics = "wallet:dashboard:metrics"

	// MetricsCacheTTL bounds staleness of the cached dashboard metrics
	MetricsCacheTTL = 30 * time.Second
)
