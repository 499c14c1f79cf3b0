package constants

import "time"

const (
	// ResponseCacheTTL bounds how long an aggregated fetch may be reused
	// before the upstream API is consulted again.
	ResponseCacheTTL = 300 * time.Second
)

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

// Sample sizes per endpoint, matching the proxy contract.
const (
	DashboardSampleSize = 10
	HistorySampleSize   = 15
	AnalysisSampleSize  = 10
	ChampionsSampleSize = 20
)

// MaxConcurrentMatchFetches bounds the per-aggregation fan-out against the
// rate-limited upstream.
const MaxConcurrentMatchFetches = 20

const DefaultRegion = "euw1"

// Fixed Riot team identifiers within a match.
const (
	TeamBlue = 100
	TeamRed  = 200
)

const (
	ShutdownTimeout = 5 * time.Second
)
