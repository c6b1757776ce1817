package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// Queue discriminators used by the league-v4 entries payload.
	QueueSolo = "RANKED_SOLO_5x5"
	QueueFlex = "RANKED_FLEX_SR"
)

const (
	// Concurrent match-v5 detail fetches per report.
	MatchFetchConcurrency = 10
)
