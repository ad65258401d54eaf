package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries the feature thresholds and wiring settings for the
// service. Every threshold the matching and entitlement rules depend on
// lives here so tests can override it.
type Config struct {
	Port      string
	AWSRegion string
	S3Bucket  string

	// AIEndpoint is the base URL of the generation flow server.
	AIEndpoint string

	// FlagThreshold is the pending-report count at which a user is
	// excluded from discovery and search, independent of admin action.
	FlagThreshold int

	// PreviewLimit is how many likers/viewers Free and Premium users see
	// before the upsell gate.
	PreviewLimit int

	// BoostDuration is the priority-placement window one boost credit buys.
	BoostDuration time.Duration

	// AIPoolSize is the candidate pool handed to the matchmaking ranker.
	AIPoolSize int

	// FeedSize is the default discovery feed length.
	FeedSize int

	// SearchLimit caps search results; SearchPoolSize is the raw pool
	// fetched before in-memory filtering.
	SearchLimit    int
	SearchPoolSize int

	// RegularPoolSize is the raw recency-ordered pool fetched for the
	// non-boosted segment of the discovery feed.
	RegularPoolSize int

	// IDBatchSize chunks ID-membership lookups to the store's ceiling.
	IDBatchSize int
}

// Load reads the configuration from the environment, falling back to the
// production defaults.
func Load() *Config {
	return &Config{
		Port:            envString("PORT", "8080"),
		AWSRegion:       envString("AWS_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET_NAME", ""),
		AIEndpoint:      envString("AI_ENDPOINT", "http://localhost:3400"),
		FlagThreshold:   envInt("FLAG_THRESHOLD", 3),
		PreviewLimit:    envInt("PREVIEW_LIMIT", 2),
		BoostDuration:   envDuration("BOOST_DURATION", 30*time.Minute),
		AIPoolSize:      envInt("AI_POOL_SIZE", 50),
		FeedSize:        envInt("FEED_SIZE", 20),
		SearchLimit:     envInt("SEARCH_LIMIT", 50),
		SearchPoolSize:  envInt("SEARCH_POOL_SIZE", 500),
		RegularPoolSize: envInt("REGULAR_POOL_SIZE", 100),
		IDBatchSize:     envInt("ID_BATCH_SIZE", 30),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
