// internal/workers/matching/match-workers/config.go
package matchworkers

import "time"

type Config struct {
	MaxResults      int
	Timeout         time.Duration
	BookingCacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxResults:      5,
		Timeout:         10 * time.Second,
		BookingCacheTTL: 5 * time.Minute,
	}
}
