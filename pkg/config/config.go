package config

import (
	"os"
	"time"
)

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Regions used by each Riot endpoint group.
// Account and match endpoints run on the routing region,
// summoner/league/mastery on the platform region.
type RegionConfiguration struct {
	Routing  string
	Platform string
}

// Bucket where the logs are uploaded.
type BucketConfiguration struct {
	AccessKey    string
	AccessSecret string
	Endpoint     string
	LogBucket    string
	Region       string
}

// Single window of the Riot rate limit.
type LimitWindow struct {
	Count         int
	ResetInterval time.Duration
}

// The rate limit constraints of a development key.
type LimitConfiguration struct {
	Lower  LimitWindow
	Higher LimitWindow
}

var (
	ApiKey  string
	Bucket  BucketConfiguration
	Limits  LimitConfiguration
	Redis   RedisConfiguration
	Regions RegionConfiguration
)

// Load the variables.
func LoadEnv() {
	ApiKey = os.Getenv("RIOT_API_KEY")

	// Load the region configuration, defaulting to EUW.
	Regions.Routing = getEnvOrDefault("RIOT_ROUTING_REGION", "europe")
	Regions.Platform = getEnvOrDefault("RIOT_PLATFORM_REGION", "euw1")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the log bucket configuration.
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")
	Bucket.Region = getEnvOrDefault("BUCKET_REGION", "auto")

	// Development key limits.
	Limits = LimitConfiguration{
		Lower: LimitWindow{
			Count:         20,
			ResetInterval: 1 * time.Second,
		},
		Higher: LimitWindow{
			Count:         100,
			ResetInterval: 2 * time.Minute,
		},
	}
}

// Return the environment variable if set, else the default.
func getEnvOrDefault(key string, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
