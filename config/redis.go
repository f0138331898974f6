package config

import (
	"log"
	"os"

	"Quizdom/services/snapshot"
)

// ConnectRedisStore builds the Redis snapshot backend from REDIS_URL
func ConnectRedisStore() (*snapshot.RedisStore, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	store, err := snapshot.NewRedisStore(redisURL, 0)
	if err != nil {
		log.Printf("Error connecting to Redis: %v", err)
		return nil, err
	}
	log.Println("Redis connection established")
	return store, nil
}
