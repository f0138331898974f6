package config

import (
	"fmt"
	"log"
	"os"

	game_constants "Quizdom/constants/game"
	"Quizdom/services/snapshot"
)

// NewSnapshotStore selects the snapshot backend from SNAPSHOT_BACKEND
// ("file", "redis" or "postgres"). The file backend is the default and
// needs no external services.
func NewSnapshotStore() (snapshot.Store, error) {
	backend := os.Getenv("SNAPSHOT_BACKEND")

	switch backend {
	case "", "file":
		path := os.Getenv("SNAPSHOT_FILE")
		if path == "" {
			path = game_constants.DEFAULT_SNAPSHOT_FILE
		}
		log.Printf("Using file snapshot store: %s", path)
		return snapshot.NewFileStore(path), nil

	case "redis":
		return ConnectRedisStore()

	case "postgres":
		db, err := ConnectGORM()
		if err != nil {
			return nil, err
		}
		return snapshot.NewGormStore(db)

	default:
		return nil, fmt.Errorf("unknown snapshot backend: %s", backend)
	}
}
