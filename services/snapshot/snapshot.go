package snapshot

import "Quizdom/models"

// State is the full persisted registry: every room keyed by room code and
// every user keyed by user id. It is loaded once at startup and rewritten
// after every mutating operation.
type State struct {
	Rooms map[string]*models.Room `json:"rooms"`
	Users map[string]*models.User `json:"users"`
}

// NewState returns an empty snapshot state
func NewState() *State {
	return &State{
		Rooms: make(map[string]*models.Room),
		Users: make(map[string]*models.User),
	}
}

// Store is the durable snapshot backend. Implementations exist for a flat
// JSON file, Redis and PostgreSQL; they can be swapped via SNAPSHOT_BACKEND
// without touching the game service.
type Store interface {
	Load() (*State, error)
	Save(state *State) error
}
