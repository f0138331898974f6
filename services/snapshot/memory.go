package snapshot

// MemoryStore keeps the last saved state in memory. It exists for tests and
// for running the service without any durable backend configured.
type MemoryStore struct {
	state *State

	// SaveErr, when set, is returned by every Save call
	SaveErr error

	Saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Load() (*State, error) {
	if ms.state == nil {
		return NewState(), nil
	}
	return ms.state, nil
}

func (ms *MemoryStore) Save(state *State) error {
	if ms.SaveErr != nil {
		return ms.SaveErr
	}
	ms.state = state
	ms.Saves++
	return nil
}
