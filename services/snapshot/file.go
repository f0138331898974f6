package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"Quizdom/models"
)

// FileStore persists the whole state as a single JSON document. This is the
// default backend and matches the snapshot layout the service has always
// written: sets are stored as ordered lists and rebuilt on load.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file. A missing file is not an error: the service
// simply starts empty.
func (fs *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("error reading snapshot file %s: %v", fs.path, err)
	}

	state := NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("error unmarshaling snapshot file %s: %v", fs.path, err)
	}
	if state.Rooms == nil {
		state.Rooms = make(map[string]*models.Room)
	}
	if state.Users == nil {
		state.Users = make(map[string]*models.User)
	}
	return state, nil
}

// Save rewrites the snapshot file with the full state
func (fs *FileStore) Save(state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling snapshot state: %v", err)
	}
	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("error writing snapshot file %s: %v", fs.path, err)
	}
	return nil
}
