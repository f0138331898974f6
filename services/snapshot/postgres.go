package snapshot

import (
	"encoding/json"
	"fmt"

	"Quizdom/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/*
 * 'SnapshotRoom' and 'SnapshotUser' are the PostgreSQL rows for the snapshot
 * backend. The documents are stored as JSON columns rather than normalized
 * tables: the snapshot contract is a key-value mapping, and keeping a single
 * document per room preserves the exact on-disk layout of the file backend.
 */
type SnapshotRoom struct {
	Code string         `gorm:"primaryKey;size:16;not null"`
	Data datatypes.JSON `gorm:"not null"`
}

type SnapshotUser struct {
	ID   string         `gorm:"primaryKey;size:64;not null"`
	Data datatypes.JSON `gorm:"not null"`
}

func (SnapshotRoom) TableName() string { return "snapshot_rooms" }
func (SnapshotUser) TableName() string { return "snapshot_users" }

// GormStore persists the registries in PostgreSQL through GORM
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM connection, migrating the snapshot tables
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&SnapshotRoom{}, &SnapshotUser{}); err != nil {
		return nil, fmt.Errorf("snapshot auto migration failed: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Load reads every persisted room and user row
func (gs *GormStore) Load() (*State, error) {
	state := NewState()

	var roomRows []SnapshotRoom
	if err := gs.db.Find(&roomRows).Error; err != nil {
		return nil, fmt.Errorf("error loading rooms from PostgreSQL: %v", err)
	}
	for _, row := range roomRows {
		var room models.Room
		if err := json.Unmarshal(row.Data, &room); err != nil {
			return nil, fmt.Errorf("error unmarshaling room %s: %v", row.Code, err)
		}
		state.Rooms[row.Code] = &room
	}

	var userRows []SnapshotUser
	if err := gs.db.Find(&userRows).Error; err != nil {
		return nil, fmt.Errorf("error loading users from PostgreSQL: %v", err)
	}
	for _, row := range userRows {
		var user models.User
		if err := json.Unmarshal(row.Data, &user); err != nil {
			return nil, fmt.Errorf("error unmarshaling user %s: %v", row.ID, err)
		}
		state.Users[row.ID] = &user
	}

	return state, nil
}

// Save upserts every room and user document inside one transaction
func (gs *GormStore) Save(state *State) error {
	return gs.db.Transaction(func(tx *gorm.DB) error {
		for code, room := range state.Rooms {
			data, err := json.Marshal(room)
			if err != nil {
				return fmt.Errorf("error marshaling room %s: %v", code, err)
			}
			row := SnapshotRoom{Code: code, Data: data}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("error upserting room %s: %v", code, err)
			}
		}
		for id, user := range state.Users {
			data, err := json.Marshal(user)
			if err != nil {
				return fmt.Errorf("error marshaling user %s: %v", id, err)
			}
			row := SnapshotUser{ID: id, Data: data}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("error upserting user %s: %v", id, err)
			}
		}
		return nil
	})
}
