package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"Quizdom/models"
	snapshot_utils "Quizdom/services/snapshot/utils"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists each room and user as its own JSON value under
// "room:{code}" / "user:{id}" keys. No TTL is set: rooms live for as long
// as the deployment does.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore creates a Redis snapshot backend from an address or URL
func NewRedisStore(addr string, db int) (*RedisStore, error) {
	var client *redis.Client
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %v", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})
	}

	rs := &RedisStore{
		client: client,
		ctx:    context.Background(),
	}

	// Test connection
	if err := rs.client.Ping(rs.ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}
	log.Println("Successfully connected to Redis")

	return rs, nil
}

// Load rebuilds the full state by scanning the room and user keyspaces
func (rs *RedisStore) Load() (*State, error) {
	state := NewState()

	if err := rs.scanInto(snapshot_utils.RoomKeyPattern, func(data []byte) error {
		var room models.Room
		if err := json.Unmarshal(data, &room); err != nil {
			return err
		}
		state.Rooms[room.ID] = &room
		return nil
	}); err != nil {
		return nil, fmt.Errorf("error loading rooms from Redis: %v", err)
	}

	if err := rs.scanInto(snapshot_utils.UserKeyPattern, func(data []byte) error {
		var user models.User
		if err := json.Unmarshal(data, &user); err != nil {
			return err
		}
		state.Users[user.ID] = &user
		return nil
	}); err != nil {
		return nil, fmt.Errorf("error loading users from Redis: %v", err)
	}

	return state, nil
}

// scanInto iterates every key matching pattern and hands the raw value to fn
func (rs *RedisStore) scanInto(pattern string, fn func(data []byte) error) error {
	iter := rs.client.Scan(rs.ctx, 0, pattern, 0).Iterator()
	for iter.Next(rs.ctx) {
		data, err := rs.client.Get(rs.ctx, iter.Val()).Bytes()
		if err != nil {
			return fmt.Errorf("error getting key %s: %v", iter.Val(), err)
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("error unmarshaling key %s: %v", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Save writes every room and user in one pipeline. Rooms are never deleted,
// so a full rewrite never needs to remove keys.
func (rs *RedisStore) Save(state *State) error {
	pipe := rs.client.Pipeline()

	for code, room := range state.Rooms {
		data, err := json.Marshal(room)
		if err != nil {
			return fmt.Errorf("error marshaling room %s: %v", code, err)
		}
		pipe.Set(rs.ctx, snapshot_utils.FormatRoomKey(code), data, 0)
	}
	for id, user := range state.Users {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("error marshaling user %s: %v", id, err)
		}
		pipe.Set(rs.ctx, snapshot_utils.FormatUserKey(id), data, 0)
	}

	if _, err := pipe.Exec(rs.ctx); err != nil {
		return fmt.Errorf("error writing snapshot to Redis: %v", err)
	}
	return nil
}

// Close gracefully closes the Redis connection
func (rs *RedisStore) Close() error {
	if err := rs.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}
