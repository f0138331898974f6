package utils

/**
 * This file contains utility functions to format the keys for the Redis
 * snapshot backend. It avoids having to call "fmt.Sprintf(...)" with the
 * same format spec every time, potentially confusing the key format.
 */

import "fmt"

func FormatRoomKey(roomCode string) string {
	return fmt.Sprintf("room:%s", roomCode)
}

func FormatUserKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

const RoomKeyPattern = "room:*"
const UserKeyPattern = "user:*"
