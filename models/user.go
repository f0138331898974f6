package models

import "time"

/*
 * 'User' is one identity inside the service. The id is opaque (uuid) and is
 * the caller's only credential: the room admin proves itself by sending the
 * id it was handed at creation time. Score mirrors the user's room-scoped
 * score as of the last update.
 */
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	CurrentRoom string    `json:"current_room"`
	Score       int       `json:"score"`
	IsAdmin     bool      `json:"is_admin"`
	JoinedAt    time.Time `json:"joined_at"`
}
