package game

import (
	"math/rand"

	game_constants "Quizdom/constants/game"
)

// generateRoomCode produces one candidate room code. Uniqueness against the
// live rooms is the caller's job.
func generateRoomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = game_constants.ROOM_CODE_ALPHABET[rand.Intn(len(game_constants.ROOM_CODE_ALPHABET))]
	}
	return string(b)
}

// allocateRoomCode retries until the code is unused. The keyspace (32^5)
// vastly exceeds any realistic room count, so the loop terminates.
// Callers must hold the service lock.
func (s *Service) allocateRoomCode() string {
	for {
		code := generateRoomCode(game_constants.ROOM_CODE_LENGTH)
		if _, exists := s.rooms[code]; !exists {
			return code
		}
	}
}
