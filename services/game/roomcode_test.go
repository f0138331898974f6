package game

import (
	"strings"
	"testing"

	game_constants "Quizdom/constants/game"
	"Quizdom/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRoomCodeShape(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := generateRoomCode(game_constants.ROOM_CODE_LENGTH)

		assert.Len(t, code, 5)
		for _, r := range code {
			assert.Contains(t, game_constants.ROOM_CODE_ALPHABET, string(r))
		}
		// The confusable characters must never appear
		assert.False(t, strings.ContainsAny(code, "O0I1"), "code %q contains a confusable character", code)
	}
}

func TestAllocateRoomCodeSkipsLiveCodes(t *testing.T) {
	s := &Service{rooms: make(map[string]*models.Room)}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := s.allocateRoomCode()

		assert.False(t, seen[code], "allocator returned live code %q", code)
		seen[code] = true
		s.rooms[code] = &models.Room{ID: code}
	}
}
