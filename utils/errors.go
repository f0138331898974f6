package utils

import (
	"net/http"

	"Quizdom/services/game"

	"github.com/gin-gonic/gin"
)

// StatusForKind maps a domain error kind to its HTTP status
func StatusForKind(kind game.Kind) int {
	switch kind {
	case game.KindNotFound:
		return http.StatusNotFound
	case game.KindConflict, game.KindRoomFull:
		return http.StatusConflict
	case game.KindForbidden:
		return http.StatusForbidden
	case game.KindNotStarted:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders a game service error with its machine-readable kind
func WriteError(c *gin.Context, err error) {
	kind := game.KindOf(err)
	if kind == "" {
		kind = "internal"
	}
	c.JSON(StatusForKind(kind), gin.H{"kind": string(kind), "error": err.Error()})
}
