package controllers

import (
	"fmt"
	"net/http"

	"Quizdom/services/game"
	"Quizdom/utils"

	"github.com/gin-gonic/gin"
)

type CreateRoomRequest struct {
	Name       string `json:"name" binding:"required"`
	Topic      string `json:"topic" binding:"required"`
	MaxPlayers int    `json:"max_players"`
	Rounds     int    `json:"rounds"`
}

type JoinRoomRequest struct {
	Username string `json:"username" binding:"required"`
}

type StartQuizRequest struct {
	RoomID  string `json:"room_id" binding:"required"`
	AdminID string `json:"admin_id" binding:"required"`
}

// @Summary Creates a new quiz room
// @Description Generates a question set for the topic and returns the room code plus the admin identity. Falls back to a fixed question set if generation fails.
// @Tags room
// @Accept json
// @Produce json
// @Param room body controllers.CreateRoomRequest true "Room settings"
// @Success 200 {object} object{message=string,room_id=string,admin_id=string,admin_username=string,topic=string,questions_count=integer,used_fallback=boolean}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{kind=string,error=string}
// @Router /create-room [post]
func CreateRoom(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.CreateRoom(c.Request.Context(), game.CreateRoomInput{
			Name:       req.Name,
			Topic:      req.Topic,
			MaxPlayers: req.MaxPlayers,
			Rounds:     req.Rounds,
		})
		if err != nil {
			utils.WriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":         fmt.Sprintf("Room '%s' created successfully. You are the admin.", req.Name),
			"room_id":         result.RoomID,
			"admin_id":        result.AdminID,
			"admin_username":  result.AdminUsername,
			"topic":           result.Topic,
			"questions_count": result.QuestionsCount,
			"used_fallback":   result.UsedFallback,
		})
	}
}

// @Summary Joins an existing quiz room
// @Description Adds a player to the room identified by its code. Rejoining with the same username returns the existing identity.
// @Tags room
// @Accept json
// @Produce json
// @Param room_id path string true "Room code"
// @Param user body controllers.JoinRoomRequest true "Desired username"
// @Success 200 {object} object{message=string,user_id=string,is_admin=boolean,players=[]string,questions=[]models.QuestionView,room_status=models.RoomStatus,leaderboard=[]models.LeaderboardEntry}
// @Failure 404 {object} object{kind=string,error=string}
// @Failure 409 {object} object{kind=string,error=string}
// @Router /join-room/{room_id} [post]
func JoinRoom(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("room_id")

		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.JoinRoom(roomID, req.Username)
		if err != nil {
			utils.WriteError(c, err)
			return
		}

		message := fmt.Sprintf("User '%s' joined room '%s'.", result.Username, result.RoomName)
		if result.Rejoined {
			message = fmt.Sprintf("User '%s' already in room '%s'.", result.Username, result.RoomName)
		}

		c.JSON(http.StatusOK, gin.H{
			"message":     message,
			"user_id":     result.UserID,
			"is_admin":    result.IsAdmin,
			"players":     result.Players,
			"questions":   result.Questions,
			"room_status": result.RoomStatus,
			"leaderboard": result.Leaderboard,
		})
	}
}

// @Summary Starts the quiz
// @Description Flips the room to started. Only the admin id returned at room creation is accepted.
// @Tags room
// @Accept json
// @Produce json
// @Param start body controllers.StartQuizRequest true "Room and admin ids"
// @Success 200 {object} object{message=string,room_id=string,started=boolean,players_count=integer}
// @Failure 403 {object} object{kind=string,error=string}
// @Failure 404 {object} object{kind=string,error=string}
// @Router /start-quiz [post]
func StartQuiz(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartQuizRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.StartQuiz(req.RoomID, req.AdminID)
		if err != nil {
			utils.WriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Quiz started successfully!",
			"room_id":       result.RoomID,
			"started":       result.Started,
			"players_count": result.PlayersCount,
		})
	}
}

// @Summary Gives the current status of a room
// @Description Returns roster, progress counters, scores and leaderboard
// @Tags room
// @Produce json
// @Param room_id path string true "Room code"
// @Success 200 {object} object{name=string,topic=string,players=[]string,current_question=integer,total_questions=integer,scores=object,started=boolean,admin_id=string,waiting_for_admin=boolean,leaderboard=[]models.LeaderboardEntry}
// @Failure 404 {object} object{kind=string,error=string}
// @Router /room-status/{room_id} [get]
func GetRoomStatus(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.RoomStatus(c.Param("room_id"))
		if err != nil {
			utils.WriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"name":              result.Name,
			"topic":             result.Topic,
			"players":           result.Players,
			"current_question":  result.CurrentQuestion,
			"total_questions":   result.TotalQuestions,
			"scores":            result.Scores,
			"started":           result.Started,
			"admin_id":          result.AdminID,
			"waiting_for_admin": result.WaitingForAdmin,
			"leaderboard":       result.Leaderboard,
		})
	}
}

// @Summary Gives the leaderboard of a room
// @Description Returns the per-player scores ordered by descending score
// @Tags room
// @Produce json
// @Param room_id path string true "Room code"
// @Success 200 {object} object{room_name=string,leaderboard=[]models.LeaderboardEntry}
// @Failure 404 {object} object{kind=string,error=string}
// @Router /leaderboard/{room_id} [get]
func GetLeaderboard(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Leaderboard(c.Param("room_id"))
		if err != nil {
			utils.WriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"room_name":   result.RoomName,
			"leaderboard": result.Leaderboard,
		})
	}
}
