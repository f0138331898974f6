package controllers

import (
	"net/http"

	"Quizdom/services/game"
	"Quizdom/utils"

	"github.com/gin-gonic/gin"
)

type SubmitAnswerRequest struct {
	RoomID     string `json:"room_id" binding:"required"`
	UserID     string `json:"user_id" binding:"required"`
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type UpdateScoreRequest struct {
	RoomID string `json:"room_id" binding:"required"`
	UserID string `json:"user_id" binding:"required"`

	// Points defaults to 1 when omitted; 0 and negative deltas are valid
	Points *int `json:"points"`
}

// @Summary Submits an answer to a question
// @Description Scores the answer if correct, at most once per (user, question). Repeat submissions report already_answered with no score change.
// @Tags answer
// @Accept json
// @Produce json
// @Param answer body controllers.SubmitAnswerRequest true "Answer submission"
// @Success 200 {object} object{correct=boolean,correct_answer=string,points_earned=integer,current_score=integer,leaderboard=[]models.LeaderboardEntry}
// @Failure 400 {object} object{kind=string,error=string}
// @Failure 404 {object} object{kind=string,error=string}
// @Router /submit-answer [post]
func SubmitAnswer(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitAnswerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.SubmitAnswer(req.RoomID, req.UserID, req.QuestionID, req.Answer)
		if err != nil {
			utils.WriteError(c, err)
			return
		}

		if result.AlreadyAnswered {
			c.JSON(http.StatusOK, gin.H{
				"correct":          false,
				"already_answered": true,
				"message":          "You've already answered this question correctly.",
				"current_score":    result.CurrentScore,
				"leaderboard":      result.Leaderboard,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"correct":        result.Correct,
			"correct_answer": result.CorrectAnswer,
			"points_earned":  result.PointsEarned,
			"current_score":  result.CurrentScore,
			"leaderboard":    result.Leaderboard,
		})
	}
}

// @Summary Updates a user's score directly
// @Description Applies a signed point delta (default +1) and returns the updated leaderboard
// @Tags answer
// @Accept json
// @Produce json
// @Param score body controllers.UpdateScoreRequest true "Score update"
// @Success 200 {object} object{username=string,new_score=integer,leaderboard=[]models.LeaderboardEntry}
// @Failure 404 {object} object{kind=string,error=string}
// @Router /update-score [post]
func UpdateScore(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		points := 1
		if req.Points != nil {
			points = *req.Points
		}

		result, err := svc.UpdateScore(req.RoomID, req.UserID, points)
		if err != nil {
			utils.WriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"username":    result.Username,
			"new_score":   result.NewScore,
			"leaderboard": result.Leaderboard,
		})
	}
}
