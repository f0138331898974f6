package game_test

import (
	"context"
	"errors"
	"testing"

	"Quizdom/models"
	"Quizdom/services/game"
	"Quizdom/services/questions"
	"Quizdom/services/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	result questions.Result
}

func (p stubProvider) Generate(ctx context.Context, topic string, count int) questions.Result {
	return p.result
}

func fixedQuestions() []models.Question {
	return []models.Question{
		{ID: "q1", Text: "What is the capital of France?", Options: []string{"Paris", "Rome", "Berlin", "Madrid"}, CorrectAnswer: "Paris"},
		{ID: "q2", Text: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: "Mars"},
		{ID: "q3", Text: "What is 7 times 8?", Options: []string{"54", "56", "63", "64"}, CorrectAnswer: "56"},
	}
}

func newTestService(t *testing.T) (*game.Service, *snapshot.MemoryStore) {
	t.Helper()
	store := snapshot.NewMemoryStore()
	svc, err := game.NewService(store, stubProvider{result: questions.Result{Questions: fixedQuestions()}})
	require.NoError(t, err)
	return svc, store
}

func createRoom(t *testing.T, svc *game.Service, name string, maxPlayers int) *game.CreateRoomResult {
	t.Helper()
	result, err := svc.CreateRoom(context.Background(), game.CreateRoomInput{
		Name:       name,
		Topic:      "sports",
		MaxPlayers: maxPlayers,
		Rounds:     3,
	})
	require.NoError(t, err)
	return result
}

func TestCreateRoom(t *testing.T) {
	svc, store := newTestService(t)

	result := createRoom(t, svc, "Trivia1", 2)

	assert.Len(t, result.RoomID, 5)
	assert.NotEmpty(t, result.AdminID)
	assert.Equal(t, "Admin-"+result.RoomID[:3], result.AdminUsername)
	assert.Equal(t, 3, result.QuestionsCount)
	assert.False(t, result.UsedFallback)
	assert.Equal(t, 1, store.Saves, "room creation must write a snapshot")

	status, err := svc.RoomStatus(result.RoomID)
	require.NoError(t, err)
	assert.False(t, status.Started)
	assert.True(t, status.WaitingForAdmin)
	assert.Equal(t, []string{result.AdminUsername}, status.Players)
	assert.Equal(t, 0, status.CurrentQuestion)
}

func TestCreateRoomDuplicateName(t *testing.T) {
	svc, _ := newTestService(t)

	createRoom(t, svc, "Trivia1", 4)
	_, err := svc.CreateRoom(context.Background(), game.CreateRoomInput{Name: "Trivia1", Topic: "music"})

	require.Error(t, err)
	assert.Equal(t, game.KindConflict, game.KindOf(err))
}

func TestCreateRoomUsesFallbackQuestions(t *testing.T) {
	store := snapshot.NewMemoryStore()
	fallback := questions.Fallback("sports", 3)
	svc, err := game.NewService(store, stubProvider{result: questions.Result{Questions: fallback, FromFallback: true}})
	require.NoError(t, err)

	result, err := svc.CreateRoom(context.Background(), game.CreateRoomInput{Name: "Backup", Topic: "sports"})
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, 3, result.QuestionsCount)
}

func TestJoinRoom(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)

	result, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)

	assert.NotEmpty(t, result.UserID)
	assert.False(t, result.IsAdmin)
	assert.False(t, result.Rejoined)
	assert.Equal(t, []string{room.AdminUsername, "Bob"}, result.Players)
	assert.Len(t, result.Questions, 3)
	assert.True(t, result.RoomStatus.WaitingForAdmin)

	// The correct answers must stay on the server
	for _, q := range result.Questions {
		assert.NotEmpty(t, q.QuestionID)
		assert.NotEmpty(t, q.Options)
	}

	// Score map and player roster stay in sync
	status, err := svc.RoomStatus(room.RoomID)
	require.NoError(t, err)
	assert.Len(t, status.Scores, len(status.Players))
	for _, player := range status.Players {
		_, ok := status.Scores[player]
		assert.True(t, ok, "player %s missing from score map", player)
	}
}

func TestJoinRoomUnknownCode(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.JoinRoom("ZZZZZ", "Bob")
	require.Error(t, err)
	assert.Equal(t, game.KindNotFound, game.KindOf(err))
}

func TestJoinRoomCapacity(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 2)

	_, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)

	// Admin + Bob fill the room
	_, err = svc.JoinRoom(room.RoomID, "Carol")
	require.Error(t, err)
	assert.Equal(t, game.KindRoomFull, game.KindOf(err))

	status, err := svc.RoomStatus(room.RoomID)
	require.NoError(t, err)
	assert.Len(t, status.Players, 2)
}

func TestJoinRoomRejoinIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)

	first, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)

	second, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)

	assert.True(t, second.Rejoined)
	assert.Equal(t, first.UserID, second.UserID)

	status, err := svc.RoomStatus(room.RoomID)
	require.NoError(t, err)
	assert.Len(t, status.Players, 2, "rejoin must not grow the roster")
}

func TestStartQuiz(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)

	_, err := svc.StartQuiz(room.RoomID, "not-the-admin")
	require.Error(t, err)
	assert.Equal(t, game.KindForbidden, game.KindOf(err))

	result, err := svc.StartQuiz(room.RoomID, room.AdminID)
	require.NoError(t, err)
	assert.True(t, result.Started)
	assert.Equal(t, 1, result.PlayersCount)

	// Starting again is a no-op state-wise
	again, err := svc.StartQuiz(room.RoomID, room.AdminID)
	require.NoError(t, err)
	assert.True(t, again.Started)
}

func TestSubmitAnswerBeforeStart(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)
	bob, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(room.RoomID, bob.UserID, "q1", "Paris")
	require.Error(t, err)
	assert.Equal(t, game.KindNotStarted, game.KindOf(err), "correct answers are rejected too before start")
}

func TestSubmitAnswerScoresOnce(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)
	bob, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)
	_, err = svc.StartQuiz(room.RoomID, room.AdminID)
	require.NoError(t, err)

	// Case-insensitive match
	first, err := svc.SubmitAnswer(room.RoomID, bob.UserID, "q1", "pArIs")
	require.NoError(t, err)
	assert.True(t, first.Correct)
	assert.Equal(t, 1, first.PointsEarned)
	assert.Equal(t, 1, first.CurrentScore)
	assert.Equal(t, "Paris", first.CorrectAnswer)

	second, err := svc.SubmitAnswer(room.RoomID, bob.UserID, "q1", "Paris")
	require.NoError(t, err)
	assert.True(t, second.AlreadyAnswered)
	assert.False(t, second.Correct)
	assert.Equal(t, 0, second.PointsEarned)
	assert.Equal(t, 1, second.CurrentScore, "score must not change on resubmission")
}

func TestSubmitAnswerWrong(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)
	bob, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)
	_, err = svc.StartQuiz(room.RoomID, room.AdminID)
	require.NoError(t, err)

	result, err := svc.SubmitAnswer(room.RoomID, bob.UserID, "q1", "Rome")
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, 0, result.PointsEarned)
	assert.Equal(t, "Paris", result.CorrectAnswer)
	assert.Equal(t, 0, result.CurrentScore)

	// A wrong attempt doesn't burn the at-most-once credit
	retry, err := svc.SubmitAnswer(room.RoomID, bob.UserID, "q1", "Paris")
	require.NoError(t, err)
	assert.True(t, retry.Correct)
	assert.Equal(t, 1, retry.CurrentScore)
}

func TestSubmitAnswerNotFoundCases(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)
	bob, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)
	_, err = svc.StartQuiz(room.RoomID, room.AdminID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer("ZZZZZ", bob.UserID, "q1", "Paris")
	assert.Equal(t, game.KindNotFound, game.KindOf(err))

	_, err = svc.SubmitAnswer(room.RoomID, "no-such-user", "q1", "Paris")
	assert.Equal(t, game.KindNotFound, game.KindOf(err))

	_, err = svc.SubmitAnswer(room.RoomID, bob.UserID, "no-such-question", "Paris")
	assert.Equal(t, game.KindNotFound, game.KindOf(err))
}

func TestUpdateScore(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)
	bob, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)

	result, err := svc.UpdateScore(room.RoomID, bob.UserID, 5)
	require.NoError(t, err)
	assert.Equal(t, "Bob", result.Username)
	assert.Equal(t, 5, result.NewScore)

	// Negative deltas are allowed and may drive the score below zero
	result, err = svc.UpdateScore(room.RoomID, bob.UserID, -7)
	require.NoError(t, err)
	assert.Equal(t, -2, result.NewScore)

	_, err = svc.UpdateScore(room.RoomID, "no-such-user", 1)
	assert.Equal(t, game.KindNotFound, game.KindOf(err))
}

func TestLeaderboardOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 6)

	bob, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)
	carol, err := svc.JoinRoom(room.RoomID, "Carol")
	require.NoError(t, err)
	dave, err := svc.JoinRoom(room.RoomID, "Dave")
	require.NoError(t, err)

	_, err = svc.UpdateScore(room.RoomID, bob.UserID, 2)
	require.NoError(t, err)
	_, err = svc.UpdateScore(room.RoomID, dave.UserID, 2)
	require.NoError(t, err)
	result, err := svc.UpdateScore(room.RoomID, carol.UserID, 5)
	require.NoError(t, err)

	// Non-increasing scores, ties kept in join order (Bob before Dave)
	entries := result.Leaderboard
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
	assert.Equal(t, "Carol", entries[0].Username)
	assert.Equal(t, "Bob", entries[1].Username)
	assert.Equal(t, "Dave", entries[2].Username)
}

func TestSnapshotFailureSurfaces(t *testing.T) {
	svc, store := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)

	store.SaveErr = errors.New("disk full")

	_, err := svc.JoinRoom(room.RoomID, "Bob")
	require.Error(t, err)
	assert.Equal(t, game.KindSnapshot, game.KindOf(err))

	// Memory stays the source of truth: the join itself was applied
	status, err := svc.RoomStatus(room.RoomID)
	require.NoError(t, err)
	assert.Contains(t, status.Players, "Bob")
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	svc, store := newTestService(t)
	room := createRoom(t, svc, "Trivia1", 4)
	bob, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)
	_, err = svc.StartQuiz(room.RoomID, room.AdminID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(room.RoomID, bob.UserID, "q1", "Paris")
	require.NoError(t, err)

	// A second service over the same store sees everything
	restarted, err := game.NewService(store, stubProvider{})
	require.NoError(t, err)

	result, err := restarted.SubmitAnswer(room.RoomID, bob.UserID, "q1", "Paris")
	require.NoError(t, err)
	assert.True(t, result.AlreadyAnswered, "answered tracking must survive restarts")
	assert.Equal(t, 1, result.CurrentScore)
}

func TestEndToEndScenario(t *testing.T) {
	svc, _ := newTestService(t)

	room := createRoom(t, svc, "Trivia1", 2)

	bob, err := svc.JoinRoom(room.RoomID, "Bob")
	require.NoError(t, err)
	assert.Len(t, bob.Players, 2)

	_, err = svc.JoinRoom(room.RoomID, "Carol")
	assert.Equal(t, game.KindRoomFull, game.KindOf(err))

	started, err := svc.StartQuiz(room.RoomID, room.AdminID)
	require.NoError(t, err)
	assert.True(t, started.Started)

	answer, err := svc.SubmitAnswer(room.RoomID, bob.UserID, "q1", "Paris")
	require.NoError(t, err)
	assert.True(t, answer.Correct)
	assert.Equal(t, 1, answer.CurrentScore)
	require.Len(t, answer.Leaderboard, 2)
	assert.Equal(t, models.LeaderboardEntry{Username: "Bob", Score: 1}, answer.Leaderboard[0])
	assert.Equal(t, models.LeaderboardEntry{Username: room.AdminUsername, Score: 0}, answer.Leaderboard[1])

	again, err := svc.SubmitAnswer(room.RoomID, bob.UserID, "q1", "Paris")
	require.NoError(t, err)
	assert.True(t, again.AlreadyAnswered)
	assert.Equal(t, 1, again.CurrentScore)
}
