package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	game_constants "Quizdom/constants/game"
	"Quizdom/models"
	"Quizdom/services/questions"
	"Quizdom/services/snapshot"

	"github.com/google/uuid"
)

/*
 * 'Service' is the room/session core: the in-memory registries of rooms and
 * users, guarded by a single RWMutex. Every mutating operation runs its full
 * read-modify-write under the write lock and finishes with a synchronous
 * snapshot write, so no two operations can interleave on the same room.
 */
type Service struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room
	users map[string]*models.User

	store    snapshot.Store
	provider questions.Provider
}

// NewService loads the persisted registries from the snapshot store
func NewService(store snapshot.Store, provider questions.Provider) (*Service, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading snapshot: %v", err)
	}
	return &Service{
		rooms:    state.Rooms,
		users:    state.Users,
		store:    store,
		provider: provider,
	}, nil
}

// persist rewrites the snapshot. Callers must hold the write lock.
// A failed write surfaces as a snapshot-kind error after the in-memory
// mutation has been applied; memory stays the source of truth and the next
// successful save catches up.
func (s *Service) persist() error {
	state := &snapshot.State{Rooms: s.rooms, Users: s.users}
	if err := s.store.Save(state); err != nil {
		return newError(KindSnapshot, "failed to persist state: %v", err)
	}
	return nil
}

type CreateRoomInput struct {
	Name       string
	Topic      string
	MaxPlayers int
	Rounds     int
}

type CreateRoomResult struct {
	RoomID         string
	AdminID        string
	AdminUsername  string
	Topic          string
	QuestionsCount int
	UsedFallback   bool
}

// CreateRoom generates a question set for the topic and allocates a new room
// with the caller as admin. Provider failures never fail the request: the
// room is created with fallback questions instead.
func (s *Service) CreateRoom(ctx context.Context, input CreateRoomInput) (*CreateRoomResult, error) {
	if input.MaxPlayers <= 0 {
		input.MaxPlayers = game_constants.DefaultMaxPlayers
	}
	if input.Rounds <= 0 {
		input.Rounds = game_constants.DefaultRounds
	}

	// Fail fast on duplicate names before spending a provider call. The
	// check repeats under the write lock below in case of a race.
	s.mu.RLock()
	nameTaken := s.roomNameTaken(input.Name)
	s.mu.RUnlock()
	if nameTaken {
		return nil, newError(KindConflict, "Room name already exists")
	}

	// The provider call is the only latent step; it runs outside the lock
	result := s.provider.Generate(ctx, input.Topic, input.Rounds)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roomNameTaken(input.Name) {
		return nil, newError(KindConflict, "Room name already exists")
	}

	roomCode := s.allocateRoomCode()

	adminID := uuid.NewString()
	adminUsername := "Admin-" + roomCode[:3]

	s.users[adminID] = &models.User{
		ID:          adminID,
		Username:    adminUsername,
		CurrentRoom: roomCode,
		Score:       0,
		IsAdmin:     true,
		JoinedAt:    time.Now(),
	}

	s.rooms[roomCode] = &models.Room{
		ID:         roomCode,
		Name:       input.Name,
		Topic:      input.Topic,
		MaxPlayers: input.MaxPlayers,
		Questions:  result.Questions,
		Players:    []string{adminUsername},
		AdminID:    adminID,
		Scores:     map[string]int{adminUsername: 0},
		Started:    false,
		CreatedAt:  time.Now().Unix(),
		AnsweredCorrectly: map[string]*models.StringSet{
			adminUsername: models.NewStringSet(),
		},
	}

	if err := s.persist(); err != nil {
		return nil, err
	}

	return &CreateRoomResult{
		RoomID:         roomCode,
		AdminID:        adminID,
		AdminUsername:  adminUsername,
		Topic:          input.Topic,
		QuestionsCount: len(result.Questions),
		UsedFallback:   result.FromFallback,
	}, nil
}

func (s *Service) roomNameTaken(name string) bool {
	for _, room := range s.rooms {
		if room.Name == name {
			return true
		}
	}
	return false
}

type JoinRoomResult struct {
	UserID      string
	Username    string
	IsAdmin     bool
	Rejoined    bool
	RoomName    string
	Players     []string
	Questions   []models.QuestionView
	RoomStatus  models.RoomStatus
	Leaderboard []models.LeaderboardEntry
}

// JoinRoom adds a player to a room. Joining again with a username that
// already belongs to a user of that room is idempotent and returns the
// existing identity; a username held by no resolvable user is a conflict.
func (s *Service) JoinRoom(roomCode, username string) (*JoinRoomResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomCode]
	if !ok {
		return nil, newError(KindNotFound, "Room not found")
	}

	if room.IsFull() {
		return nil, newError(KindRoomFull, "Room is full")
	}

	if room.HasPlayer(username) {
		if existing := s.findRoomUser(roomCode, username); existing != nil {
			return &JoinRoomResult{
				UserID:      existing.ID,
				Username:    username,
				IsAdmin:     existing.IsAdmin,
				Rejoined:    true,
				RoomName:    room.Name,
				Players:     append([]string(nil), room.Players...),
				Questions:   models.QuestionViews(room.Questions),
				RoomStatus:  room.Status(),
				Leaderboard: room.Leaderboard(),
			}, nil
		}
		return nil, newError(KindConflict, "Username already taken in this room")
	}

	userID := uuid.NewString()
	s.users[userID] = &models.User{
		ID:          userID,
		Username:    username,
		CurrentRoom: roomCode,
		Score:       0,
		IsAdmin:     false,
		JoinedAt:    time.Now(),
	}

	room.Players = append(room.Players, username)
	room.Scores[username] = 0
	room.AnsweredCorrectly[username] = models.NewStringSet()

	if err := s.persist(); err != nil {
		return nil, err
	}

	return &JoinRoomResult{
		UserID:      userID,
		Username:    username,
		IsAdmin:     false,
		RoomName:    room.Name,
		Players:     append([]string(nil), room.Players...),
		Questions:   models.QuestionViews(room.Questions),
		RoomStatus:  room.Status(),
		Leaderboard: room.Leaderboard(),
	}, nil
}

// findRoomUser resolves a username within a room to its user record.
// Callers must hold at least the read lock.
func (s *Service) findRoomUser(roomCode, username string) *models.User {
	for _, user := range s.users {
		if user.Username == username && user.CurrentRoom == roomCode {
			return user
		}
	}
	return nil
}

type StartQuizResult struct {
	RoomID       string
	Started      bool
	PlayersCount int
}

// StartQuiz flips the room to started. Only the admin id handed out at room
// creation may do this; re-starting an already started room is a no-op.
func (s *Service) StartQuiz(roomCode, adminID string) (*StartQuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomCode]
	if !ok {
		return nil, newError(KindNotFound, "Room not found")
	}
	if room.AdminID != adminID {
		return nil, newError(KindForbidden, "Only the admin can start the quiz")
	}

	room.Started = true

	if err := s.persist(); err != nil {
		return nil, err
	}

	return &StartQuizResult{
		RoomID:       roomCode,
		Started:      true,
		PlayersCount: len(room.Players),
	}, nil
}

type SubmitAnswerResult struct {
	Correct         bool
	AlreadyAnswered bool
	CorrectAnswer   string
	PointsEarned    int
	CurrentScore    int
	Leaderboard     []models.LeaderboardEntry
}

// SubmitAnswer checks an answer and credits the player at most once per
// question. A repeat submission is accepted but reports AlreadyAnswered with
// no score change. Matching is a case-insensitive exact comparison.
func (s *Service) SubmitAnswer(roomCode, userID, questionID, answer string) (*SubmitAnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomCode]
	if !ok {
		return nil, newError(KindNotFound, "Room not found")
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, newError(KindNotFound, "User not found")
	}

	if !room.Started {
		return nil, newError(KindNotStarted, "Quiz hasn't started yet. Waiting for admin to start.")
	}

	question, ok := room.FindQuestion(questionID)
	if !ok {
		return nil, newError(KindNotFound, "Question not found")
	}

	username := user.Username
	answered, ok := room.AnsweredCorrectly[username]
	if !ok {
		answered = models.NewStringSet()
		room.AnsweredCorrectly[username] = answered
	}

	if answered.Contains(questionID) {
		return &SubmitAnswerResult{
			Correct:         false,
			AlreadyAnswered: true,
			CorrectAnswer:   question.CorrectAnswer,
			PointsEarned:    0,
			CurrentScore:    room.Scores[username],
			Leaderboard:     room.Leaderboard(),
		}, nil
	}

	correct := strings.EqualFold(answer, question.CorrectAnswer)
	points := 0
	if correct {
		points = 1
		room.Scores[username] = room.Scores[username] + 1
		user.Score++
		answered.Add(questionID)
	}

	if err := s.persist(); err != nil {
		return nil, err
	}

	return &SubmitAnswerResult{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		PointsEarned:  points,
		CurrentScore:  room.Scores[username],
		Leaderboard:   room.Leaderboard(),
	}, nil
}

type UpdateScoreResult struct {
	Username    string
	NewScore    int
	Leaderboard []models.LeaderboardEntry
}

// UpdateScore applies a signed point delta directly, independent of any
// question. Scores may go negative; no bound checking is done.
func (s *Service) UpdateScore(roomCode, userID string, points int) (*UpdateScoreResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomCode]
	if !ok {
		return nil, newError(KindNotFound, "Room not found")
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, newError(KindNotFound, "User not found")
	}

	username := user.Username
	room.Scores[username] = room.Scores[username] + points
	user.Score += points

	if err := s.persist(); err != nil {
		return nil, err
	}

	return &UpdateScoreResult{
		Username:    username,
		NewScore:    room.Scores[username],
		Leaderboard: room.Leaderboard(),
	}, nil
}

type RoomStatusResult struct {
	Name            string
	Topic           string
	Players         []string
	CurrentQuestion int
	TotalQuestions  int
	Scores          map[string]int
	Started         bool
	AdminID         string
	WaitingForAdmin bool
	Leaderboard     []models.LeaderboardEntry
}

// RoomStatus is a pure read of a room's current state
func (s *Service) RoomStatus(roomCode string) (*RoomStatusResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomCode]
	if !ok {
		return nil, newError(KindNotFound, "Room not found")
	}

	scores := make(map[string]int, len(room.Scores))
	for username, score := range room.Scores {
		scores[username] = score
	}

	return &RoomStatusResult{
		Name:            room.Name,
		Topic:           room.Topic,
		Players:         append([]string(nil), room.Players...),
		CurrentQuestion: room.CurrentQuestion,
		TotalQuestions:  len(room.Questions),
		Scores:          scores,
		Started:         room.Started,
		AdminID:         room.AdminID,
		WaitingForAdmin: !room.Started,
		Leaderboard:     room.Leaderboard(),
	}, nil
}

type LeaderboardResult struct {
	RoomName    string
	Leaderboard []models.LeaderboardEntry
}

// Leaderboard is a pure read of a room's ranking
func (s *Service) Leaderboard(roomCode string) (*LeaderboardResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomCode]
	if !ok {
		return nil, newError(KindNotFound, "Room not found")
	}

	return &LeaderboardResult{
		RoomName:    room.Name,
		Leaderboard: room.Leaderboard(),
	}, nil
}
