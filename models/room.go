package models

import "sort"

/*
 * 'Room' is a single quiz session, keyed by its short join code. It owns the
 * generated question set, the player roster (in join order), per-player
 * scores and the per-player record of already-credited questions.
 */
type Room struct {
	ID         string     `json:"id"` // the 5-character room code
	Name       string     `json:"name"`
	Topic      string     `json:"topic"`
	MaxPlayers int        `json:"max_players"`
	Questions  []Question `json:"questions"`
	Players    []string   `json:"players"`
	AdminID    string     `json:"admin_id"`

	// CurrentQuestion is persisted for the clients but no operation
	// advances it yet (question-by-question progression is not built).
	CurrentQuestion int `json:"current_question"`

	Scores    map[string]int `json:"scores"`
	Started   bool           `json:"started"`
	CreatedAt int64          `json:"created_at"`

	// AnsweredCorrectly maps a player's username to the ids of the
	// questions that player has already been credited for.
	AnsweredCorrectly map[string]*StringSet `json:"answered_correctly"`
}

// LeaderboardEntry is one row of a room leaderboard.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// RoomStatus is the progress block returned by join and status responses.
type RoomStatus struct {
	Started         bool `json:"started"`
	CurrentQuestion int  `json:"current_question"`
	TotalQuestions  int  `json:"total_questions"`
	WaitingForAdmin bool `json:"waiting_for_admin"`
}

// HasPlayer reports whether username is on the room's roster
func (r *Room) HasPlayer(username string) bool {
	for _, p := range r.Players {
		if p == username {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster has reached the configured capacity
func (r *Room) IsFull() bool {
	return len(r.Players) >= r.MaxPlayers
}

// Status builds the progress block for this room
func (r *Room) Status() RoomStatus {
	return RoomStatus{
		Started:         r.Started,
		CurrentQuestion: r.CurrentQuestion,
		TotalQuestions:  len(r.Questions),
		WaitingForAdmin: !r.Started,
	}
}

// Leaderboard renders the score map ordered by descending score. Ties keep
// the players' join order, so the ordering is stable between calls.
func (r *Room) Leaderboard() []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(r.Players))
	for _, username := range r.Players {
		entries = append(entries, LeaderboardEntry{
			Username: username,
			Score:    r.Scores[username],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// FindQuestion looks a question up by id within the room's own question set
func (r *Room) FindQuestion(questionID string) (Question, bool) {
	for _, q := range r.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}
