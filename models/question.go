package models

// Question is a single generated quiz question. Questions are owned by the
// room that generated them and never change once created.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Category      string   `json:"category,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuestionView is the projection sent to players: the correct answer
// stays on the server.
type QuestionView struct {
	QuestionID string   `json:"question_id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
}

// View returns the player-facing projection of q
func (q Question) View() QuestionView {
	return QuestionView{
		QuestionID: q.ID,
		Text:       q.Text,
		Options:    q.Options,
	}
}

// QuestionViews projects a whole question list for players
func QuestionViews(questions []Question) []QuestionView {
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = q.View()
	}
	return views
}
