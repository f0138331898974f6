package questions

import (
	"fmt"

	"Quizdom/models"

	"github.com/google/uuid"
)

// fallbackBank is the fixed question set served when the provider fails.
// Fresh ids are assigned per room so answered-question tracking never
// collides across rooms.
var fallbackBank = []models.Question{
	{
		Text:          "Which platform introduced Stories first?",
		Options:       []string{"Facebook", "Instagram", "Snapchat", "Twitter"},
		CorrectAnswer: "Snapchat",
	},
	{
		Text:          "Which social media platform is known for its 280-character limit?",
		Options:       []string{"Facebook", "Instagram", "Snapchat", "Twitter"},
		CorrectAnswer: "Twitter",
	},
	{
		Text:          "Which company owns both Instagram and WhatsApp?",
		Options:       []string{"Google", "Meta", "Microsoft", "Amazon"},
		CorrectAnswer: "Meta",
	},
	{
		Text:          "What year was YouTube founded?",
		Options:       []string{"2003", "2005", "2007", "2009"},
		CorrectAnswer: "2005",
	},
	{
		Text:          "Which platform popularized short vertical videos?",
		Options:       []string{"LinkedIn", "TikTok", "Reddit", "Pinterest"},
		CorrectAnswer: "TikTok",
	},
}

// Fallback returns up to count fallback questions, topped up with generic
// topic questions when the bank runs short.
func Fallback(topic string, count int) []models.Question {
	questions := make([]models.Question, 0, count)
	for i := 0; i < count; i++ {
		var q models.Question
		if i < len(fallbackBank) {
			q = fallbackBank[i]
		} else {
			q = models.Question{
				Text:          fmt.Sprintf("Question %d about %s?", i+1, topic),
				Options:       []string{"Option A", "Option B", "Option C", "Option D"},
				CorrectAnswer: "Option A",
			}
		}
		q.ID = uuid.NewString()
		questions = append(questions, q)
	}
	return questions
}
