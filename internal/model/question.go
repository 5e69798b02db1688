package model

// Difficulty is informational only; it never affects scoring.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is the server-side question record. The correct answer must never
// be sent to clients before round resolution; use View for anything
// client-facing.
type Question struct {
	ID               string     `json:"id" bson:"_id"`
	Prompt           string     `json:"prompt" bson:"prompt"`
	CorrectAnswer    string     `json:"correctAnswer" bson:"correctAnswer"`
	IncorrectAnswers []string   `json:"incorrectAnswers" bson:"incorrectAnswers"`
	AllAnswers       []string   `json:"allAnswers" bson:"allAnswers"` // pre-shuffled
	Category         string     `json:"category" bson:"category"`
	Difficulty       Difficulty `json:"difficulty" bson:"difficulty"`
}

// QuestionView is the client-visible shape of a question: the shuffled
// option list with no correctness information.
type QuestionView struct {
	ID         string     `json:"id"`
	Prompt     string     `json:"prompt"`
	AllAnswers []string   `json:"allAnswers"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// View strips the question down to what clients are allowed to see.
func (q *Question) View() *QuestionView {
	return &QuestionView{
		ID:         q.ID,
		Prompt:     q.Prompt,
		AllAnswers: q.AllAnswers,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}
