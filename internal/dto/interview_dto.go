package dto

import (
	"time"

	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/google/uuid"
)

type CreateInterviewRequest struct {
	Skills            []string `json:"skills"`
	QuestionsPerSkill int      `json:"questions_per_skill"`
	Difficulty        string   `json:"difficulty"`
	Context           string   `json:"context"`
}

// QuestionDTO deliberately omits the expected answer; that field only feeds
// the grader.
type QuestionDTO struct {
	Skill      string `json:"skill"`
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

type InterviewDTO struct {
	ID                uuid.UUID     `json:"id"`
	Skills            []string      `json:"skills"`
	Difficulty        string        `json:"difficulty"`
	QuestionsPerSkill int           `json:"questions_per_skill"`
	Context           string        `json:"context,omitempty"`
	Questions         []QuestionDTO `json:"questions"`
	TotalQuestions    int           `json:"total_questions"`
	CreatedAt         time.Time     `json:"created_at"`
}

func NewQuestionDTO(q *model.Question) *QuestionDTO {
	if q == nil {
		return nil
	}
	return &QuestionDTO{
		Skill:      q.Skill,
		Text:       q.Text,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

func NewInterviewDTO(interview *model.Interview) InterviewDTO {
	questions := make([]QuestionDTO, 0, len(interview.Questions))
	for i := range interview.Questions {
		questions = append(questions, *NewQuestionDTO(&interview.Questions[i]))
	}
	return InterviewDTO{
		ID:                interview.ID,
		Skills:            interview.Skills,
		Difficulty:        interview.Difficulty,
		QuestionsPerSkill: interview.QuestionsPerSkill,
		Context:           interview.Context,
		Questions:         questions,
		TotalQuestions:    interview.TotalQuestions,
		CreatedAt:         interview.CreatedAt,
	}
}
