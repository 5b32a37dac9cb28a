package model

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is written exactly once, by the grading pass that completes a
// session. A nil *Evaluation on an Answer means the answer is still unscored.
type Evaluation struct {
	Score      float64  `json:"score"`
	Feedback   string   `json:"feedback"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Answer is unique per (session, question index); resubmitting the same index
// updates the existing record in place.
type Answer struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID     uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_answers_session_question" json:"session_id"`
	QuestionIndex int         `gorm:"uniqueIndex:idx_answers_session_question" json:"question_index"`
	QuestionText  string      `gorm:"type:text" json:"question_text"`
	Transcription string      `gorm:"type:text" json:"transcription"`
	Evaluation    *Evaluation `gorm:"type:jsonb;serializer:json" json:"evaluation,omitempty"`
	AnsweredAt    time.Time   `json:"answered_at"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (a *Answer) Scored() bool {
	return a.Evaluation != nil
}
