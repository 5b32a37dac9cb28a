package dto

import (
	"time"

	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/google/uuid"
)

type SubmitAnswerRequest struct {
	Transcription string `json:"transcription"`
}

type SessionDTO struct {
	ID                   uuid.UUID                 `json:"id"`
	InterviewID          uuid.UUID                 `json:"interview_id"`
	CurrentQuestionIndex int                       `json:"current_question_index"`
	Status               string                    `json:"status"`
	StartedAt            *time.Time                `json:"started_at,omitempty"`
	CompletedAt          *time.Time                `json:"completed_at,omitempty"`
	OverallScore         float64                   `json:"overall_score"`
	Summary              string                    `json:"summary,omitempty"`
	Recommendations      []string                  `json:"recommendations,omitempty"`
	SkillBreakdown       []model.SkillScore        `json:"skill_breakdown,omitempty"`
	CategoryBreakdown    []model.CategoryScore     `json:"category_breakdown,omitempty"`
	PerformanceMetrics   *model.PerformanceMetrics `json:"performance_metrics,omitempty"`
}

type StartSessionResponse struct {
	Session  SessionDTO   `json:"session"`
	Question *QuestionDTO `json:"question"`
}

type AdvanceResponse struct {
	Session SessionDTO `json:"session"`
	// Question is null once the question set is exhausted; the caller should
	// complete the session.
	Question *QuestionDTO `json:"question"`
}

type AnswerDTO struct {
	QuestionIndex int               `json:"question_index"`
	QuestionText  string            `json:"question_text"`
	Transcription string            `json:"transcription"`
	Evaluation    *model.Evaluation `json:"evaluation,omitempty"`
	AnsweredAt    time.Time         `json:"answered_at"`
}

type CompleteSessionResponse struct {
	Session SessionDTO  `json:"session"`
	Answers []AnswerDTO `json:"answers"`
}

func NewSessionDTO(session *model.Session) SessionDTO {
	return SessionDTO{
		ID:                   session.ID,
		InterviewID:          session.InterviewID,
		CurrentQuestionIndex: session.CurrentQuestionIndex,
		Status:               session.Status,
		StartedAt:            session.StartedAt,
		CompletedAt:          session.CompletedAt,
		OverallScore:         session.OverallScore,
		Summary:              session.Summary,
		Recommendations:      session.Recommendations,
		SkillBreakdown:       session.SkillBreakdown,
		CategoryBreakdown:    session.CategoryBreakdown,
		PerformanceMetrics:   session.PerformanceMetrics,
	}
}

func NewAnswerDTO(answer *model.Answer) AnswerDTO {
	return AnswerDTO{
		QuestionIndex: answer.QuestionIndex,
		QuestionText:  answer.QuestionText,
		Transcription: answer.Transcription,
		Evaluation:    answer.Evaluation,
		AnsweredAt:    answer.AnsweredAt,
	}
}

func NewAnswerDTOs(answers []model.Answer) []AnswerDTO {
	out := make([]AnswerDTO, 0, len(answers))
	for i := range answers {
		out = append(out, NewAnswerDTO(&answers[i]))
	}
	return out
}
