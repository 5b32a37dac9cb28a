package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusNotStarted = "not_started"
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
)

type SkillScore struct {
	Skill         string  `json:"skill"`
	AverageScore  float64 `json:"average_score"`
	QuestionCount int     `json:"question_count"`
}

type CategoryScore struct {
	Category      string  `json:"category"`
	AverageScore  float64 `json:"average_score"`
	QuestionCount int     `json:"question_count"`
}

type PerformanceMetrics struct {
	MinScore    float64 `json:"min_score"`
	MaxScore    float64 `json:"max_score"`
	MedianScore float64 `json:"median_score"`
}

// Session tracks one candidate's run through an interview's question set.
// Invariant: 0 <= CurrentQuestionIndex <= interview.TotalQuestions. Once
// Status reaches completed the record is never mutated again.
type Session struct {
	ID                   uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	InterviewID          uuid.UUID           `gorm:"type:uuid;index" json:"interview_id"`
	OwnerID              string              `gorm:"type:varchar(100);index" json:"owner_id"`
	CurrentQuestionIndex int                 `json:"current_question_index"`
	Status               string              `gorm:"type:varchar(50)" json:"status"`
	StartedAt            *time.Time          `json:"started_at,omitempty"`
	CompletedAt          *time.Time          `json:"completed_at,omitempty"`
	OverallScore         float64             `gorm:"type:float" json:"overall_score"`
	Summary              string              `gorm:"type:text" json:"summary"`
	Recommendations      []string            `gorm:"type:jsonb;serializer:json" json:"recommendations"`
	SkillBreakdown       []SkillScore        `gorm:"type:jsonb;serializer:json" json:"skill_breakdown"`
	CategoryBreakdown    []CategoryScore     `gorm:"type:jsonb;serializer:json" json:"category_breakdown"`
	PerformanceMetrics   *PerformanceMetrics `gorm:"type:jsonb;serializer:json" json:"performance_metrics,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

func (s *Session) Completed() bool {
	return s.Status == SessionStatusCompleted
}
