package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is immutable once generated. Sessions reference questions by
// index into the owning Interview, never by copy.
type Question struct {
	Skill          string `json:"skill"`
	Text           string `json:"text"`
	Difficulty     string `json:"difficulty"`
	Category       string `json:"category"`
	ExpectedAnswer string `json:"expected_answer,omitempty"`
}

type Interview struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID           string     `gorm:"type:varchar(100);index" json:"owner_id"`
	Skills            []string   `gorm:"type:jsonb;serializer:json" json:"skills"`
	Difficulty        string     `gorm:"type:varchar(50)" json:"difficulty"`
	QuestionsPerSkill int        `json:"questions_per_skill"`
	Context           string     `gorm:"type:text" json:"context"`
	Questions         []Question `gorm:"type:jsonb;serializer:json" json:"questions"`
	TotalQuestions    int        `json:"total_questions"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
