package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// QuestionRecord archives a generated question with its embedding so future
// generation runs can steer the model away from near-duplicates.
type QuestionRecord struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID   string          `gorm:"type:varchar(100);index" json:"owner_id"`
	Skill     string          `gorm:"type:varchar(100)" json:"skill"`
	Text      string          `gorm:"type:text" json:"text"`
	Embedding pgvector.Vector `gorm:"type:vector(3072)" json:"embedding"`
	CreatedAt time.Time       `json:"created_at"`
}

func (QuestionRecord) TableName() string {
	return "question_bank"
}
