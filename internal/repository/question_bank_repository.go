package repository

import (
	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type QuestionBankRepository struct {
	db *gorm.DB
}

func NewQuestionBankRepository(db *gorm.DB) *QuestionBankRepository {
	return &QuestionBankRepository{db}
}

func (r *QuestionBankRepository) Add(records []model.QuestionRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Create(&records).Error
}

// SearchSimilar returns the owner's nearest archived questions by embedding
// distance.
func (r *QuestionBankRepository) SearchSimilar(ownerID string, embedding pgvector.Vector, topK int) ([]model.QuestionRecord, error) {
	var records []model.QuestionRecord

	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM question_bank
        WHERE owner_id = ?
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, ownerID, embedding, topK).Scan(&records).Error

	return records, err
}
