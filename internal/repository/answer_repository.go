package repository

import (
	"errors"
	"time"

	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerRepository is the answer ledger: at most one record per
// (session, question index), resubmission updates in place.
type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db}
}

// Upsert never touches the evaluation field. Evaluations are written only by
// the completion transaction.
func (r *AnswerRepository) Upsert(sessionID uuid.UUID, questionIndex int, questionText string, transcription string) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.First(&answer, "session_id = ? AND question_index = ?", sessionID, questionIndex).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		answer = model.Answer{
			SessionID:     sessionID,
			QuestionIndex: questionIndex,
			QuestionText:  questionText,
			Transcription: transcription,
			AnsweredAt:    time.Now(),
		}
		if err := r.db.Create(&answer).Error; err != nil {
			return nil, err
		}
		return &answer, nil
	}
	if err != nil {
		return nil, err
	}

	answer.Transcription = transcription
	answer.AnsweredAt = time.Now()
	if err := r.db.Save(&answer).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *AnswerRepository) ListBySession(sessionID uuid.UUID) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("session_id = ?", sessionID).
		Order("question_index ASC").
		Find(&answers).Error
	return answers, err
}
