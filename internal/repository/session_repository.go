package repository

import (
	"errors"

	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/model"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db}
}

func (r *SessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *SessionRepository) FindByID(id string) (*model.Session, error) {
	var session model.Session
	err := r.db.First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("session not found")
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindByOwner(ownerID string, page int, pageSize int) ([]model.Session, int64, error) {
	var total int64
	if err := r.db.Model(&model.Session{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []model.Session
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&sessions).Error
	return sessions, total, err
}

func (r *SessionRepository) Update(session *model.Session) error {
	return r.db.Save(session).Error
}

// CompleteWithAnswers persists the completed-session transition together with
// every graded answer in one transaction. Either the whole completion lands
// or none of it does, which is what keeps a failed completion retriable.
func (r *SessionRepository) CompleteWithAnswers(session *model.Session, answers []model.Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range answers {
			if err := tx.Save(&answers[i]).Error; err != nil {
				return err
			}
		}
		return tx.Save(session).Error
	})
}
