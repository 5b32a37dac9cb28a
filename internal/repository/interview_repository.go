package repository

import (
	"errors"

	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

// FindByID filters on owner as well as id, so a missing interview and an
// interview owned by someone else are indistinguishable to the caller.
func (r *InterviewRepository) FindByID(id string, ownerID string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.First(&interview, "id = ? AND owner_id = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("interview not found")
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepository) FindByOwner(ownerID string, page int, pageSize int) ([]model.Interview, int64, error) {
	var total int64
	if err := r.db.Model(&model.Interview{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interviews []model.Interview
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&interviews).Error
	return interviews, total, err
}
