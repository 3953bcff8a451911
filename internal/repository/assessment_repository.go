package repository

import (
	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

// FindByOwner looks an assessment up by id scoped to its owner, so one
// user can never submit against another user's assessment.
func (r *AssessmentRepository) FindByOwner(id, email string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Where("id = ? AND user_email = ?", id, email).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveSubmission persists grading output; it never touches the immutable
// question set.
func (r *AssessmentRepository) SaveSubmission(a *model.Assessment) error {
	return r.DB.Model(a).
		Select("answers", "score", "total_mcq", "mcq_percentage", "terminated", "submitted", "submitted_at").
		Updates(a).
		Error
}

func (r *AssessmentRepository) ListByUser(email string, limit int) ([]model.Assessment, error) {
	var list []model.Assessment
	err := r.DB.Where("user_email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
