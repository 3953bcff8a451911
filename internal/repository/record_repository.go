package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
)

// RecordRepository is the per-user document store. Writes are always
// field-scoped: Merge updates exactly one JSON column and leaves every
// sibling column alone. Nothing here ever replaces a whole document.
type RecordRepository struct {
	DB *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{DB: db}
}

// The merge-writable top-level keys of a user document.
const (
	FieldProfile     = "profile"
	FieldSkills      = "skills"
	FieldRepos       = "repos"
	FieldResume      = "resume"
	FieldCareerMatch = "career_match"
	FieldGapAnalysis = "gap_analysis"
	FieldSwot        = "swot"
	FieldRoadmap     = "roadmap"
)

var recordColumns = map[string]bool{
	FieldProfile:     true,
	FieldSkills:      true,
	FieldRepos:       true,
	FieldResume:      true,
	FieldCareerMatch: true,
	FieldGapAnalysis: true,
	FieldSwot:        true,
	FieldRoadmap:     true,
}

func (r *RecordRepository) Get(email string) (*model.UserRecord, error) {
	var rec model.UserRecord
	err := r.DB.Where("email = ?", email).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// EnsureExists creates the document row at signup so later merges always
// have a target. Idempotent.
func (r *RecordRepository) EnsureExists(email, fullName string) error {
	rec := model.UserRecord{Email: email, FullName: fullName}
	return r.DB.Where("email = ?", email).FirstOrCreate(&rec).Error
}

// Merge serializes value and upserts it into the named column only.
func (r *RecordRepository) Merge(email, column string, value interface{}) error {
	if !recordColumns[column] {
		return fmt.Errorf("unknown record column %q", column)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	now := time.Now()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.UserRecord{}).
			Where("email = ?", email).
			Updates(map[string]interface{}{column: datatypes.JSON(raw), "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		return tx.Model(&model.UserRecord{}).Create(map[string]interface{}{
			"email":      email,
			column:       datatypes.JSON(raw),
			"created_at": now,
			"updated_at": now,
		}).Error
	})
}
