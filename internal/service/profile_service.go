package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
)

type ProfileService struct {
	Records *repository.RecordRepository
}

func NewProfileService(records *repository.RecordRepository) *ProfileService {
	return &ProfileService{Records: records}
}

// Setup merge-writes the profile key of the user's document. College,
// branch and career interest are mandatory; the rest is optional.
func (s *ProfileService) Setup(email string, p model.Profile) (model.Profile, error) {
	p.College = strings.TrimSpace(p.College)
	p.Branch = strings.TrimSpace(p.Branch)
	p.CareerInterest = strings.TrimSpace(p.CareerInterest)

	if p.College == "" || p.Branch == "" || p.CareerInterest == "" {
		return model.Profile{}, util.ErrMissingProfile
	}

	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.Records.Merge(email, repository.FieldProfile, p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

func (s *ProfileService) Get(email string) (model.Profile, error) {
	rec, err := s.Records.Get(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Profile{}, util.ErrUserNotFound
		}
		return model.Profile{}, err
	}
	return rec.ProfileData(), nil
}
