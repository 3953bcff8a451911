package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
)

// recordStore is the slice of the document repository the dashboard
// needs. *repository.RecordRepository satisfies it.
type recordStore interface {
	Get(email string) (*model.UserRecord, error)
	Merge(email, column string, value interface{}) error
}

type DashboardService struct {
	Records recordStore
	GitHub  *GitHubService
	Resume  *ResumeService
	Storage *StorageService
}

func NewDashboardService(records recordStore, gh *GitHubService, resume *ResumeService, storage *StorageService) *DashboardService {
	return &DashboardService{Records: records, GitHub: gh, Resume: resume, Storage: storage}
}

// SaveSkills replaces the skills key of the document with the given list.
func (s *DashboardService) SaveSkills(email string, skills []model.Skill) ([]model.Skill, error) {
	if skills == nil {
		skills = []model.Skill{}
	}
	for i := range skills {
		skills[i].Name = strings.TrimSpace(skills[i].Name)
	}
	if err := s.Records.Merge(email, repository.FieldSkills, skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// AddRepo fetches metadata for the URL and prepends the summary to the
// user's repo list. A failed fetch still records a partial entry; only a
// malformed URL is rejected.
func (s *DashboardService) AddRepo(ctx context.Context, email, rawURL string) (model.RepoSummary, error) {
	summary, err := s.GitHub.FetchRepo(ctx, rawURL)
	if err != nil {
		return model.RepoSummary{}, err
	}

	repos := []model.RepoSummary{}
	if rec, err := s.Records.Get(email); err == nil {
		repos = rec.RepoList()
	}
	repos = append([]model.RepoSummary{summary}, repos...)

	if err := s.Records.Merge(email, repository.FieldRepos, repos); err != nil {
		return model.RepoSummary{}, err
	}
	return summary, nil
}

// UploadResume parses the PDF, archives the raw bytes when storage is
// configured, and stores the result under the resume key. Archiving is
// best effort; a storage failure never fails the upload.
func (s *DashboardService) UploadResume(ctx context.Context, email, fileName string, data []byte) (model.ResumeRecord, error) {
	if len(data) == 0 {
		return model.ResumeRecord{}, util.ErrNoResumeFile
	}
	if !strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return model.ResumeRecord{}, util.ErrNotPDF
	}

	parsed := s.Resume.Parse(ctx, data)

	record := model.ResumeRecord{
		FileName:   fileName,
		Parsed:     parsed,
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if s.Storage != nil && s.Storage.Enabled() {
		key, err := s.Storage.ArchiveResume(ctx, email, fileName, data)
		if err != nil {
			logger.L().Warn("failed to archive resume",
				zap.String("email", email), zap.Error(err))
		} else {
			record.StorageKey = key
		}
	}

	if err := s.Records.Merge(email, repository.FieldResume, record); err != nil {
		return model.ResumeRecord{}, err
	}
	return record, nil
}

// Get aggregates skills, repos and resume. A user with no document yet
// gets an empty dashboard, not an error.
func (s *DashboardService) Get(email string) (model.Dashboard, error) {
	rec, err := s.Records.Get(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Dashboard{Skills: []model.Skill{}, Repos: []model.RepoSummary{}}, nil
		}
		return model.Dashboard{}, err
	}

	dash := rec.DashboardData()
	if dash.Skills == nil {
		dash.Skills = []model.Skill{}
	}
	if dash.Repos == nil {
		dash.Repos = []model.RepoSummary{}
	}
	return dash, nil
}
