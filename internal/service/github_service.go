package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/util"
	"skillbridge_backend/pkg/logger"
)

var repoURLPattern = regexp.MustCompile(`github\.com/([^/\s]+)/([^/\s?#]+)`)

// GitHubService fetches public repository metadata. Failures never fail
// the caller's request; they degrade to a partial summary.
type GitHubService struct {
	client *resty.Client
	cfg    *config.Config
}

func NewGitHubService(cfg *config.Config) *GitHubService {
	client := resty.New().
		SetBaseURL(cfg.GitHub.BaseURL).
		SetTimeout(time.Duration(cfg.GitHub.TimeoutSeconds)*time.Second).
		SetHeader("Accept", "application/vnd.github+json")
	return &GitHubService{client: client, cfg: cfg}
}

// request snapshots the token per call so a config reload takes effect
// without a restart.
func (s *GitHubService) request(ctx context.Context) *resty.Request {
	req := s.client.R().SetContext(ctx)
	if token := s.cfg.GitHubToken(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// ParseRepoURL extracts owner and repo name from a GitHub URL.
func ParseRepoURL(rawURL string) (owner, name string, err error) {
	m := repoURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", "", util.ErrInvalidRepoURL
	}
	return m[1], strings.TrimSuffix(m[2], ".git"), nil
}

type repoResponse struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	StargazersCount int      `json:"stargazers_count"`
	Language        string   `json:"language"`
	PushedAt        string   `json:"pushed_at"`
	Topics          []string `json:"topics"`
}

// FetchRepo summarizes one repository. On any upstream failure the summary
// still carries name and URL, with the description noting what happened.
func (s *GitHubService) FetchRepo(ctx context.Context, rawURL string) (model.RepoSummary, error) {
	owner, name, err := ParseRepoURL(rawURL)
	if err != nil {
		return model.RepoSummary{}, err
	}

	summary := model.RepoSummary{
		URL:       rawURL,
		Name:      name,
		ScrapedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var repo repoResponse
	resp, err := s.request(ctx).
		SetResult(&repo).
		Get(fmt.Sprintf("/repos/%s/%s", owner, name))
	if err != nil || resp.IsError() {
		status := 0
		if resp != nil {
			status = resp.StatusCode()
		}
		logger.L().Warn("github repo fetch failed",
			zap.String("owner", owner), zap.String("repo", name),
			zap.Int("status", status), zap.Error(err))
		summary.Description = fmt.Sprintf("Could not fetch repo details (HTTP %d)", status)
		return summary, nil
	}

	summary.Name = repo.Name
	summary.Description = repo.Description
	summary.Stars = repo.StargazersCount
	summary.Language = repo.Language
	summary.LastCommit = repo.PushedAt
	summary.TechStack = s.techStack(ctx, owner, name, repo)
	return summary, nil
}

// techStack merges the language breakdown with repo topics, languages
// first, largest share first.
func (s *GitHubService) techStack(ctx context.Context, owner, name string, repo repoResponse) []string {
	var stack []string
	seen := make(map[string]bool)
	add := func(item string) {
		if item != "" && !seen[strings.ToLower(item)] {
			seen[strings.ToLower(item)] = true
			stack = append(stack, item)
		}
	}

	var languages map[string]int64
	resp, err := s.request(ctx).
		SetResult(&languages).
		Get(fmt.Sprintf("/repos/%s/%s/languages", owner, name))
	if err == nil && !resp.IsError() {
		names := make([]string, 0, len(languages))
		for lang := range languages {
			names = append(names, lang)
		}
		sort.Slice(names, func(i, j int) bool {
			if languages[names[i]] != languages[names[j]] {
				return languages[names[i]] > languages[names[j]]
			}
			return names[i] < names[j]
		})
		for _, lang := range names {
			add(lang)
		}
	} else {
		add(repo.Language)
	}

	for _, topic := range repo.Topics {
		add(topic)
	}
	return stack
}
