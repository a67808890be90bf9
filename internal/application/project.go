package application

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/devshare/devshare-go/internal/domain/project"
	"github.com/devshare/devshare-go/internal/repository"
	"github.com/devshare/devshare-go/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	latestPageSize      = 5
	trendingLimit       = 5
	searchPageSize      = 2
	userWrittenPageSize = 5
	maxDesLength        = 200
	maxTags             = 10
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrPostCountUpdate = errors.New("Failed to update total posts number")

	ErrTitleRequired      = errors.New("You must provide a title")
	ErrDesInvalid         = errors.New("You must provide project description under 200 characters")
	ErrBannerRequired     = errors.New("You must provide project banner to publish it")
	ErrRepositoryRequired = errors.New("You must provide project repository to publish it")
	ErrContentRequired    = errors.New("There must be some project content to publish it")
	ErrTagsInvalid        = errors.New("Provide tags in order to publish the project, Maximum 10")
	ErrSearchCriteria     = errors.New("Provide one of tag, query or author to search")
)

var validationErrs = []error{
	ErrTitleRequired,
	ErrDesInvalid,
	ErrBannerRequired,
	ErrRepositoryRequired,
	ErrContentRequired,
	ErrTagsInvalid,
	ErrSearchCriteria,
}

// IsValidationErr reports whether err belongs to the closed set of
// input validation failures, publish and search alike (wire code
// "validation", HTTP 403).
func IsValidationErr(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

type contentBlocks struct {
	Blocks []json.RawMessage `json:"blocks"`
}

func validatePublish(input project.CreateProjectDTO) error {
	if len(input.Des) == 0 || len(input.Des) > maxDesLength {
		return ErrDesInvalid
	}
	if len(input.Banner) == 0 {
		return ErrBannerRequired
	}
	if len(input.Repository) == 0 {
		return ErrRepositoryRequired
	}

	var content contentBlocks
	if len(input.Content) == 0 {
		return ErrContentRequired
	}
	if err := json.Unmarshal(input.Content, &content); err != nil || len(content.Blocks) == 0 {
		return ErrContentRequired
	}

	if len(input.Tags) == 0 || len(input.Tags) > maxTags {
		return ErrTagsInvalid
	}
	return nil
}

// CreateProject validates the payload, derives the slug and persists the
// project. The author's post counter bump is a follow-up write: if it
// fails the project still exists (matches the original contract).
func (s *ProjectService) CreateProject(authorID uint, input project.CreateProjectDTO) (string, error) {
	if len(strings.TrimSpace(input.Title)) == 0 {
		return "", ErrTitleRequired
	}

	if !input.Draft {
		if err := validatePublish(input); err != nil {
			return "", err
		}
	}

	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		tags = append(tags, strings.ToLower(tag))
	}

	p := project.Project{
		ProjectID:  utils.MakeProjectID(input.Title),
		Title:      input.Title,
		Des:        input.Des,
		Banner:     input.Banner,
		ProjectURL: input.ProjectURL,
		Repository: input.Repository,
		Tags:       tags,
		Content:    datatypes.JSON(input.Content),
		AuthorID:   authorID,
		Draft:      input.Draft,
	}

	if err := s.Repos.Project.CreateProject(&p); err != nil {
		return "", err
	}

	if !input.Draft {
		if err := s.Repos.User.IncrementTotalPosts(authorID, 1); err != nil {
			return p.ProjectID, ErrPostCountUpdate
		}
	}

	return p.ProjectID, nil
}

func (s *ProjectService) GetAllProjects(page int) ([]project.PreviewDTO, error) {
	projects, err := s.Repos.Project.ListLatest(page, latestPageSize)
	if err != nil {
		return nil, err
	}
	return project.Previews(projects), nil
}

func (s *ProjectService) TrendingProjects() ([]project.TrendingDTO, error) {
	projects, err := s.Repos.Project.ListTrending(trendingLimit)
	if err != nil {
		return nil, err
	}
	out := make([]project.TrendingDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, project.Trending(p))
	}
	return out, nil
}

func searchFilter(input project.SearchInput) (project.SearchFilter, error) {
	f := project.SearchFilter{
		Tag:              input.Tag,
		Query:            input.Query,
		Author:           input.Author,
		EliminateProject: input.EliminateProject,
	}
	if f.Tag == "" && f.Query == "" && f.Author == 0 {
		return f, ErrSearchCriteria
	}
	return f, nil
}

func (s *ProjectService) SearchProjects(input project.SearchInput) ([]project.PreviewDTO, error) {
	f, err := searchFilter(input)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = searchPageSize
	}

	projects, err := s.Repos.Project.Search(f, input.Page, limit)
	if err != nil {
		return nil, err
	}
	return project.Previews(projects), nil
}

func (s *ProjectService) AllLatestProjectsCount() (int64, error) {
	return s.Repos.Project.CountLatest()
}

func (s *ProjectService) SearchProjectsCount(input project.SearchInput) (int64, error) {
	f, err := searchFilter(input)
	if err != nil {
		return 0, err
	}
	return s.Repos.Project.CountSearch(f)
}

// GetProject fetches one project by slug, bumping its read counter as
// part of the fetch. The author's aggregate read counter is best-effort:
// a failure there is logged and never fails the primary response.
func (s *ProjectService) GetProject(projectID string) (project.DetailDTO, error) {
	p, err := s.Repos.Project.IncrementReads(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project.DetailDTO{}, ErrProjectNotFound
		}
		return project.DetailDTO{}, err
	}

	if err := s.Repos.User.IncrementTotalReads(p.AuthorID, 1); err != nil {
		log.Printf("Failed to update author read count for %s: %v", projectID, err)
	}

	return project.Detail(p), nil
}

func (s *ProjectService) UserWrittenProjects(authorID uint, input project.UserWrittenInput) ([]project.PreviewDTO, error) {
	projects, err := s.Repos.Project.ListByAuthor(authorID, input.Page, userWrittenPageSize, input.Query, input.Draft)
	if err != nil {
		return nil, err
	}
	return project.Previews(projects), nil
}
