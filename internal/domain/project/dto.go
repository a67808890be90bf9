package project

import (
	"encoding/json"
	"time"

	"github.com/devshare/devshare-go/internal/domain/user"
)

type CreateProjectDTO struct {
	Title      string          `json:"title"`
	Des        string          `json:"des"`
	Banner     string          `json:"banner"`
	ProjectURL string          `json:"projectUrl"`
	Repository string          `json:"repository"`
	Tags       []string        `json:"tags"`
	Content    json.RawMessage `json:"content"`
	Draft      bool            `json:"draft"`
}

type ListInput struct {
	Page int `json:"page"`
}

type SearchInput struct {
	Tag              string `json:"tag"`
	Query            string `json:"query"`
	Author           uint   `json:"author"`
	Page             int    `json:"page"`
	Limit            int    `json:"limit"`
	EliminateProject string `json:"elminate_project"`
}

type GetInput struct {
	ProjectID string `json:"project_id" binding:"required"`
}

type UserWrittenInput struct {
	Page  int    `json:"page"`
	Query string `json:"query"`
	Draft bool   `json:"draft"`
}

// SearchFilter is the repository-level form of SearchInput: exactly one
// of Tag/Query/Author is set.
type SearchFilter struct {
	Tag              string
	Query            string
	Author           uint
	EliminateProject string
}

type ActivityDTO struct {
	TotalLikes int64 `json:"total_likes"`
	TotalReads int64 `json:"total_reads"`
}

// PreviewDTO is the listing projection: reduced project fields plus a
// reduced author projection.
type PreviewDTO struct {
	ProjectID   string           `json:"project_id"`
	Title       string           `json:"title"`
	Des         string           `json:"des"`
	Banner      string           `json:"banner"`
	Tags        []string         `json:"tags"`
	Activity    ActivityDTO      `json:"activity"`
	PublishedAt time.Time        `json:"publishedAt"`
	Author      user.PreviewDTO  `json:"author"`
	Draft       bool             `json:"draft,omitempty"`
}

type TrendingDTO struct {
	ProjectID   string          `json:"project_id"`
	Title       string          `json:"title"`
	PublishedAt time.Time       `json:"publishedAt"`
	Author      user.PreviewDTO `json:"author"`
}

type DetailDTO struct {
	ProjectID   string          `json:"project_id"`
	Title       string          `json:"title"`
	Des         string          `json:"des"`
	Banner      string          `json:"banner"`
	ProjectURL  string          `json:"projectUrl"`
	Repository  string          `json:"repository"`
	Tags        []string        `json:"tags"`
	Content     json.RawMessage `json:"content"`
	Activity    ActivityDTO     `json:"activity"`
	PublishedAt time.Time       `json:"publishedAt"`
	Author      user.PreviewDTO `json:"author"`
}

type CountDTO struct {
	TotalDocs int64 `json:"totalDocs"`
}

func authorPreview(p Project) user.PreviewDTO {
	if p.Author == nil {
		return user.PreviewDTO{}
	}
	return user.Preview(*p.Author)
}

func Preview(p Project) PreviewDTO {
	return PreviewDTO{
		ProjectID:   p.ProjectID,
		Title:       p.Title,
		Des:         p.Des,
		Banner:      p.Banner,
		Tags:        p.Tags,
		Activity:    ActivityDTO{TotalLikes: p.TotalLikes, TotalReads: p.TotalReads},
		PublishedAt: p.PublishedAt,
		Author:      authorPreview(p),
		Draft:       p.Draft,
	}
}

func Previews(projects []Project) []PreviewDTO {
	out := make([]PreviewDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, Preview(p))
	}
	return out
}

func Trending(p Project) TrendingDTO {
	return TrendingDTO{
		ProjectID:   p.ProjectID,
		Title:       p.Title,
		PublishedAt: p.PublishedAt,
		Author:      authorPreview(p),
	}
}

func Detail(p Project) DetailDTO {
	return DetailDTO{
		ProjectID:   p.ProjectID,
		Title:       p.Title,
		Des:         p.Des,
		Banner:      p.Banner,
		ProjectURL:  p.ProjectURL,
		Repository:  p.Repository,
		Tags:        p.Tags,
		Content:     json.RawMessage(p.Content),
		Activity:    ActivityDTO{TotalLikes: p.TotalLikes, TotalReads: p.TotalReads},
		PublishedAt: p.PublishedAt,
		Author:      authorPreview(p),
	}
}
