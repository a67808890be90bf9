package comment

import (
	"time"

	"github.com/devshare/devshare-go/internal/domain/user"
)

type AddInput struct {
	ProjectID string `json:"_id" binding:"required"`
	Body      string `json:"comment" binding:"required"`
	ParentID  *uint  `json:"replying_to"`
}

type ListInput struct {
	ProjectID string `json:"_id" binding:"required"`
	Skip      int    `json:"skip"`
}

type RepliesInput struct {
	CommentID uint `json:"_id" binding:"required"`
	Skip      int  `json:"skip"`
}

type DTO struct {
	CID         uint            `json:"c_id"`
	Body        string          `json:"comment"`
	ParentID    *uint           `json:"parent,omitempty"`
	CommentedAt time.Time       `json:"commentedAt"`
	CommentedBy user.PreviewDTO `json:"commented_by"`
}

func FromModel(c Comment) DTO {
	d := DTO{
		CID:         c.CID,
		Body:        c.Body,
		ParentID:    c.ParentID,
		CommentedAt: c.CreatedAt,
	}
	if c.Author != nil {
		d.CommentedBy = user.Preview(*c.Author)
	}
	return d
}

func FromModels(comments []Comment) []DTO {
	out := make([]DTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, FromModel(c))
	}
	return out
}
