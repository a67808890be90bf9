package project

import (
	"time"

	"github.com/devshare/devshare-go/internal/domain/user"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Project struct {
	PID         uint           `gorm:"primaryKey;column:p_id" json:"-"`
	ProjectID   string         `gorm:"size:160;not null;uniqueIndex" json:"project_id"`
	Title       string         `gorm:"size:120;not null" json:"title"`
	Des         string         `gorm:"size:200" json:"des"`
	Banner      string         `gorm:"size:500" json:"banner"`
	ProjectURL  string         `gorm:"size:500;column:project_url" json:"projectUrl"`
	Repository  string         `gorm:"size:500" json:"repository"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	Content     datatypes.JSON `json:"content"`
	AuthorID    uint           `gorm:"not null;index;column:author_id" json:"-"`
	Author      *user.User     `gorm:"foreignKey:AuthorID" json:"-"`
	Draft       bool           `gorm:"default:false;index" json:"draft"`
	TotalLikes  int64          `gorm:"default:0" json:"-"`
	TotalReads  int64          `gorm:"default:0" json:"-"`
	PublishedAt time.Time      `gorm:"column:published_at;autoCreateTime" json:"publishedAt"`
}
