package comment

import (
	"time"

	"github.com/devshare/devshare-go/internal/domain/user"
)

type Comment struct {
	CID        uint       `gorm:"primaryKey;column:c_id" json:"c_id"`
	ProjectPID uint       `gorm:"not null;index;column:project_p_id" json:"-"`
	AuthorID   uint       `gorm:"not null;index" json:"-"`
	Author     *user.User `gorm:"foreignKey:AuthorID" json:"-"`
	ParentID   *uint      `gorm:"index" json:"parent,omitempty"`
	Body       string     `gorm:"type:text;not null" json:"comment"`
	CreatedAt  time.Time  `gorm:"column:create_at;autoCreateTime" json:"commentedAt"`
}
