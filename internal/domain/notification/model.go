package notification

import "time"

const (
	TypeLike    = "like"
	TypeComment = "comment"
	TypeReply   = "reply"
)

// Notification doubles as the like ledger: existence of a "like" row for
// (user, project) is the liked-state check. At most one like row per
// pair, enforced by a partial unique index; comment and reply rows may
// repeat for the same pair, so the predicate covers likes only.
type Notification struct {
	NID        uint      `gorm:"primaryKey;column:n_id" json:"n_id"`
	Type       string    `gorm:"size:20;not null;index:idx_notifications_lookup;uniqueIndex:uniq_like_ledger,where:type = 'like'" json:"type"`
	UserID     uint      `gorm:"not null;index:idx_notifications_lookup;uniqueIndex:uniq_like_ledger" json:"user_id"`
	ProjectPID uint      `gorm:"not null;index:idx_notifications_lookup;uniqueIndex:uniq_like_ledger;column:project_p_id" json:"-"`
	NotifiedID uint      `gorm:"not null;index" json:"notification_for"`
	CommentID  *uint     `gorm:"column:comment_id" json:"comment_id,omitempty"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
}
