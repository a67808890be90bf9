package repository

import (
	"errors"

	"github.com/devshare/devshare-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(n *notification.Notification) error
	DeleteLike(userID, projectPID uint) error
	LikeExists(userID, projectPID uint) (bool, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) Create(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) DeleteLike(userID, projectPID uint) error {
	return r.db.
		Where("type = ? AND user_id = ? AND project_p_id = ?", notification.TypeLike, userID, projectPID).
		Delete(&notification.Notification{}).Error
}

func (r *DBNotificationRepo) LikeExists(userID, projectPID uint) (bool, error) {
	var n notification.Notification
	err := r.db.
		Where("type = ? AND user_id = ? AND project_p_id = ?", notification.TypeLike, userID, projectPID).
		First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{db: tx}
}
