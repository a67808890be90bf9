package repository

import (
	"github.com/devshare/devshare-go/internal/domain/comment"
	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(c *comment.Comment) error
	GetByID(cid uint) (comment.Comment, error)
	ListByProject(projectPID uint, skip, limit int) ([]comment.Comment, error)
	ListReplies(parentID uint, skip, limit int) ([]comment.Comment, error)
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) Create(c *comment.Comment) error {
	return r.db.Create(c).Error
}

func (r *DBCommentRepo) GetByID(cid uint) (comment.Comment, error) {
	var c comment.Comment
	err := r.db.Preload("Author").First(&c, cid).Error
	return c, err
}

func (r *DBCommentRepo) ListByProject(projectPID uint, skip, limit int) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.Preload("Author").
		Where("project_p_id = ? AND parent_id IS NULL", projectPID).
		Order("create_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) ListReplies(parentID uint, skip, limit int) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.Preload("Author").
		Where("parent_id = ?", parentID).
		Order("create_at ASC").
		Offset(skip).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{db: tx}
}
