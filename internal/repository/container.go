package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Project      ProjectRepo
	User         UserRepo
	Notification NotificationRepo
	Comment      CommentRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Project:      NewProjectRepo(db),
		User:         NewUserRepo(db),
		Notification: NewNotificationRepo(db),
		Comment:      NewCommentRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Project:      r.Project.WithTx(tx),
		User:         r.User.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		Comment:      r.Comment.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a single transaction. A container assembled
// without a connection (unit tests wiring mocks) runs fn on the same
// repos instead.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
