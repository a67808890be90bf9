package application

import (
	"github.com/devshare/devshare-go/internal/repository"
)

type Services struct {
	Project      *ProjectService
	User         *UserService
	Notification *NotificationService
}

func New(repos *repository.Repos, feed Feed) *Services {
	return &Services{
		Project:      NewProjectService(repos),
		User:         NewUserService(repos),
		Notification: NewNotificationService(repos, feed),
	}
}
