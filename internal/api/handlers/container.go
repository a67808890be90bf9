package handlers

import (
	"github.com/devshare/devshare-go/internal/application"
	"github.com/devshare/devshare-go/internal/ws"
)

type Handlers struct {
	Project      *ProjectHandler
	User         *UserHandler
	Notification *NotificationHandler
	Feed         *FeedHandler
}

func New(svc *application.Services, hub *ws.Hub) *Handlers {
	return &Handlers{
		Project:      NewProjectHandler(svc.Project),
		User:         NewUserHandler(svc.User),
		Notification: NewNotificationHandler(svc.Notification),
		Feed:         NewFeedHandler(hub),
	}
}
