package application_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"github.com/devshare/devshare-go/internal/application"
	"github.com/devshare/devshare-go/internal/domain/comment"
	"github.com/devshare/devshare-go/internal/domain/notification"
	"github.com/devshare/devshare-go/internal/domain/project"
	"github.com/devshare/devshare-go/internal/domain/user"
	"github.com/devshare/devshare-go/internal/repository"
	"github.com/devshare/devshare-go/internal/repository/mock"
)

type captureFeed struct {
	uid    uint
	events []notification.EventDTO
}

func (f *captureFeed) Publish(uid uint, event notification.EventDTO) {
	f.uid = uid
	f.events = append(f.events, event)
}

func setupNotificationMocks(t *testing.T) (*application.NotificationService,
	*mock.MockProjectRepo,
	*mock.MockUserRepo,
	*mock.MockNotificationRepo,
	*mock.MockCommentRepo,
	*captureFeed) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	mockNotification := mock.NewMockNotificationRepo(ctrl)
	mockComment := mock.NewMockCommentRepo(ctrl)

	repos := &repository.Repos{
		Project:      mockProject,
		User:         mockUser,
		Notification: mockNotification,
		Comment:      mockComment,
	}

	feed := &captureFeed{}
	svc := application.NewNotificationService(repos, feed)
	return svc, mockProject, mockUser, mockNotification, mockComment, feed
}

func TestToggleLike(t *testing.T) {
	stored := project.Project{PID: 3, ProjectID: "cool-app-abc", AuthorID: 9}

	t.Run("first toggle likes and notifies the author", func(t *testing.T) {
		svc, mockProject, mockUser, mockNotification, _, feed := setupNotificationMocks(t)

		mockProject.EXPECT().GetByProjectID("cool-app-abc").Return(stored, nil)
		mockNotification.EXPECT().LikeExists(uint(2), uint(3)).Return(false, nil)
		mockProject.EXPECT().IncrementLikes(uint(3), 1).Return(nil)

		var created notification.Notification
		mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
			created = *n
			return nil
		})
		mockUser.EXPECT().GetUserRawByID(uint(2)).Return(user.User{UID: 2, Username: "bob"}, nil)

		liked, err := svc.ToggleLike(2, "cool-app-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !liked {
			t.Fatal("expected liked=true after first toggle")
		}
		if created.Type != notification.TypeLike || created.NotifiedID != 9 {
			t.Fatalf("unexpected notification: %+v", created)
		}
		if feed.uid != 9 || len(feed.events) != 1 || feed.events[0].Username != "bob" {
			t.Fatalf("unexpected feed delivery: uid=%d events=%+v", feed.uid, feed.events)
		}
	})

	t.Run("second toggle unlikes and removes the notification", func(t *testing.T) {
		svc, mockProject, _, mockNotification, _, feed := setupNotificationMocks(t)

		mockProject.EXPECT().GetByProjectID("cool-app-abc").Return(stored, nil)
		mockNotification.EXPECT().LikeExists(uint(2), uint(3)).Return(true, nil)
		mockProject.EXPECT().IncrementLikes(uint(3), -1).Return(nil)
		mockNotification.EXPECT().DeleteLike(uint(2), uint(3)).Return(nil)

		liked, err := svc.ToggleLike(2, "cool-app-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if liked {
			t.Fatal("expected liked=false after second toggle")
		}
		if len(feed.events) != 0 {
			t.Fatalf("unlike must not push events, got %+v", feed.events)
		}
	})

	t.Run("ledger write failure surfaces and nothing is published", func(t *testing.T) {
		svc, mockProject, _, mockNotification, _, feed := setupNotificationMocks(t)

		mockProject.EXPECT().GetByProjectID("cool-app-abc").Return(stored, nil)
		mockNotification.EXPECT().LikeExists(uint(2), uint(3)).Return(false, nil)
		mockProject.EXPECT().IncrementLikes(uint(3), 1).Return(nil)
		mockNotification.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

		liked, err := svc.ToggleLike(2, "cool-app-abc")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if liked {
			t.Fatal("expected liked=false when the ledger write fails")
		}
		if len(feed.events) != 0 {
			t.Fatalf("failed toggle must not push events, got %+v", feed.events)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		svc, mockProject, _, _, _, _ := setupNotificationMocks(t)

		mockProject.EXPECT().GetByProjectID("missing").Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.ToggleLike(2, "missing")
		if !errors.Is(err, application.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestLikeStatus(t *testing.T) {
	svc, mockProject, _, mockNotification, _, _ := setupNotificationMocks(t)

	t.Run("reflects the ledger", func(t *testing.T) {
		mockProject.EXPECT().GetPIDBySlug("cool-app-abc").Return(uint(3), nil)
		mockNotification.EXPECT().LikeExists(uint(2), uint(3)).Return(true, nil)

		liked, err := svc.LikeStatus(2, "cool-app-abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !liked {
			t.Fatal("expected liked=true")
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		mockProject.EXPECT().GetPIDBySlug("missing").Return(uint(0), gorm.ErrRecordNotFound)

		_, err := svc.LikeStatus(2, "missing")
		if !errors.Is(err, application.ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}

func TestAddComment(t *testing.T) {
	stored := project.Project{PID: 3, ProjectID: "cool-app-abc", AuthorID: 9}

	t.Run("top level comment notifies the project author", func(t *testing.T) {
		svc, mockProject, mockUser, mockNotification, mockComment, feed := setupNotificationMocks(t)

		mockProject.EXPECT().GetByProjectID("cool-app-abc").Return(stored, nil)
		mockComment.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *comment.Comment) error {
			c.CID = 11
			return nil
		})
		var created notification.Notification
		mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
			created = *n
			return nil
		})
		mockUser.EXPECT().GetUserRawByID(uint(2)).Return(user.User{UID: 2, Username: "bob"}, nil)
		mockComment.EXPECT().GetByID(uint(11)).Return(comment.Comment{
			CID:        11,
			ProjectPID: 3,
			AuthorID:   2,
			Body:       "nice work",
			Author:     &user.User{UID: 2, Username: "bob"},
		}, nil)

		res, err := svc.AddComment(2, comment.AddInput{ProjectID: "cool-app-abc", Body: "nice work"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CID != 11 || res.CommentedBy.Username != "bob" {
			t.Fatalf("unexpected comment DTO: %+v", res)
		}
		if created.Type != notification.TypeComment || created.NotifiedID != 9 || created.CommentID == nil {
			t.Fatalf("unexpected notification: %+v", created)
		}
		if feed.uid != 9 {
			t.Fatalf("expected delivery to author 9, got %d", feed.uid)
		}
	})

	t.Run("author commenting own project skips the notification", func(t *testing.T) {
		svc, mockProject, _, _, mockComment, feed := setupNotificationMocks(t)

		mockProject.EXPECT().GetByProjectID("cool-app-abc").Return(stored, nil)
		mockComment.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *comment.Comment) error {
			c.CID = 12
			return nil
		})
		mockComment.EXPECT().GetByID(uint(12)).Return(comment.Comment{CID: 12, ProjectPID: 3, AuthorID: 9}, nil)

		if _, err := svc.AddComment(9, comment.AddInput{ProjectID: "cool-app-abc", Body: "self note"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(feed.events) != 0 {
			t.Fatalf("self comment must not push events, got %+v", feed.events)
		}
	})

	t.Run("reply notifies the parent comment author", func(t *testing.T) {
		svc, mockProject, mockUser, mockNotification, mockComment, feed := setupNotificationMocks(t)

		parentID := uint(11)
		mockProject.EXPECT().GetByProjectID("cool-app-abc").Return(stored, nil)
		mockComment.EXPECT().GetByID(parentID).Return(comment.Comment{CID: 11, ProjectPID: 3, AuthorID: 5}, nil)
		mockComment.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *comment.Comment) error {
			c.CID = 13
			return nil
		})
		var created notification.Notification
		mockNotification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
			created = *n
			return nil
		})
		mockUser.EXPECT().GetUserRawByID(uint(2)).Return(user.User{UID: 2, Username: "bob"}, nil)
		mockComment.EXPECT().GetByID(uint(13)).Return(comment.Comment{CID: 13, ProjectPID: 3, AuthorID: 2, ParentID: &parentID}, nil)

		res, err := svc.AddComment(2, comment.AddInput{ProjectID: "cool-app-abc", Body: "agreed", ParentID: &parentID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ParentID == nil || *res.ParentID != 11 {
			t.Fatalf("expected parent 11, got %+v", res.ParentID)
		}
		if created.Type != notification.TypeReply || created.NotifiedID != 5 {
			t.Fatalf("unexpected notification: %+v", created)
		}
		if feed.uid != 5 {
			t.Fatalf("expected delivery to parent author 5, got %d", feed.uid)
		}
	})

	t.Run("reply to a comment from another project", func(t *testing.T) {
		svc, mockProject, _, _, mockComment, _ := setupNotificationMocks(t)

		parentID := uint(42)
		mockProject.EXPECT().GetByProjectID("cool-app-abc").Return(stored, nil)
		mockComment.EXPECT().GetByID(parentID).Return(comment.Comment{CID: 42, ProjectPID: 999, AuthorID: 5}, nil)

		_, err := svc.AddComment(2, comment.AddInput{ProjectID: "cool-app-abc", Body: "hi", ParentID: &parentID})
		if !errors.Is(err, application.ErrCommentNotFound) {
			t.Fatalf("expected ErrCommentNotFound, got %v", err)
		}
	})
}

func TestCommentListing(t *testing.T) {
	svc, mockProject, _, _, mockComment, _ := setupNotificationMocks(t)

	t.Run("comments page size is five", func(t *testing.T) {
		mockProject.EXPECT().GetPIDBySlug("cool-app-abc").Return(uint(3), nil)
		mockComment.EXPECT().ListByProject(uint(3), 5, 5).Return([]comment.Comment{{CID: 1, Body: "hey"}}, nil)

		res, err := svc.GetComments(comment.ListInput{ProjectID: "cool-app-abc", Skip: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].Body != "hey" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("replies are paged the same way", func(t *testing.T) {
		mockComment.EXPECT().ListReplies(uint(11), 0, 5).Return([]comment.Comment{{CID: 13}}, nil)

		res, err := svc.GetReplies(comment.RepliesInput{CommentID: 11})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 reply, got %d", len(res))
		}
	})
}
