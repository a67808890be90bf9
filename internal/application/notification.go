package application

import (
	"errors"
	"log"
	"time"

	"github.com/devshare/devshare-go/internal/domain/comment"
	"github.com/devshare/devshare-go/internal/domain/notification"
	"github.com/devshare/devshare-go/internal/repository"
	"gorm.io/gorm"
)

const commentPageSize = 5

var ErrCommentNotFound = errors.New("comment not found")

// Feed receives notification events for live delivery. A nil feed
// disables pushing without touching the write path.
type Feed interface {
	Publish(uid uint, event notification.EventDTO)
}

type NotificationService struct {
	Repos *repository.Repos
	feed  Feed
}

func NewNotificationService(repos *repository.Repos, feed Feed) *NotificationService {
	return &NotificationService{Repos: repos, feed: feed}
}

// ToggleLike flips the like relationship between a user and a project.
// The liked state is derived from the notification ledger rather than
// trusted from the client, so concurrent or repeated requests settle
// into toggle semantics instead of double-counting. The counter and the
// ledger move in one transaction: neither can drift from the other.
func (s *NotificationService) ToggleLike(userID uint, projectID string) (bool, error) {
	p, err := s.Repos.Project.GetByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProjectNotFound
		}
		return false, err
	}

	var liked bool
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		var err error
		liked, err = r.Notification.LikeExists(userID, p.PID)
		if err != nil {
			return err
		}

		if liked {
			if err := r.Project.IncrementLikes(p.PID, -1); err != nil {
				return err
			}
			return r.Notification.DeleteLike(userID, p.PID)
		}

		if err := r.Project.IncrementLikes(p.PID, 1); err != nil {
			return err
		}
		n := notification.Notification{
			Type:       notification.TypeLike,
			UserID:     userID,
			ProjectPID: p.PID,
			NotifiedID: p.AuthorID,
		}
		return r.Notification.Create(&n)
	})
	if err != nil {
		return liked, err
	}

	if liked {
		return false, nil
	}

	s.publish(userID, p.AuthorID, notification.TypeLike, p.ProjectID)

	return true, nil
}

func (s *NotificationService) LikeStatus(userID uint, projectID string) (bool, error) {
	pid, err := s.Repos.Project.GetPIDBySlug(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProjectNotFound
		}
		return false, err
	}
	return s.Repos.Notification.LikeExists(userID, pid)
}

func (s *NotificationService) AddComment(userID uint, input comment.AddInput) (comment.DTO, error) {
	p, err := s.Repos.Project.GetByProjectID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return comment.DTO{}, ErrProjectNotFound
		}
		return comment.DTO{}, err
	}

	notifType := notification.TypeComment
	notifiedID := p.AuthorID

	if input.ParentID != nil {
		parent, err := s.Repos.Comment.GetByID(*input.ParentID)
		if err != nil || parent.ProjectPID != p.PID {
			return comment.DTO{}, ErrCommentNotFound
		}
		notifType = notification.TypeReply
		notifiedID = parent.AuthorID
	}

	c := comment.Comment{
		ProjectPID: p.PID,
		AuthorID:   userID,
		ParentID:   input.ParentID,
		Body:       input.Body,
	}
	if err := s.Repos.Comment.Create(&c); err != nil {
		return comment.DTO{}, err
	}

	if notifiedID != userID {
		n := notification.Notification{
			Type:       notifType,
			UserID:     userID,
			ProjectPID: p.PID,
			NotifiedID: notifiedID,
			CommentID:  &c.CID,
		}
		if err := s.Repos.Notification.Create(&n); err != nil {
			log.Printf("Failed to store %s notification for project %s: %v", notifType, p.ProjectID, err)
		} else {
			s.publish(userID, notifiedID, notifType, p.ProjectID)
		}
	}

	stored, err := s.Repos.Comment.GetByID(c.CID)
	if err != nil {
		return comment.FromModel(c), nil
	}
	return comment.FromModel(stored), nil
}

func (s *NotificationService) GetComments(input comment.ListInput) ([]comment.DTO, error) {
	pid, err := s.Repos.Project.GetPIDBySlug(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	comments, err := s.Repos.Comment.ListByProject(pid, input.Skip, commentPageSize)
	if err != nil {
		return nil, err
	}
	return comment.FromModels(comments), nil
}

func (s *NotificationService) GetReplies(input comment.RepliesInput) ([]comment.DTO, error) {
	comments, err := s.Repos.Comment.ListReplies(input.CommentID, input.Skip, commentPageSize)
	if err != nil {
		return nil, err
	}
	return comment.FromModels(comments), nil
}

func (s *NotificationService) publish(actorID, notifiedID uint, notifType, projectID string) {
	if s.feed == nil {
		return
	}

	actor, err := s.Repos.User.GetUserRawByID(actorID)
	if err != nil {
		log.Printf("Failed to resolve actor %d for feed event: %v", actorID, err)
		return
	}

	s.feed.Publish(notifiedID, notification.EventDTO{
		Type:      notifType,
		ProjectID: projectID,
		Username:  actor.Username,
		CreatedAt: time.Now(),
	})
}
