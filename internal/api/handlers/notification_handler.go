package handlers

import (
	"errors"
	"net/http"

	"github.com/devshare/devshare-go/internal/application"
	"github.com/devshare/devshare-go/internal/domain/comment"
	"github.com/devshare/devshare-go/internal/domain/notification"
	"github.com/devshare/devshare-go/pkg/response"
	"github.com/devshare/devshare-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *application.NotificationService
}

func NewNotificationHandler(svc *application.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// LikeProject godoc
// @Summary Toggle a like on a project
// @Description The liked state is derived server-side from the notification
// @Description ledger; the client hint in the body is not trusted.
// @Tags notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body notification.LikeInput true "Project slug and client-side liked hint"
// @Success 200 {object} notification.LikeResultDTO
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /notification/like [post]
func (h *NotificationHandler) LikeProject(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
		return
	}

	var input notification.LikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	liked, err := h.svc.ToggleLike(uid, input.ProjectID)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, notification.LikeResultDTO{LikedByUser: liked})
}

// POST /notification/like-status
func (h *NotificationHandler) LikeStatus(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
		return
	}

	var input notification.LikeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	isLiked, err := h.svc.LikeStatus(uid, input.ProjectID)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, notification.LikeStatusDTO{IsLiked: isLiked})
}

// POST /notification/comment
func (h *NotificationHandler) AddComment(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
		return
	}

	var input comment.AddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	stored, err := h.svc.AddComment(uid, input)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) || errors.Is(err, application.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, stored)
}

// POST /notification/get-comments
func (h *NotificationHandler) GetComments(c *gin.Context) {
	var input comment.ListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	comments, err := h.svc.GetComments(input)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// POST /notification/get-replies
func (h *NotificationHandler) GetReplies(c *gin.Context) {
	var input comment.RepliesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	replies, err := h.svc.GetReplies(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"replies": replies})
}
