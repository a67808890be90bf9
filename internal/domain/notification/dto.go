package notification

import "time"

type LikeInput struct {
	ProjectID     string `json:"_id" binding:"required"`
	IsLikedByUser bool   `json:"islikedByUser"`
}

type LikeStatusInput struct {
	ProjectID string `json:"_id" binding:"required"`
}

type LikeResultDTO struct {
	LikedByUser bool `json:"liked_by_user"`
}

type LikeStatusDTO struct {
	IsLiked bool `json:"isLiked"`
}

// EventDTO is what the websocket feed pushes to the notified user.
type EventDTO struct {
	Type      string    `json:"type"`
	ProjectID string    `json:"project_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
