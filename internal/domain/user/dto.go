package user

import "time"

type CreateUserInput struct {
	Username string `json:"username" binding:"required" example:"johndoe"`
	Password string `json:"password" binding:"required" example:"password123"`
	FullName string `json:"fullname" example:"John Doe"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SearchInput struct {
	Query string `json:"query" binding:"required"`
}

type ProfileInput struct {
	Username string `json:"username" binding:"required"`
}

type UpdateProfileImgInput struct {
	URL string `json:"url" binding:"required"`
}

// PreviewDTO is the reduced author projection embedded in project
// listings and user search results.
type PreviewDTO struct {
	FullName   string `json:"fullname"`
	Username   string `json:"username"`
	ProfileImg string `json:"profile_img"`
}

// ProfileDTO excludes password, auth markers and internal fields.
type ProfileDTO struct {
	UID        uint      `json:"u_id"`
	Username   string    `json:"username"`
	FullName   string    `json:"fullname"`
	Bio        string    `json:"bio"`
	ProfileImg string    `json:"profile_img"`
	TotalPosts int64     `json:"total_posts"`
	TotalReads int64     `json:"total_reads"`
	JoinedAt   time.Time `json:"joinedAt"`
}

func Preview(u User) PreviewDTO {
	return PreviewDTO{
		FullName:   u.FullName,
		Username:   u.Username,
		ProfileImg: u.ProfileImg,
	}
}

func Profile(u User) ProfileDTO {
	return ProfileDTO{
		UID:        u.UID,
		Username:   u.Username,
		FullName:   u.FullName,
		Bio:        u.Bio,
		ProfileImg: u.ProfileImg,
		TotalPosts: u.TotalPosts,
		TotalReads: u.TotalReads,
		JoinedAt:   u.CreatedAt,
	}
}
