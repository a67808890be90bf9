package user

import "time"

type User struct {
	UID        uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username   string    `gorm:"size:50;not null;unique" json:"username"`
	Password   string    `gorm:"size:255" json:"-"`
	FullName   string    `gorm:"size:100" json:"fullname"`
	Bio        string    `gorm:"size:200" json:"bio"`
	ProfileImg string    `gorm:"size:500" json:"profile_img"`
	GoogleAuth bool      `gorm:"default:false" json:"-"`
	TotalPosts int64     `gorm:"default:0" json:"total_posts"`
	TotalReads int64     `gorm:"default:0" json:"total_reads"`
	CreatedAt  time.Time `gorm:"column:create_at;autoCreateTime" json:"joinedAt"`
	UpdatedAt  time.Time `gorm:"column:update_at;autoUpdateTime" json:"-"`
}
