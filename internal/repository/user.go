package repository

import (
	"github.com/devshare/devshare-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(u *user.User) error
	SaveUser(u *user.User) error
	GetUserByUsername(username string) (user.User, error)
	GetUserRawByID(id uint) (user.User, error)
	SearchByUsername(query string, limit int) ([]user.User, error)
	IncrementTotalPosts(uid uint, delta int) error
	IncrementTotalReads(uid uint, delta int) error
	UpdateProfileImg(uid uint, url string) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserRawByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) SearchByUsername(query string, limit int) ([]user.User, error) {
	var users []user.User
	err := r.db.Where("username ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) IncrementTotalPosts(uid uint, delta int) error {
	return r.db.Model(&user.User{}).
		Where("u_id = ?", uid).
		UpdateColumn("total_posts", gorm.Expr("total_posts + ?", delta)).Error
}

func (r *DBUserRepo) IncrementTotalReads(uid uint, delta int) error {
	return r.db.Model(&user.User{}).
		Where("u_id = ?", uid).
		UpdateColumn("total_reads", gorm.Expr("total_reads + ?", delta)).Error
}

func (r *DBUserRepo) UpdateProfileImg(uid uint, url string) error {
	return r.db.Model(&user.User{}).
		Where("u_id = ?", uid).
		UpdateColumn("profile_img", url).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
