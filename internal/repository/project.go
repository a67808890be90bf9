package repository

import (
	"github.com/devshare/devshare-go/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	CreateProject(p *project.Project) error
	GetByProjectID(projectID string) (project.Project, error)
	GetPIDBySlug(projectID string) (uint, error)
	GetProjectByPID(pid uint) (project.Project, error)
	ListLatest(page, limit int) ([]project.Project, error)
	ListTrending(limit int) ([]project.Project, error)
	Search(f project.SearchFilter, page, limit int) ([]project.Project, error)
	CountLatest() (int64, error)
	CountSearch(f project.SearchFilter) (int64, error)
	ListByAuthor(authorID uint, page, limit int, query string, draft bool) ([]project.Project, error)
	IncrementReads(projectID string) (project.Project, error)
	IncrementLikes(pid uint, delta int) error
	DeleteProject(pid uint) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetByProjectID(projectID string) (project.Project, error) {
	var p project.Project
	err := r.db.Preload("Author").Where("project_id = ?", projectID).First(&p).Error
	return p, err
}

func (r *DBProjectRepo) GetPIDBySlug(projectID string) (uint, error) {
	var pid uint
	err := r.db.Model(&project.Project{}).Select("p_id").Where("project_id = ?", projectID).Scan(&pid).Error
	if err != nil {
		return 0, err
	}
	if pid == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return pid, nil
}

func (r *DBProjectRepo) GetProjectByPID(pid uint) (project.Project, error) {
	var p project.Project
	err := r.db.Preload("Author").First(&p, pid).Error
	return p, err
}

func (r *DBProjectRepo) ListLatest(page, limit int) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Preload("Author").
		Where("draft = ?", false).
		Order("published_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListTrending(limit int) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Preload("Author").
		Where("draft = ?", false).
		Order("total_reads DESC, total_likes DESC, published_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func searchScope(db *gorm.DB, f project.SearchFilter) *gorm.DB {
	q := db.Where("draft = ?", false)
	switch {
	case f.Tag != "":
		q = q.Where("? = ANY(tags)", f.Tag)
		if f.EliminateProject != "" {
			q = q.Where("project_id <> ?", f.EliminateProject)
		}
	case f.Query != "":
		q = q.Where("title ILIKE ?", "%"+f.Query+"%")
	case f.Author != 0:
		q = q.Where("author_id = ?", f.Author)
	}
	return q
}

func (r *DBProjectRepo) Search(f project.SearchFilter, page, limit int) ([]project.Project, error) {
	var projects []project.Project
	err := searchScope(r.db.Preload("Author"), f).
		Order("published_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CountLatest() (int64, error) {
	var count int64
	err := r.db.Model(&project.Project{}).Where("draft = ?", false).Count(&count).Error
	return count, err
}

func (r *DBProjectRepo) CountSearch(f project.SearchFilter) (int64, error) {
	var count int64
	err := searchScope(r.db.Model(&project.Project{}), f).Count(&count).Error
	return count, err
}

func (r *DBProjectRepo) ListByAuthor(authorID uint, page, limit int, query string, draft bool) ([]project.Project, error) {
	var projects []project.Project
	q := r.db.Where("author_id = ? AND draft = ?", authorID, draft)
	if query != "" {
		q = q.Where("title ILIKE ?", "%"+query+"%")
	}
	err := q.Order("published_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// IncrementReads bumps the read counter as a single UPDATE and returns
// the refreshed row. The increment is atomic at the store level.
func (r *DBProjectRepo) IncrementReads(projectID string) (project.Project, error) {
	res := r.db.Model(&project.Project{}).
		Where("project_id = ?", projectID).
		UpdateColumn("total_reads", gorm.Expr("total_reads + ?", 1))
	if res.Error != nil {
		return project.Project{}, res.Error
	}
	if res.RowsAffected == 0 {
		return project.Project{}, gorm.ErrRecordNotFound
	}
	return r.GetByProjectID(projectID)
}

func (r *DBProjectRepo) IncrementLikes(pid uint, delta int) error {
	return r.db.Model(&project.Project{}).
		Where("p_id = ?", pid).
		UpdateColumn("total_likes", gorm.Expr("total_likes + ?", delta)).Error
}

func (r *DBProjectRepo) DeleteProject(pid uint) error {
	return r.db.Delete(&project.Project{}, pid).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}

func pageOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
