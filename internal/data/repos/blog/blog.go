package blog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/blogmanager-backend/internal/domain"
	"github.com/yungbote/blogmanager-backend/internal/platform/dbctx"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type BlogRepo interface {
	GetByID(dbc dbctx.Context, id uuid.UUID, includeAuthor bool) (*types.Blog, error)
	GetAll(dbc dbctx.Context, includeAuthor bool) ([]*types.Blog, error)
	GetByAuthorID(dbc dbctx.Context, authorID uuid.UUID, includeAuthor bool) ([]*types.Blog, error)
	Add(dbc dbctx.Context, blog *types.Blog) (*types.Blog, error)
	Update(dbc dbctx.Context, blog *types.Blog) (*types.Blog, error)
	Delete(dbc dbctx.Context, blog *types.Blog) error
}

type blogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBlogRepo(db *gorm.DB, baseLog *logger.Logger) BlogRepo {
	return &blogRepo{db: db, log: baseLog.With("repo", "BlogRepo")}
}

func (r *blogRepo) query(dbc dbctx.Context, includeAuthor bool) *gorm.DB {
	q := dbc.Conn(r.db)
	if includeAuthor {
		q = q.Preload("Author")
	}
	return q
}

func (r *blogRepo) GetByID(dbc dbctx.Context, id uuid.UUID, includeAuthor bool) (*types.Blog, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var rows []*types.Blog
	if err := r.query(dbc, includeAuthor).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *blogRepo) GetAll(dbc dbctx.Context, includeAuthor bool) ([]*types.Blog, error) {
	out := []*types.Blog{}
	if err := r.query(dbc, includeAuthor).
		Order("created_at ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []*types.Blog{}
	}
	return out, nil
}

func (r *blogRepo) GetByAuthorID(dbc dbctx.Context, authorID uuid.UUID, includeAuthor bool) ([]*types.Blog, error) {
	out := []*types.Blog{}
	if authorID == uuid.Nil {
		return out, nil
	}
	if err := r.query(dbc, includeAuthor).
		Where("author_id = ?", authorID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []*types.Blog{}
	}
	return out, nil
}

func (r *blogRepo) Add(dbc dbctx.Context, blog *types.Blog) (*types.Blog, error) {
	if err := dbc.Conn(r.db).Omit(clause.Associations).Create(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

func (r *blogRepo) Update(dbc dbctx.Context, blog *types.Blog) (*types.Blog, error) {
	if err := dbc.Conn(r.db).Omit(clause.Associations).Save(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

func (r *blogRepo) Delete(dbc dbctx.Context, blog *types.Blog) error {
	return dbc.Conn(r.db).Delete(blog).Error
}
