package blog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/blogmanager-backend/internal/domain"
	"github.com/yungbote/blogmanager-backend/internal/platform/dbctx"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type AuthorRepo interface {
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Author, error)
	GetAll(dbc dbctx.Context) ([]*types.Author, error)
	Add(dbc dbctx.Context, author *types.Author) (*types.Author, error)
	Update(dbc dbctx.Context, author *types.Author) (*types.Author, error)
	Delete(dbc dbctx.Context, author *types.Author) error
}

type authorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAuthorRepo(db *gorm.DB, baseLog *logger.Logger) AuthorRepo {
	return &authorRepo{db: db, log: baseLog.With("repo", "AuthorRepo")}
}

// GetByID returns nil, nil when no author has the given id.
func (r *authorRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Author, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var rows []*types.Author
	if err := dbc.Conn(r.db).
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

func (r *authorRepo) GetAll(dbc dbctx.Context) ([]*types.Author, error) {
	out := []*types.Author{}
	if err := dbc.Conn(r.db).
		Order("created_at ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []*types.Author{}
	}
	return out, nil
}

func (r *authorRepo) Add(dbc dbctx.Context, author *types.Author) (*types.Author, error) {
	if err := dbc.Conn(r.db).Omit(clause.Associations).Create(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

func (r *authorRepo) Update(dbc dbctx.Context, author *types.Author) (*types.Author, error) {
	if err := dbc.Conn(r.db).Omit(clause.Associations).Save(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

func (r *authorRepo) Delete(dbc dbctx.Context, author *types.Author) error {
	return dbc.Conn(r.db).Delete(author).Error
}
