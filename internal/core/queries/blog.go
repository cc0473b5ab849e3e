package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/blogmanager-backend/internal/core/logmsg"
	"github.com/yungbote/blogmanager-backend/internal/data/repos"
	"github.com/yungbote/blogmanager-backend/internal/dto"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/platform/dbctx"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

// GetBlogByID loads the author record alongside the blog only when IncludeAuthorInfo is set.
type GetBlogByID struct {
	ID                uuid.UUID
	IncludeAuthorInfo bool
}

func (GetBlogByID) Kind() mediator.Kind { return "blog.get" }

type GetBlogList struct {
	IncludeAuthorInfo bool
}

func (GetBlogList) Kind() mediator.Kind { return "blog.list" }

type GetBlogsByAuthor struct {
	AuthorID          uuid.UUID
	IncludeAuthorInfo bool
}

func (GetBlogsByAuthor) Kind() mediator.Kind { return "blog.list_by_author" }

type GetBlogByIDHandler struct {
	log      *logger.Logger
	blogRepo repos.BlogRepo
}

func NewGetBlogByIDHandler(log *logger.Logger, blogRepo repos.BlogRepo) *GetBlogByIDHandler {
	return &GetBlogByIDHandler{log: log.With("handler", "GetBlogByIDHandler"), blogRepo: blogRepo}
}

// Handle returns nil, nil when the blog does not exist.
func (h *GetBlogByIDHandler) Handle(ctx context.Context, q GetBlogByID) (*dto.Blog, error) {
	blog, err := h.blogRepo.GetByID(dbctx.Context{Ctx: ctx}, q.ID, q.IncludeAuthorInfo)
	if err != nil {
		return nil, err
	}
	h.log.Info(logmsg.BlogGetSuccessfully, "blog_id", q.ID, "found", blog != nil)
	return dto.BlogFromEntity(blog), nil
}

type GetBlogListHandler struct {
	log      *logger.Logger
	blogRepo repos.BlogRepo
}

func NewGetBlogListHandler(log *logger.Logger, blogRepo repos.BlogRepo) *GetBlogListHandler {
	return &GetBlogListHandler{log: log.With("handler", "GetBlogListHandler"), blogRepo: blogRepo}
}

func (h *GetBlogListHandler) Handle(ctx context.Context, q GetBlogList) ([]dto.Blog, error) {
	rows, err := h.blogRepo.GetAll(dbctx.Context{Ctx: ctx}, q.IncludeAuthorInfo)
	if err != nil {
		return nil, err
	}
	h.log.Info(logmsg.BlogListGetSuccessfully, "count", len(rows))
	return dto.BlogsFromEntities(rows), nil
}

type GetBlogsByAuthorHandler struct {
	log      *logger.Logger
	blogRepo repos.BlogRepo
}

func NewGetBlogsByAuthorHandler(log *logger.Logger, blogRepo repos.BlogRepo) *GetBlogsByAuthorHandler {
	return &GetBlogsByAuthorHandler{log: log.With("handler", "GetBlogsByAuthorHandler"), blogRepo: blogRepo}
}

func (h *GetBlogsByAuthorHandler) Handle(ctx context.Context, q GetBlogsByAuthor) ([]dto.Blog, error) {
	rows, err := h.blogRepo.GetByAuthorID(dbctx.Context{Ctx: ctx}, q.AuthorID, q.IncludeAuthorInfo)
	if err != nil {
		return nil, err
	}
	h.log.Info(logmsg.BlogListByAuthorSuccessful, "author_id", q.AuthorID, "count", len(rows))
	return dto.BlogsFromEntities(rows), nil
}
