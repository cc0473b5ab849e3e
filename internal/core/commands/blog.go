package commands

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/blogmanager-backend/internal/core/logmsg"
	"github.com/yungbote/blogmanager-backend/internal/data/repos"
	types "github.com/yungbote/blogmanager-backend/internal/domain"
	"github.com/yungbote/blogmanager-backend/internal/dto"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/platform/dbctx"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type CreateBlog struct {
	AuthorID    uuid.UUID
	Title       string
	Description string
	Content     string
	Tags        []string
}

func (CreateBlog) Kind() mediator.Kind { return "blog.create" }

type UpdateBlog struct {
	ID          uuid.UUID
	Title       string
	Description string
	Content     string
	Tags        []string
}

func (UpdateBlog) Kind() mediator.Kind { return "blog.update" }

type DeleteBlog struct {
	ID uuid.UUID
}

func (DeleteBlog) Kind() mediator.Kind { return "blog.delete" }

func (c DeleteBlog) TargetID() uuid.UUID { return c.ID }

type CreateBlogHandler struct {
	log      *logger.Logger
	blogRepo repos.BlogRepo
}

func NewCreateBlogHandler(log *logger.Logger, blogRepo repos.BlogRepo) *CreateBlogHandler {
	return &CreateBlogHandler{log: log.With("handler", "CreateBlogHandler"), blogRepo: blogRepo}
}

// Handle does not check that the author exists; the store decides.
func (h *CreateBlogHandler) Handle(ctx context.Context, cmd CreateBlog) (*dto.Blog, error) {
	blog := types.NewBlog(cmd.AuthorID, cmd.Title, cmd.Description, cmd.Content, cmd.Tags)
	created, err := h.blogRepo.Add(dbctx.Context{Ctx: ctx}, blog)
	if err != nil {
		return nil, err
	}
	h.log.Info(logmsg.BlogCreatedSuccessfully, "blog_id", created.ID, "author_id", created.AuthorID)
	return dto.BlogFromEntity(created), nil
}

type UpdateBlogHandler struct {
	db       *gorm.DB
	log      *logger.Logger
	blogRepo repos.BlogRepo
}

func NewUpdateBlogHandler(db *gorm.DB, log *logger.Logger, blogRepo repos.BlogRepo) *UpdateBlogHandler {
	return &UpdateBlogHandler{db: db, log: log.With("handler", "UpdateBlogHandler"), blogRepo: blogRepo}
}

// Handle returns nil, nil when no blog has cmd.ID. The owning author never changes.
func (h *UpdateBlogHandler) Handle(ctx context.Context, cmd UpdateBlog) (*dto.Blog, error) {
	var out *types.Blog
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := h.blogRepo.GetByID(dbc, cmd.ID, false)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		existing.Update(cmd.Title, cmd.Description, cmd.Content, cmd.Tags)
		out, err = h.blogRepo.Update(dbc, existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	h.log.Info(logmsg.BlogUpdatedSuccessfully, "blog_id", out.ID)
	return dto.BlogFromEntity(out), nil
}

type DeleteBlogHandler struct {
	db       *gorm.DB
	log      *logger.Logger
	blogRepo repos.BlogRepo
}

func NewDeleteBlogHandler(db *gorm.DB, log *logger.Logger, blogRepo repos.BlogRepo) *DeleteBlogHandler {
	return &DeleteBlogHandler{db: db, log: log.With("handler", "DeleteBlogHandler"), blogRepo: blogRepo}
}

func (h *DeleteBlogHandler) Handle(ctx context.Context, cmd DeleteBlog) (bool, error) {
	deleted := false
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := h.blogRepo.GetByID(dbc, cmd.ID, false)
		if err != nil || existing == nil {
			return err
		}
		if err := h.blogRepo.Delete(dbc, existing); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if deleted {
		h.log.Info(logmsg.BlogDeletedSuccessfully, "blog_id", cmd.ID)
	}
	return deleted, nil
}
