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

type CreateAuthor struct {
	Name    string
	Surname string
}

func (CreateAuthor) Kind() mediator.Kind { return "author.create" }

type UpdateAuthor struct {
	ID      uuid.UUID
	Name    string
	Surname string
}

func (UpdateAuthor) Kind() mediator.Kind { return "author.update" }

type DeleteAuthor struct {
	ID uuid.UUID
}

func (DeleteAuthor) Kind() mediator.Kind { return "author.delete" }

func (c DeleteAuthor) TargetID() uuid.UUID { return c.ID }

type CreateAuthorHandler struct {
	log        *logger.Logger
	authorRepo repos.AuthorRepo
}

func NewCreateAuthorHandler(log *logger.Logger, authorRepo repos.AuthorRepo) *CreateAuthorHandler {
	return &CreateAuthorHandler{log: log.With("handler", "CreateAuthorHandler"), authorRepo: authorRepo}
}

func (h *CreateAuthorHandler) Handle(ctx context.Context, cmd CreateAuthor) (*dto.Author, error) {
	author := types.NewAuthor(cmd.Name, cmd.Surname)
	created, err := h.authorRepo.Add(dbctx.Context{Ctx: ctx}, author)
	if err != nil {
		return nil, err
	}
	h.log.Info(logmsg.AuthorCreatedSuccessfully, "author_id", created.ID)
	return dto.AuthorFromEntity(created), nil
}

type UpdateAuthorHandler struct {
	db         *gorm.DB
	log        *logger.Logger
	authorRepo repos.AuthorRepo
}

func NewUpdateAuthorHandler(db *gorm.DB, log *logger.Logger, authorRepo repos.AuthorRepo) *UpdateAuthorHandler {
	return &UpdateAuthorHandler{db: db, log: log.With("handler", "UpdateAuthorHandler"), authorRepo: authorRepo}
}

// Handle returns nil, nil when no author has cmd.ID.
func (h *UpdateAuthorHandler) Handle(ctx context.Context, cmd UpdateAuthor) (*dto.Author, error) {
	var out *types.Author
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := h.authorRepo.GetByID(dbc, cmd.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		existing.Update(cmd.Name, cmd.Surname)
		out, err = h.authorRepo.Update(dbc, existing)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	h.log.Info(logmsg.AuthorUpdatedSuccessfully, "author_id", out.ID)
	return dto.AuthorFromEntity(out), nil
}

type DeleteAuthorHandler struct {
	db         *gorm.DB
	log        *logger.Logger
	authorRepo repos.AuthorRepo
}

func NewDeleteAuthorHandler(db *gorm.DB, log *logger.Logger, authorRepo repos.AuthorRepo) *DeleteAuthorHandler {
	return &DeleteAuthorHandler{db: db, log: log.With("handler", "DeleteAuthorHandler"), authorRepo: authorRepo}
}

// Handle reports false when no author has cmd.ID. Blogs owned by the author are left in place.
func (h *DeleteAuthorHandler) Handle(ctx context.Context, cmd DeleteAuthor) (bool, error) {
	deleted := false
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := h.authorRepo.GetByID(dbc, cmd.ID)
		if err != nil || existing == nil {
			return err
		}
		if err := h.authorRepo.Delete(dbc, existing); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if deleted {
		h.log.Info(logmsg.AuthorDeletedSuccessfully, "author_id", cmd.ID)
	}
	return deleted, nil
}
