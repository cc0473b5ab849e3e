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

type GetAuthorByID struct {
	ID uuid.UUID
}

func (GetAuthorByID) Kind() mediator.Kind { return "author.get" }

type GetAuthorList struct{}

func (GetAuthorList) Kind() mediator.Kind { return "author.list" }

type GetAuthorByIDHandler struct {
	log        *logger.Logger
	authorRepo repos.AuthorRepo
}

func NewGetAuthorByIDHandler(log *logger.Logger, authorRepo repos.AuthorRepo) *GetAuthorByIDHandler {
	return &GetAuthorByIDHandler{log: log.With("handler", "GetAuthorByIDHandler"), authorRepo: authorRepo}
}

func (h *GetAuthorByIDHandler) Handle(ctx context.Context, q GetAuthorByID) (*dto.Author, error) {
	author, err := h.authorRepo.GetByID(dbctx.Context{Ctx: ctx}, q.ID)
	if err != nil {
		return nil, err
	}
	h.log.Info(logmsg.AuthorGetSuccessfully, "author_id", q.ID, "found", author != nil)
	return dto.AuthorFromEntity(author), nil
}

type GetAuthorListHandler struct {
	log        *logger.Logger
	authorRepo repos.AuthorRepo
}

func NewGetAuthorListHandler(log *logger.Logger, authorRepo repos.AuthorRepo) *GetAuthorListHandler {
	return &GetAuthorListHandler{log: log.With("handler", "GetAuthorListHandler"), authorRepo: authorRepo}
}

func (h *GetAuthorListHandler) Handle(ctx context.Context, _ GetAuthorList) ([]dto.Author, error) {
	rows, err := h.authorRepo.GetAll(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, err
	}
	h.log.Info(logmsg.AuthorListGetSuccessfully, "count", len(rows))
	return dto.AuthorsFromEntities(rows), nil
}
