package queries

import (
	"errors"

	"github.com/yungbote/blogmanager-backend/internal/data/repos"
	"github.com/yungbote/blogmanager-backend/internal/dto"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

// Register adds every query handler to m.
func Register(m *mediator.Mediator, log *logger.Logger, authorRepo repos.AuthorRepo, blogRepo repos.BlogRepo) error {
	return errors.Join(
		mediator.RegisterQuery[GetAuthorByID, *dto.Author](m, NewGetAuthorByIDHandler(log, authorRepo)),
		mediator.RegisterQuery[GetAuthorList, []dto.Author](m, NewGetAuthorListHandler(log, authorRepo)),
		mediator.RegisterQuery[GetBlogByID, *dto.Blog](m, NewGetBlogByIDHandler(log, blogRepo)),
		mediator.RegisterQuery[GetBlogList, []dto.Blog](m, NewGetBlogListHandler(log, blogRepo)),
		mediator.RegisterQuery[GetBlogsByAuthor, []dto.Blog](m, NewGetBlogsByAuthorHandler(log, blogRepo)),
	)
}
