package commands

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/blogmanager-backend/internal/data/repos"
	"github.com/yungbote/blogmanager-backend/internal/dto"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

// Register adds every command handler to m.
func Register(m *mediator.Mediator, db *gorm.DB, log *logger.Logger, authorRepo repos.AuthorRepo, blogRepo repos.BlogRepo) error {
	return errors.Join(
		mediator.RegisterCommand[CreateAuthor, *dto.Author](m, NewCreateAuthorHandler(log, authorRepo)),
		mediator.RegisterCommand[UpdateAuthor, *dto.Author](m, NewUpdateAuthorHandler(db, log, authorRepo)),
		mediator.RegisterCommand[DeleteAuthor, bool](m, NewDeleteAuthorHandler(db, log, authorRepo)),
		mediator.RegisterCommand[CreateBlog, *dto.Blog](m, NewCreateBlogHandler(log, blogRepo)),
		mediator.RegisterCommand[UpdateBlog, *dto.Blog](m, NewUpdateBlogHandler(db, log, blogRepo)),
		mediator.RegisterCommand[DeleteBlog, bool](m, NewDeleteBlogHandler(db, log, blogRepo)),
	)
}
