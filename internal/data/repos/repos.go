package repos

import (
	"github.com/yungbote/blogmanager-backend/internal/data/repos/blog"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type AuthorRepo = blog.AuthorRepo
type BlogRepo = blog.BlogRepo

func NewAuthorRepo(db *gorm.DB, baseLog *logger.Logger) AuthorRepo {
	return blog.NewAuthorRepo(db, baseLog)
}
func NewBlogRepo(db *gorm.DB, baseLog *logger.Logger) BlogRepo {
	return blog.NewBlogRepo(db, baseLog)
}
