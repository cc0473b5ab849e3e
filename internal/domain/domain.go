package domain

import (
	"github.com/yungbote/blogmanager-backend/internal/domain/blog"
)

type Author = blog.Author
type Blog = blog.Blog

var (
	NewAuthor = blog.NewAuthor
	NewBlog   = blog.NewBlog
)

// Models lists every persisted type, in dependency order.
func Models() []any {
	return []any{
		&Author{},
		&Blog{},
	}
}
