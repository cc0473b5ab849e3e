package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/blogmanager-backend/internal/data/repos"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type Repos struct {
	Author repos.AuthorRepo
	Blog   repos.BlogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Author: repos.NewAuthorRepo(db, log),
		Blog:   repos.NewBlogRepo(db, log),
	}
}
