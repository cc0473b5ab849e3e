package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/blogmanager-backend/internal/domain"
)

func SeedAuthor(tb testing.TB, ctx context.Context, tx *gorm.DB, name, surname string) *types.Author {
	tb.Helper()
	a := types.NewAuthor(name, surname)
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed author: %v", err)
	}
	return a
}

func SeedBlog(tb testing.TB, ctx context.Context, tx *gorm.DB, authorID uuid.UUID, title string) *types.Blog {
	tb.Helper()
	b := types.NewBlog(authorID, title, title+" description", title+" content", []string{"seed"})
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed blog: %v", err)
	}
	return b
}

// SeedAuthors creates n authors with predictable names.
func SeedAuthors(tb testing.TB, ctx context.Context, tx *gorm.DB, n int) []*types.Author {
	tb.Helper()
	out := make([]*types.Author, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SeedAuthor(tb, ctx, tx, "Name "+string(rune('A'+i)), "Surname "+string(rune('A'+i))))
	}
	return out
}
