package blog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/blogmanager-backend/internal/data/repos/testutil"
	types "github.com/yungbote/blogmanager-backend/internal/domain"
	"github.com/yungbote/blogmanager-backend/internal/platform/dbctx"
)

func TestBlogRepoGetByIDIncludeAuthor(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	author := testutil.SeedAuthor(t, ctx, db, "Ada", "Lovelace")
	seeded := testutil.SeedBlog(t, ctx, db, author.ID, "Engines")
	repo := NewBlogRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx}

	plain, err := repo.GetByID(dbc, seeded.ID, false)
	require.NoError(t, err)
	require.NotNil(t, plain)
	require.Equal(t, author.ID, plain.AuthorID)
	require.Nil(t, plain.Author)
	require.Equal(t, []string{"seed"}, []string(plain.Tags))

	withAuthor, err := repo.GetByID(dbc, seeded.ID, true)
	require.NoError(t, err)
	require.NotNil(t, withAuthor)
	require.NotNil(t, withAuthor.Author)
	require.Equal(t, "Ada", withAuthor.Author.Name)
}

func TestBlogRepoGetByIDUnknown(t *testing.T) {
	repo := NewBlogRepo(testutil.DB(t), testutil.Logger(t))

	got, err := repo.GetByID(dbctx.Context{Ctx: context.Background()}, uuid.New(), true)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestBlogRepoGetAll(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewBlogRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx}

	empty, err := repo.GetAll(dbc, true)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	author := testutil.SeedAuthor(t, ctx, db, "Ada", "Lovelace")
	testutil.SeedBlog(t, ctx, db, author.ID, "One")
	testutil.SeedBlog(t, ctx, db, author.ID, "Two")
	orphan := testutil.SeedBlog(t, ctx, db, uuid.New(), "Orphan")

	all, err := repo.GetAll(dbc, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, b := range all {
		if b.ID == orphan.ID {
			require.Nil(t, b.Author)
			continue
		}
		require.NotNil(t, b.Author)
		require.Equal(t, author.ID, b.Author.ID)
	}
}

func TestBlogRepoGetByAuthorID(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewBlogRepo(db, testutil.Logger(t))
	a := testutil.SeedAuthor(t, ctx, db, "A", "A")
	b := testutil.SeedAuthor(t, ctx, db, "B", "B")
	testutil.SeedBlog(t, ctx, db, a.ID, "a1")
	testutil.SeedBlog(t, ctx, db, a.ID, "a2")
	testutil.SeedBlog(t, ctx, db, b.ID, "b1")

	got, err := repo.GetByAuthorID(dbctx.Context{Ctx: ctx}, a.ID, false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, blog := range got {
		require.Equal(t, a.ID, blog.AuthorID)
	}
}

func TestBlogRepoAddUpdateDelete(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewBlogRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx}
	authorID := uuid.New()

	added, err := repo.Add(dbc, types.NewBlog(authorID, "Test Title", "Test Description", "Test Content", nil))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, added.ID)

	var count int64
	require.NoError(t, db.Model(&types.Blog{}).Where("id = ?", added.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)

	added.Update("New Title", "New Description", "New Content", []string{"go", "gorm"})
	_, err = repo.Update(dbc, added)
	require.NoError(t, err)

	stored, err := repo.GetByID(dbc, added.ID, false)
	require.NoError(t, err)
	require.Equal(t, "New Title", stored.Title)
	require.Equal(t, authorID, stored.AuthorID)
	require.Equal(t, []string{"go", "gorm"}, []string(stored.Tags))

	require.NoError(t, repo.Delete(dbc, stored))
	gone, err := repo.GetByID(dbc, added.ID, false)
	require.NoError(t, err)
	require.Nil(t, gone)
}
