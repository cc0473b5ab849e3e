package commands

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/yungbote/blogmanager-backend/internal/core/logmsg"
	"github.com/yungbote/blogmanager-backend/internal/data/repos"
	"github.com/yungbote/blogmanager-backend/internal/data/repos/testutil"
	types "github.com/yungbote/blogmanager-backend/internal/domain"
	"github.com/yungbote/blogmanager-backend/internal/dto"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/platform/dbctx"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type fixture struct {
	db         *gorm.DB
	log        *logger.Logger
	logs       *observer.ObservedLogs
	authorRepo repos.AuthorRepo
	blogRepo   repos.BlogRepo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	log := logger.NewWithCore(core)
	db := testutil.DB(t)
	return fixture{
		db:         db,
		log:        log,
		logs:       logs,
		authorRepo: repos.NewAuthorRepo(db, log),
		blogRepo:   repos.NewBlogRepo(db, log),
	}
}

func TestCreateBlogPersistsAuthorID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	authorID := uuid.New()

	h := NewCreateBlogHandler(f.log, f.blogRepo)
	got, err := h.Handle(ctx, CreateBlog{
		AuthorID:    authorID,
		Title:       "Test Title",
		Description: "Test Description",
		Content:     "Test Content",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotEqual(t, uuid.Nil, got.ID)
	require.Equal(t, authorID, got.AuthorID)

	var stored []types.Blog
	require.NoError(t, f.db.Where("id = ?", got.ID).Find(&stored).Error)
	require.Len(t, stored, 1)
	require.Equal(t, authorID, stored[0].AuthorID)
	require.Equal(t, "Test Title", stored[0].Title)

	require.Equal(t, 1, f.logs.FilterMessage(logmsg.BlogCreatedSuccessfully).Len())
}

func TestCreateAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := NewCreateAuthorHandler(f.log, f.authorRepo).Handle(ctx, CreateAuthor{Name: "Ada", Surname: "Lovelace"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)

	stored, err := f.authorRepo.GetByID(testDBC(ctx), got.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "Lovelace", stored.Surname)
	require.Equal(t, 1, f.logs.FilterMessage(logmsg.AuthorCreatedSuccessfully).Len())
}

func TestUpdateAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seeded := testutil.SeedAuthor(t, ctx, f.db, "Old", "Name")

	h := NewUpdateAuthorHandler(f.db, f.log, f.authorRepo)
	got, err := h.Handle(ctx, UpdateAuthor{ID: seeded.ID, Name: "New", Surname: "Surname"})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, seeded.ID, got.ID)
	require.Equal(t, "New", got.Name)

	stored, err := f.authorRepo.GetByID(testDBC(ctx), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, "Surname", stored.Surname)

	missing, err := h.Handle(ctx, UpdateAuthor{ID: uuid.New(), Name: "x"})
	require.NoError(t, err)
	require.Nil(t, missing)
	require.Equal(t, 1, f.logs.FilterMessage(logmsg.AuthorUpdatedSuccessfully).Len())
}

func TestDeleteAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seeded := testutil.SeedAuthor(t, ctx, f.db, "Gone", "Soon")

	h := NewDeleteAuthorHandler(f.db, f.log, f.authorRepo)
	deleted, err := h.Handle(ctx, DeleteAuthor{ID: seeded.ID})
	require.NoError(t, err)
	require.True(t, deleted)

	stored, err := f.authorRepo.GetByID(testDBC(ctx), seeded.ID)
	require.NoError(t, err)
	require.Nil(t, stored)

	deleted, err = h.Handle(ctx, DeleteAuthor{ID: seeded.ID})
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestUpdateBlogKeepsAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := testutil.SeedAuthor(t, ctx, f.db, "Ada", "Lovelace")
	seeded := testutil.SeedBlog(t, ctx, f.db, author.ID, "Draft")

	h := NewUpdateBlogHandler(f.db, f.log, f.blogRepo)
	got, err := h.Handle(ctx, UpdateBlog{
		ID:          seeded.ID,
		Title:       "Final",
		Description: "desc",
		Content:     "body",
		Tags:        []string{"go", "orm"},
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, author.ID, got.AuthorID)
	require.Equal(t, []string{"go", "orm"}, got.Tags)

	stored, err := f.blogRepo.GetByID(testDBC(ctx), seeded.ID, false)
	require.NoError(t, err)
	require.Equal(t, "Final", stored.Title)
	require.Equal(t, author.ID, stored.AuthorID)

	missing, err := h.Handle(ctx, UpdateBlog{ID: uuid.New(), Title: "x"})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestDeleteBlog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seeded := testutil.SeedBlog(t, ctx, f.db, uuid.New(), "Orphan")

	h := NewDeleteBlogHandler(f.db, f.log, f.blogRepo)
	deleted, err := h.Handle(ctx, DeleteBlog{ID: seeded.ID})
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = h.Handle(ctx, DeleteBlog{ID: uuid.New()})
	require.NoError(t, err)
	require.False(t, deleted)
	require.Equal(t, 1, f.logs.FilterMessage(logmsg.BlogDeletedSuccessfully).Len())
}

func TestRegisterRoutesEveryCommand(t *testing.T) {
	f := newFixture(t)
	m := mediator.New(f.log)
	require.NoError(t, Register(m, f.db, f.log, f.authorRepo, f.blogRepo))
	m.Seal()

	routes := m.Routes()
	require.Len(t, routes, 6)
	for _, r := range routes {
		require.Equal(t, mediator.CategoryCommand, r.Category)
	}

	created, err := mediator.Send[*dto.Author](context.Background(), m, CreateAuthor{Name: "Via", Surname: "Mediator"})
	require.NoError(t, err)
	require.NotNil(t, created)

	require.ErrorIs(t, Register(m, f.db, f.log, f.authorRepo, f.blogRepo), mediator.ErrSealed)
}

func testDBC(ctx context.Context) dbctx.Context { return dbctx.Context{Ctx: ctx} }

func TestHandlersReturnStoreErrorsUnchanged(t *testing.T) {
	f := newFixture(t)
	seeded := testutil.SeedAuthor(t, context.Background(), f.db, "Ada", "Lovelace")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCreateAuthorHandler(f.log, f.authorRepo).Handle(ctx, CreateAuthor{Name: "Ada", Surname: "Lovelace"})
	require.Equal(t, context.Canceled, err)

	_, err = NewUpdateAuthorHandler(f.db, f.log, f.authorRepo).Handle(ctx, UpdateAuthor{ID: seeded.ID, Name: "x"})
	require.Equal(t, context.Canceled, err)

	deleted, err := NewDeleteAuthorHandler(f.db, f.log, f.authorRepo).Handle(ctx, DeleteAuthor{ID: seeded.ID})
	require.Equal(t, context.Canceled, err)
	require.False(t, deleted)

	_, err = NewCreateBlogHandler(f.log, f.blogRepo).Handle(ctx, CreateBlog{AuthorID: seeded.ID, Title: "t"})
	require.Equal(t, context.Canceled, err)

	stored, err := f.authorRepo.GetByID(testDBC(context.Background()), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada", stored.Name)
	require.Zero(t, f.logs.FilterMessage(logmsg.AuthorCreatedSuccessfully).Len())
	require.Zero(t, f.logs.FilterMessage(logmsg.BlogCreatedSuccessfully).Len())
}
