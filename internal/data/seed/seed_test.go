package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/blogmanager-backend/internal/data/repos"
	"github.com/yungbote/blogmanager-backend/internal/data/repos/testutil"
	"github.com/yungbote/blogmanager-backend/internal/platform/dbctx"
)

func TestDefaultFixtureParses(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	require.Len(t, f.Authors, 3)
	require.Equal(t, "Lovelace", f.Authors[0].Surname)
	require.Len(t, f.Authors[0].Blogs, 2)
	require.Equal(t, []string{"history", "computing"}, f.Authors[0].Blogs[0].Tags)
}

func TestParseRejectsInvalidFixtures(t *testing.T) {
	_, err := Parse([]byte("authors:\n  - surname: NoName\n    id: 6f1c1f8e-2a4b-4c3d-9e5f-0a1b2c3d4e5f\n"))
	require.Error(t, err)

	_, err = Parse([]byte("authors:\n  - name: NoID\n"))
	require.ErrorContains(t, err, "id required")

	_, err = Parse([]byte("authors:\n  - name: A\n    id: not-a-uuid\n"))
	require.Error(t, err)

	_, err = Parse([]byte("authors:\n  - name: A\n    id: 6f1c1f8e-2a4b-4c3d-9e5f-0a1b2c3d4e5f\n    blogs:\n      - description: untitled\n"))
	require.Error(t, err)

	_, err = Parse([]byte("authors: [\n"))
	require.Error(t, err)
}

func TestApplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	f, err := Default()
	require.NoError(t, err)

	res, err := Apply(ctx, db, log, f)
	require.NoError(t, err)
	require.Equal(t, Result{Authors: 3, Blogs: 3}, res)

	again, err := Apply(ctx, db, log, f)
	require.NoError(t, err)
	require.Equal(t, Result{Skipped: 3}, again)

	dbc := dbctx.Context{Ctx: ctx}
	authors, err := repos.NewAuthorRepo(db, log).GetAll(dbc)
	require.NoError(t, err)
	require.Len(t, authors, 3)

	ada := uuid.MustParse(f.Authors[0].ID)
	blogs, err := repos.NewBlogRepo(db, log).GetByAuthorID(dbc, ada, true)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	require.Equal(t, "Ada", blogs[0].Author.Name)
}

func TestLoadFromFileAppliesOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
authors:
  - id: 2d7e4c1a-8b3f-4e6d-a5c9-1f0e2d3c4b5a
    name: Barbara
    surname: Liskov
    blogs:
      - title: Substitution
        content: Subtypes must be substitutable.
`), 0o600))

	f, err := Load(path)
	require.NoError(t, err)

	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	res, err := Apply(ctx, db, log, f)
	require.NoError(t, err)
	require.Equal(t, Result{Authors: 1, Blogs: 1}, res)

	again, err := Apply(ctx, db, log, f)
	require.NoError(t, err)
	require.Equal(t, Result{Skipped: 1}, again)

	blogs, err := repos.NewBlogRepo(db, log).GetAll(dbctx.Context{Ctx: ctx}, false)
	require.NoError(t, err)
	require.Len(t, blogs, 1)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
