package blog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewAuthorAssignsID(t *testing.T) {
	a := NewAuthor("Ada", "Lovelace")
	require.NotEqual(t, uuid.Nil, a.ID)
	require.Equal(t, "Ada", a.Name)
	require.Equal(t, "Lovelace", a.Surname)
}

func TestAuthorUpdateKeepsID(t *testing.T) {
	a := NewAuthor("Ada", "Lovelace")
	id := a.ID
	a.Update("Grace", "Hopper")
	require.Equal(t, id, a.ID)
	require.Equal(t, "Grace", a.Name)
	require.Equal(t, "Hopper", a.Surname)
}

func TestBlogUpdateKeepsOwner(t *testing.T) {
	owner := uuid.New()
	b := NewBlog(owner, "t", "d", "c", []string{"go"})
	id := b.ID
	b.Update("t2", "d2", "c2", nil)
	require.Equal(t, id, b.ID)
	require.Equal(t, owner, b.AuthorID)
	require.Equal(t, "t2", b.Title)
	require.Empty(t, b.Tags)
}

func TestBeforeCreateFillsMissingID(t *testing.T) {
	a := &Author{Name: "x"}
	require.NoError(t, a.BeforeCreate(nil))
	require.NotEqual(t, uuid.Nil, a.ID)

	b := &Blog{Title: "x"}
	require.NoError(t, b.BeforeCreate(nil))
	require.NotEqual(t, uuid.Nil, b.ID)
}
