package dto

import (
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/blogmanager-backend/internal/domain"
)

type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AuthorFromEntity(a *types.Author) *Author {
	if a == nil {
		return nil
	}
	return &Author{
		ID:        a.ID,
		Name:      a.Name,
		Surname:   a.Surname,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AuthorsFromEntities never returns nil; nil entries are skipped.
func AuthorsFromEntities(rows []*types.Author) []Author {
	out := make([]Author, 0, len(rows))
	for _, a := range rows {
		if d := AuthorFromEntity(a); d != nil {
			out = append(out, *d)
		}
	}
	return out
}
