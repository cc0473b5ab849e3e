package dto

import (
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/blogmanager-backend/internal/domain"
)

type Blog struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	AuthorID    uuid.UUID `json:"author_id"`
	Author      *Author   `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func BlogFromEntity(b *types.Blog) *Blog {
	if b == nil {
		return nil
	}
	tags := make([]string, 0, len(b.Tags))
	tags = append(tags, b.Tags...)
	return &Blog{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Content:     b.Content,
		Tags:        tags,
		AuthorID:    b.AuthorID,
		Author:      AuthorFromEntity(b.Author),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func BlogsFromEntities(rows []*types.Blog) []Blog {
	out := make([]Blog, 0, len(rows))
	for _, b := range rows {
		if d := BlogFromEntity(b); d != nil {
			out = append(out, *d)
		}
	}
	return out
}
