package blog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Blog struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"not null;column:title" json:"title"`
	Description string                      `gorm:"column:description" json:"description"`
	Content     string                      `gorm:"type:text;column:content" json:"content"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags,omitempty"`
	AuthorID    uuid.UUID                   `gorm:"type:uuid;not null;index;column:author_id" json:"author_id"`
	CreatedAt   time.Time                   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"not null" json:"updated_at"`

	// Only populated when the author is explicitly preloaded.
	Author *Author `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
}

func (Blog) TableName() string { return "blog" }

func NewBlog(authorID uuid.UUID, title, description, content string, tags []string) *Blog {
	return &Blog{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Content:     content,
		Tags:        datatypes.JSONSlice[string](tags),
	}
}

// Update rewrites the editable fields. AuthorID is owned by creation and never changes here.
func (b *Blog) Update(title, description, content string, tags []string) {
	b.Title = title
	b.Description = description
	b.Content = content
	b.Tags = datatypes.JSONSlice[string](tags)
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
