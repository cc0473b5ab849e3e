package blog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Author struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Surname   string    `gorm:"not null;column:surname" json:"surname"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Author) TableName() string { return "author" }

// NewAuthor assigns the identity up front so callers never see a nil id.
func NewAuthor(name, surname string) *Author {
	return &Author{
		ID:      uuid.New(),
		Name:    name,
		Surname: surname,
	}
}

// Update replaces name and surname; the id is left untouched.
func (a *Author) Update(name, surname string) {
	a.Name = name
	a.Surname = surname
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
