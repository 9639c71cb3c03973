package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPostImage is the placeholder cover assigned when a post is
// created without an image URL.
const DefaultPostImage = "https://via.placeholder.com/600x800.png"

// Post represents a blog post. OwnerID is set at creation and never
// changes afterwards; updates go through a whitelisted field struct
// that cannot touch it.
type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Image     string    `json:"image" gorm:"size:512"`
	OwnerID   uuid.UUID `json:"user" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID and default image before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Image == "" {
		p.Image = DefaultPostImage
	}
	return nil
}
