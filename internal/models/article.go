package models

import (
	"time"
)

// Article statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article represents one row from the articles table, optionally carrying
// joined author/category/edition sub-rows. Optional columns are pointers;
// an absent join leaves the sub-row nil.
type Article struct {
	ID            int64      `json:"id" db:"id"`
	Slug          string     `json:"slug" db:"slug"`
	Title         string     `json:"title" db:"title"`
	Excerpt       *string    `json:"excerpt,omitempty" db:"excerpt"`
	Content       string     `json:"content" db:"content"`
	FeaturedImage *string    `json:"featured_image,omitempty" db:"featured_image"`
	Status        string     `json:"status" db:"status"`
	IsFeatured    bool       `json:"is_featured" db:"is_featured"`
	ReadTime      *int       `json:"read_time,omitempty" db:"read_time"`
	PublishedAt   *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt     *time.Time `json:"created_at,omitempty" db:"created_at"`
	AuthorID      int64      `json:"author_id" db:"author_id"`
	CategoryID    *int64     `json:"category_id,omitempty" db:"category_id"`
	EditionID     *int64     `json:"edition_id,omitempty" db:"edition_id"`

	Author   *Person   `json:"author,omitempty" db:"-"`
	Category *Category `json:"category,omitempty" db:"-"`
	Edition  *Edition  `json:"edition,omitempty" db:"-"`
}

// Category represents a row from the categories table
type Category struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Color *string `json:"color,omitempty" db:"color"`
}
