package models

import (
	"time"
)

// Edition represents a row from the editions table. PublicationID ties the
// edition to one of the two publications; the Publication sub-row is only
// populated when the query joins it.
type Edition struct {
	ID              int64      `json:"id" db:"id"`
	Title           string     `json:"title" db:"title"`
	Subtitle        *string    `json:"subtitle,omitempty" db:"subtitle"`
	Description     *string    `json:"description,omitempty" db:"description"`
	CoverImage      *string    `json:"cover_image,omitempty" db:"cover_image"`
	IssueNumber     *int       `json:"issue_number,omitempty" db:"issue_number"`
	PublicationDate *time.Time `json:"publication_date,omitempty" db:"publication_date"`
	Status          string     `json:"status" db:"status"`
	PublicationID   int64      `json:"publication_id" db:"publication_id"`

	Publication *Publication `json:"publication,omitempty" db:"-"`
}

// Publication represents a row from the publications table
type Publication struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Type string `json:"type" db:"type"`
	Slug string `json:"slug" db:"slug"`
}
