package repository

import (
	"context"

	"github.com/abr-content-api/internal/database"
	"github.com/abr-content-api/internal/models"
)

// ArticleRepository defines the read interface for article rows. All
// queries are scoped to published articles; drafts never leave this layer.
type ArticleRepository interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListFeatured(ctx context.Context, limit int) ([]*models.Article, error)
	ListPublishedWithEdition(ctx context.Context) ([]*models.Article, error)
	ListByEdition(ctx context.Context, editionID int64) ([]*models.Article, error)
	CountPublishedByEdition(ctx context.Context, editionID int64) (int, error)
	Count(ctx context.Context) (int, error)
}

// EditionRepository defines the read interface for edition rows
type EditionRepository interface {
	ListPublishedByPublication(ctx context.Context, publicationID int64) ([]*models.Edition, error)
	GetByID(ctx context.Context, id, publicationID int64) (*models.Edition, error)
	Count(ctx context.Context) (int, error)
}

// PersonRepository defines the read interface for people rows
type PersonRepository interface {
	ListActive(ctx context.Context) ([]*models.Person, error)
	Count(ctx context.Context) (int, error)
}

// TeamRepository defines the read interface for team rows
type TeamRepository interface {
	List(ctx context.Context) ([]*models.Team, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Edition EditionRepository
	Person  PersonRepository
	Team    TeamRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		Edition: NewEditionRepo(db),
		Person:  NewPersonRepo(db),
		Team:    NewTeamRepo(db),
	}
}
