package service

import (
	"context"

	"github.com/abr-content-api/internal/config"
	"github.com/abr-content-api/internal/models"
	"github.com/abr-content-api/internal/repository"
	"github.com/abr-content-api/internal/views"
	"github.com/rs/zerolog"
)

// ContentService defines the article query functions
type ContentService interface {
	FeaturedArticles(ctx context.Context) ([]views.ArticleView, error)
	MagazineArticles(ctx context.Context) ([]views.ArticleView, error)
	ArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
}

// EditionService defines the edition query functions
type EditionService interface {
	MonocleEditions(ctx context.Context) ([]views.EditionView, error)
	EditionByID(ctx context.Context, id int64) (*models.Edition, error)
	EditionWithArticles(ctx context.Context, id int64) (*views.EditionView, []views.ArticleView, error)
}

// TeamService defines the team roster query functions
type TeamService interface {
	Departments(ctx context.Context) ([]views.TeamDepartment, error)
}

// StatsService exposes row counts for the metrics endpoint
type StatsService interface {
	GetCount(ctx context.Context, resource string) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Content ContentService
	Edition EditionService
	Team    TeamService
	Stats   StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Content: newContentService(repos, &cfg.Content, log),
		Edition: newEditionService(repos, &cfg.Content, log),
		Team:    newTeamService(repos, log),
		Stats:   newStatsService(repos, log),
	}
}
