package service

import (
	"context"

	"github.com/abr-content-api/internal/config"
	"github.com/abr-content-api/internal/models"
	"github.com/abr-content-api/internal/repository"
	"github.com/abr-content-api/internal/views"
	"github.com/rs/zerolog"
)

// contentService is the concrete implementation of ContentService
type contentService struct {
	repos *repository.Repositories
	cfg   *config.ContentConfig
	log   zerolog.Logger
}

// newContentService creates a new ContentService
func newContentService(repos *repository.Repositories, cfg *config.ContentConfig, log zerolog.Logger) *contentService {
	return &contentService{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("service", "content").Logger(),
	}
}

// FeaturedArticles returns the newest published featured articles as view
// models, capped at the configured limit
func (s *contentService) FeaturedArticles(ctx context.Context) ([]views.ArticleView, error) {
	articles, err := s.repos.Article.ListFeatured(ctx, s.cfg.FeaturedLimit)
	if err != nil {
		s.log.Error().Err(err).Msg("Error fetching featured articles")
		return nil, fetchFailed(MsgFailedLoadFeatured, err)
	}
	return views.MapArticles(articles), nil
}

// MagazineArticles returns the published Magazine articles as view models.
// This is a two-stage pipeline: a broad fetch of all edition-bound
// published articles, then an in-memory filter on the joined edition's
// publication id.
// TODO: push the publication filter into the SQL join in
// ListPublishedWithEdition and drop the in-memory stage.
func (s *contentService) MagazineArticles(ctx context.Context) ([]views.ArticleView, error) {
	articles, err := s.repos.Article.ListPublishedWithEdition(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Error fetching magazine articles")
		return nil, fetchFailed(MsgFailedLoadArticles, err)
	}

	magazine := make([]*models.Article, 0, len(articles))
	for _, a := range articles {
		if a.Edition != nil && a.Edition.PublicationID == s.cfg.MagazinePublicationID {
			magazine = append(magazine, a)
		}
	}

	return views.MapArticles(magazine), nil
}

// ArticleBySlug returns one published article with its author, category
// and edition joins. The raw joined row is returned; the article page
// renders full content rather than the card view model.
func (s *contentService) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.repos.Article.GetPublishedBySlug(ctx, slug)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("Error fetching article")
		return nil, fetchFailed(MsgArticleNotFound, err)
	}
	if article == nil {
		return nil, notFound(MsgArticleNotFound)
	}
	return article, nil
}
