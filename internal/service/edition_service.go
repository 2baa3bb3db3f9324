package service

import (
	"context"

	"github.com/abr-content-api/internal/config"
	"github.com/abr-content-api/internal/models"
	"github.com/abr-content-api/internal/repository"
	"github.com/abr-content-api/internal/views"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// editionService is the concrete implementation of EditionService
type editionService struct {
	repos *repository.Repositories
	cfg   *config.ContentConfig
	log   zerolog.Logger
}

// newEditionService creates a new EditionService
func newEditionService(repos *repository.Repositories, cfg *config.ContentConfig, log zerolog.Logger) *editionService {
	return &editionService{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("service", "edition").Logger(),
	}
}

// MonocleEditions returns the published Monocle editions, newest first,
// each with its published-article count. The counts are companion queries
// issued concurrently, one per edition; a count can be stale relative to
// concurrent writes, which is acceptable for a read-mostly display.
func (s *editionService) MonocleEditions(ctx context.Context) ([]views.EditionView, error) {
	editions, err := s.repos.Edition.ListPublishedByPublication(ctx, s.cfg.MonoclePublicationID)
	if err != nil {
		s.log.Error().Err(err).Msg("Error fetching monocle editions")
		return nil, fetchFailed(MsgFailedLoadEditions, err)
	}

	counts := make([]int, len(editions))
	g, gctx := errgroup.WithContext(ctx)
	for i, edition := range editions {
		i, edition := i, edition
		g.Go(func() error {
			count, err := s.repos.Article.CountPublishedByEdition(gctx, edition.ID)
			if err != nil {
				return err
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Msg("Error counting edition articles")
		return nil, fetchFailed(MsgFailedLoadEditions, err)
	}

	out := make([]views.EditionView, 0, len(editions))
	for i, edition := range editions {
		out = append(out, views.MapEdition(edition, counts[i]))
	}
	return out, nil
}

// EditionByID returns one Monocle edition by id. Ids outside the Monocle
// publication are not found, by design.
func (s *editionService) EditionByID(ctx context.Context, id int64) (*models.Edition, error) {
	edition, err := s.repos.Edition.GetByID(ctx, id, s.cfg.MonoclePublicationID)
	if err != nil {
		s.log.Error().Err(err).Int64("edition_id", id).Msg("Error fetching edition")
		return nil, fetchFailed(MsgEditionNotFound, err)
	}
	if edition == nil {
		return nil, notFound(MsgEditionNotFound)
	}
	return edition, nil
}

// EditionWithArticles fetches an edition's metadata and its article list in
// parallel, jointly awaited; either failure aborts both. Both fetches share
// the request context, so an abandoned request cancels them.
func (s *editionService) EditionWithArticles(ctx context.Context, id int64) (*views.EditionView, []views.ArticleView, error) {
	var edition *models.Edition
	var articles []*models.Article

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		edition, err = s.EditionByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		articles, err = s.repos.Article.ListByEdition(gctx, id)
		if err != nil {
			s.log.Error().Err(err).Int64("edition_id", id).Msg("Error fetching articles by edition")
			return fetchFailed(MsgFailedLoadArticles, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	articleViews := views.MapArticles(articles)
	editionView := views.MapEdition(edition, len(articleViews))
	return &editionView, articleViews, nil
}
