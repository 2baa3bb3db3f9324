package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abr-content-api/internal/config"
	"github.com/abr-content-api/internal/mocks"
	"github.com/abr-content-api/internal/models"
	"github.com/abr-content-api/internal/service"
	"github.com/abr-content-api/internal/views"
	"github.com/rs/zerolog"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func testConfig() *config.Config {
	return &config.Config{
		Content: config.ContentConfig{
			MagazinePublicationID: 1,
			MonoclePublicationID:  2,
			FeaturedLimit:         6,
		},
	}
}

func newTestServices() (*service.Services, *mocks.MockArticleRepository, *mocks.MockEditionRepository, *mocks.MockPersonRepository, *mocks.MockTeamRepository) {
	repos, articles, editions, people, teams := mocks.NewMockRepositories()
	services := service.NewServices(repos, testConfig(), zerolog.Nop())
	return services, articles, editions, people, teams
}

// publishedArticle builds a published article bound to an edition of the
// given publication
func publishedArticle(id int64, slug string, editionID, publicationID int64, publishedAt time.Time) *models.Article {
	return &models.Article{
		ID:          id,
		Slug:        slug,
		Title:       slug,
		Status:      models.StatusPublished,
		PublishedAt: timePtr(publishedAt),
		EditionID:   int64Ptr(editionID),
		Edition: &models.Edition{
			ID:            editionID,
			Title:         "Edition",
			PublicationID: publicationID,
		},
	}
}

func TestContentService_FeaturedArticles(t *testing.T) {
	services, articleRepo, _, _, _ := newTestServices()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 8; i++ {
		articleRepo.Articles = append(articleRepo.Articles, &models.Article{
			ID:          i,
			Slug:        "featured",
			Title:       "Featured",
			Status:      models.StatusPublished,
			IsFeatured:  true,
			PublishedAt: timePtr(base.AddDate(0, 0, int(i))),
		})
	}
	// Non-featured and draft rows must never appear
	articleRepo.Articles = append(articleRepo.Articles,
		&models.Article{ID: 100, Slug: "plain", Status: models.StatusPublished},
		&models.Article{ID: 101, Slug: "draft", Status: models.StatusDraft, IsFeatured: true},
	)

	got, err := services.Content.FeaturedArticles(ctx)
	if err != nil {
		t.Fatalf("FeaturedArticles failed: %v", err)
	}

	if len(got) != 6 {
		t.Fatalf("Expected limit of 6 articles, got %d", len(got))
	}
	// Newest first
	if got[0].ID != 8 {
		t.Errorf("Expected newest article first, got id %d", got[0].ID)
	}
}

func TestContentService_FeaturedArticles_FetchFailed(t *testing.T) {
	services, articleRepo, _, _, _ := newTestServices()
	articleRepo.Err = errors.New("connection reset by peer")

	_, err := services.Content.FeaturedArticles(context.Background())
	if err == nil {
		t.Fatal("Expected error")
	}

	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected *service.Error, got %T", err)
	}
	if svcErr.Kind != service.KindFetchFailed {
		t.Errorf("Expected KindFetchFailed, got %v", svcErr.Kind)
	}
	if svcErr.Message != service.MsgFailedLoadFeatured {
		t.Errorf("Expected fixed message %q, got %q", service.MsgFailedLoadFeatured, svcErr.Message)
	}
	// The store error is wrapped for logging, never in the message
	if svcErr.Error() != service.MsgFailedLoadFeatured {
		t.Errorf("User-facing error must be the fixed message, got %q", svcErr.Error())
	}
}

func TestContentService_MagazineArticles_FiltersByPublication(t *testing.T) {
	services, articleRepo, _, _, _ := newTestServices()
	ctx := context.Background()

	now := time.Now()
	articleRepo.Articles = []*models.Article{
		publishedArticle(1, "magazine-one", 10, 1, now.AddDate(0, 0, -1)),
		publishedArticle(2, "monocle-one", 20, 2, now.AddDate(0, 0, -2)),
		publishedArticle(3, "magazine-two", 10, 1, now.AddDate(0, 0, -3)),
		// Published but no edition: excluded by the broad fetch itself
		{ID: 4, Slug: "loose", Title: "Loose", Status: models.StatusPublished, PublishedAt: timePtr(now)},
	}

	got, err := services.Content.MagazineArticles(ctx)
	if err != nil {
		t.Fatalf("MagazineArticles failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 magazine articles, got %d", len(got))
	}
	for _, v := range got {
		if v.ID != 1 && v.ID != 3 {
			t.Errorf("Article %d does not belong to the Magazine publication", v.ID)
		}
	}
}

func TestContentService_MagazineArticles_FetchFailed(t *testing.T) {
	services, articleRepo, _, _, _ := newTestServices()
	articleRepo.Err = errors.New("timeout")

	_, err := services.Content.MagazineArticles(context.Background())
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected *service.Error, got %v", err)
	}
	if svcErr.Message != service.MsgFailedLoadArticles {
		t.Errorf("Expected %q, got %q", service.MsgFailedLoadArticles, svcErr.Message)
	}
}

func TestContentService_ArticleBySlug(t *testing.T) {
	services, articleRepo, _, _, _ := newTestServices()
	ctx := context.Background()

	articleRepo.Articles = []*models.Article{
		{
			ID:     1,
			Slug:   "campus-economy",
			Title:  "The Campus Economy",
			Status: models.StatusPublished,
			Author: &models.Person{ID: 1, FullName: strPtr("Sarah Johnson")},
		},
		{ID: 2, Slug: "hidden-draft", Title: "Hidden Draft", Status: models.StatusDraft},
	}

	article, err := services.Content.ArticleBySlug(ctx, "campus-economy")
	if err != nil {
		t.Fatalf("ArticleBySlug failed: %v", err)
	}
	if article.ID != 1 {
		t.Errorf("Expected article 1, got %d", article.ID)
	}
	// Raw joined shape is returned, not a card view model
	if article.Author == nil || article.Author.FullName == nil {
		t.Error("Expected the joined author sub-row to be preserved")
	}
}

func TestContentService_ArticleBySlug_DraftNotVisible(t *testing.T) {
	services, articleRepo, _, _, _ := newTestServices()
	articleRepo.Articles = []*models.Article{
		{ID: 2, Slug: "hidden-draft", Title: "Hidden Draft", Status: models.StatusDraft},
	}

	_, err := services.Content.ArticleBySlug(context.Background(), "hidden-draft")
	var svcErr *service.Error
	if !errors.As(err, &svcErr) || svcErr.Kind != service.KindNotFound {
		t.Fatalf("Draft lookup must be NotFound, got %v", err)
	}
}

func TestContentService_ArticleBySlug_NotFound(t *testing.T) {
	services, _, _, _, _ := newTestServices()

	_, err := services.Content.ArticleBySlug(context.Background(), "does-not-exist")
	if err == nil {
		t.Fatal("Expected error")
	}

	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected *service.Error, got %T", err)
	}
	if svcErr.Kind != service.KindNotFound {
		t.Errorf("Expected KindNotFound, got %v", svcErr.Kind)
	}
	if svcErr.Message != service.MsgArticleNotFound {
		t.Errorf("Expected %q, got %q", service.MsgArticleNotFound, svcErr.Message)
	}
}

func TestContentService_MagazineArticles_MapsViewModels(t *testing.T) {
	services, articleRepo, _, _, _ := newTestServices()

	a := publishedArticle(1, "mapped", 10, 1, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	a.ReadTime = intPtr(3)
	articleRepo.Articles = []*models.Article{a}

	got, err := services.Content.MagazineArticles(context.Background())
	if err != nil {
		t.Fatalf("MagazineArticles failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(got))
	}
	if got[0].ReadTime != "3 min read" {
		t.Errorf("Expected mapped read time, got %q", got[0].ReadTime)
	}
	if got[0].Author != views.UnknownAuthor {
		t.Errorf("Expected author fallback, got %q", got[0].Author)
	}
	if got[0].Link != "/article/mapped" {
		t.Errorf("Expected link, got %q", got[0].Link)
	}
}
