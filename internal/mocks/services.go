package mocks

import (
	"context"

	"github.com/abr-content-api/internal/models"
	"github.com/abr-content-api/internal/service"
	"github.com/abr-content-api/internal/views"
)

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	FeaturedFunc func(ctx context.Context) ([]views.ArticleView, error)
	MagazineFunc func(ctx context.Context) ([]views.ArticleView, error)
	BySlugFunc   func(ctx context.Context, slug string) (*models.Article, error)
}

// Verify interface compliance
var _ service.ContentService = (*MockContentService)(nil)

func NewMockContentService() *MockContentService {
	return &MockContentService{}
}

func (m *MockContentService) FeaturedArticles(ctx context.Context) ([]views.ArticleView, error) {
	if m.FeaturedFunc != nil {
		return m.FeaturedFunc(ctx)
	}
	return []views.ArticleView{}, nil
}

func (m *MockContentService) MagazineArticles(ctx context.Context) ([]views.ArticleView, error) {
	if m.MagazineFunc != nil {
		return m.MagazineFunc(ctx)
	}
	return []views.ArticleView{}, nil
}

func (m *MockContentService) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if m.BySlugFunc != nil {
		return m.BySlugFunc(ctx, slug)
	}
	return &models.Article{ID: 1, Slug: slug, Title: "Test Article", Status: models.StatusPublished}, nil
}

// MockEditionService is a mock implementation of EditionService
type MockEditionService struct {
	MonocleFunc      func(ctx context.Context) ([]views.EditionView, error)
	ByIDFunc         func(ctx context.Context, id int64) (*models.Edition, error)
	WithArticlesFunc func(ctx context.Context, id int64) (*views.EditionView, []views.ArticleView, error)
}

// Verify interface compliance
var _ service.EditionService = (*MockEditionService)(nil)

func NewMockEditionService() *MockEditionService {
	return &MockEditionService{}
}

func (m *MockEditionService) MonocleEditions(ctx context.Context) ([]views.EditionView, error) {
	if m.MonocleFunc != nil {
		return m.MonocleFunc(ctx)
	}
	return []views.EditionView{}, nil
}

func (m *MockEditionService) EditionByID(ctx context.Context, id int64) (*models.Edition, error) {
	if m.ByIDFunc != nil {
		return m.ByIDFunc(ctx, id)
	}
	return &models.Edition{ID: id, Title: "Test Edition", Status: models.StatusPublished}, nil
}

func (m *MockEditionService) EditionWithArticles(ctx context.Context, id int64) (*views.EditionView, []views.ArticleView, error) {
	if m.WithArticlesFunc != nil {
		return m.WithArticlesFunc(ctx, id)
	}
	return &views.EditionView{ID: id, Title: "Test Edition"}, []views.ArticleView{}, nil
}

// MockTeamService is a mock implementation of TeamService
type MockTeamService struct {
	DepartmentsFunc func(ctx context.Context) ([]views.TeamDepartment, error)
}

// Verify interface compliance
var _ service.TeamService = (*MockTeamService)(nil)

func NewMockTeamService() *MockTeamService {
	return &MockTeamService{}
}

func (m *MockTeamService) Departments(ctx context.Context) ([]views.TeamDepartment, error) {
	if m.DepartmentsFunc != nil {
		return m.DepartmentsFunc(ctx)
	}
	return []views.TeamDepartment{}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	Counts map[string]int
}

// Verify interface compliance
var _ service.StatsService = (*MockStatsService)(nil)

func NewMockStatsService() *MockStatsService {
	return &MockStatsService{
		Counts: map[string]int{
			"articles": 0,
			"editions": 0,
			"people":   0,
		},
	}
}

func (m *MockStatsService) GetCount(ctx context.Context, resource string) (int, error) {
	return m.Counts[resource], nil
}
