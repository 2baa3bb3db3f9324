package mocks

import (
	"context"
	"sort"

	"github.com/abr-content-api/internal/models"
	"github.com/abr-content-api/internal/repository"
)

// MockArticleRepository is an in-memory implementation of
// ArticleRepository. It mirrors the SQL semantics: published-only
// filtering, published_at descending sort, limits.
type MockArticleRepository struct {
	Articles []*models.Article
	Err      error // returned by every method when set
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{}
}

// sortByPublishedAtDesc orders newest first; rows without published_at sink
func sortByPublishedAtDesc(articles []*models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i].PublishedAt, articles[j].PublishedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}

func (m *MockArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, a := range m.Articles {
		if a.Slug == slug && a.Status == models.StatusPublished {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepository) ListFeatured(ctx context.Context, limit int) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished && a.IsFeatured {
			out = append(out, a)
		}
	}
	sortByPublishedAtDesc(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockArticleRepository) ListPublishedWithEdition(ctx context.Context) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished && a.EditionID != nil {
			out = append(out, a)
		}
	}
	sortByPublishedAtDesc(out)
	return out, nil
}

func (m *MockArticleRepository) ListByEdition(ctx context.Context, editionID int64) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Article
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished && a.EditionID != nil && *a.EditionID == editionID {
			out = append(out, a)
		}
	}
	sortByPublishedAtDesc(out)
	return out, nil
}

func (m *MockArticleRepository) CountPublishedByEdition(ctx context.Context, editionID int64) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished && a.EditionID != nil && *a.EditionID == editionID {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Articles), nil
}

// MockEditionRepository is an in-memory implementation of EditionRepository
type MockEditionRepository struct {
	Editions []*models.Edition
	Err      error
}

// Verify interface compliance
var _ repository.EditionRepository = (*MockEditionRepository)(nil)

func NewMockEditionRepository() *MockEditionRepository {
	return &MockEditionRepository{}
}

func (m *MockEditionRepository) ListPublishedByPublication(ctx context.Context, publicationID int64) ([]*models.Edition, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Edition
	for _, e := range m.Editions {
		if e.PublicationID == publicationID && e.Status == models.StatusPublished {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PublicationDate, out[j].PublicationDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	return out, nil
}

func (m *MockEditionRepository) GetByID(ctx context.Context, id, publicationID int64) (*models.Edition, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Editions {
		if e.ID == id && e.PublicationID == publicationID {
			return e, nil
		}
	}
	return nil, nil
}

func (m *MockEditionRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Editions), nil
}

// MockPersonRepository is an in-memory implementation of PersonRepository
type MockPersonRepository struct {
	People []*models.Person
	Err    error
}

// Verify interface compliance
var _ repository.PersonRepository = (*MockPersonRepository)(nil)

func NewMockPersonRepository() *MockPersonRepository {
	return &MockPersonRepository{}
}

func (m *MockPersonRepository) ListActive(ctx context.Context) ([]*models.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*models.Person
	for _, p := range m.People {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.TeamID == nil && b.TeamID == nil:
		case a.TeamID == nil:
			return false
		case b.TeamID == nil:
			return true
		case *a.TeamID != *b.TeamID:
			return *a.TeamID < *b.TeamID
		}
		ao, bo := 0, 0
		if a.DisplayOrder != nil {
			ao = *a.DisplayOrder
		}
		if b.DisplayOrder != nil {
			bo = *b.DisplayOrder
		}
		return ao < bo
	})
	return out, nil
}

func (m *MockPersonRepository) Count(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.People), nil
}

// MockTeamRepository is an in-memory implementation of TeamRepository
type MockTeamRepository struct {
	Teams []*models.Team
	Err   error
}

// Verify interface compliance
var _ repository.TeamRepository = (*MockTeamRepository)(nil)

func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{}
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*models.Team, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*models.Team, len(m.Teams))
	copy(out, m.Teams)
	sort.SliceStable(out, func(i, j int) bool {
		ao, bo := 0, 0
		if out[i].DisplayOrder != nil {
			ao = *out[i].DisplayOrder
		}
		if out[j].DisplayOrder != nil {
			bo = *out[j].DisplayOrder
		}
		return ao < bo
	})
	return out, nil
}

// NewMockRepositories bundles fresh mocks into a Repositories value
func NewMockRepositories() (*repository.Repositories, *MockArticleRepository, *MockEditionRepository, *MockPersonRepository, *MockTeamRepository) {
	articles := NewMockArticleRepository()
	editions := NewMockEditionRepository()
	people := NewMockPersonRepository()
	teams := NewMockTeamRepository()

	repos := &repository.Repositories{
		Article: articles,
		Edition: editions,
		Person:  people,
		Team:    teams,
	}
	return repos, articles, editions, people, teams
}
