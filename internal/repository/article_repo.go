package repository

import (
	"context"
	"database/sql"

	"github.com/abr-content-api/internal/database"
	"github.com/abr-content-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// articleListColumns selects article columns plus the author, category and
// edition joins used by the list queries. The edition join carries
// publication_id so callers can resolve section membership.
const articleListColumns = `
	a.id, a.slug, a.title, a.excerpt, a.content, a.featured_image,
	a.status, a.is_featured, a.read_time, a.published_at, a.created_at,
	a.author_id, a.category_id, a.edition_id,
	p.id, p.full_name, p.profile_image,
	c.id, c.name, c.color,
	e.id, e.title, e.issue_number, e.publication_id
`

const articleListJoins = `
	FROM articles a
	LEFT JOIN people p ON p.id = a.author_id
	LEFT JOIN categories c ON c.id = a.category_id
	LEFT JOIN editions e ON e.id = a.edition_id
`

// scanJoinedArticle scans one row produced by articleListColumns. Optional
// joins come back as NULL column groups and turn into nil sub-rows.
func scanJoinedArticle(scan func(dest ...any) error) (*models.Article, error) {
	var a models.Article
	var excerpt, featuredImage sql.NullString
	var isFeatured sql.NullBool
	var readTime sql.NullInt64
	var publishedAt, createdAt sql.NullTime
	var categoryID, editionID sql.NullInt64

	var authorID sql.NullInt64
	var authorName, authorImage sql.NullString

	var catID sql.NullInt64
	var catName, catColor sql.NullString

	var edID sql.NullInt64
	var edTitle sql.NullString
	var edIssue sql.NullInt64
	var edPublicationID sql.NullInt64

	err := scan(
		&a.ID, &a.Slug, &a.Title, &excerpt, &a.Content, &featuredImage,
		&a.Status, &isFeatured, &readTime, &publishedAt, &createdAt,
		&a.AuthorID, &categoryID, &editionID,
		&authorID, &authorName, &authorImage,
		&catID, &catName, &catColor,
		&edID, &edTitle, &edIssue, &edPublicationID,
	)
	if err != nil {
		return nil, err
	}

	if excerpt.Valid {
		a.Excerpt = &excerpt.String
	}
	if featuredImage.Valid {
		a.FeaturedImage = &featuredImage.String
	}
	a.IsFeatured = isFeatured.Valid && isFeatured.Bool
	if readTime.Valid {
		rt := int(readTime.Int64)
		a.ReadTime = &rt
	}
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}
	if createdAt.Valid {
		a.CreatedAt = &createdAt.Time
	}
	if categoryID.Valid {
		a.CategoryID = &categoryID.Int64
	}
	if editionID.Valid {
		a.EditionID = &editionID.Int64
	}

	if authorID.Valid {
		author := &models.Person{ID: authorID.Int64}
		if authorName.Valid {
			author.FullName = &authorName.String
		}
		if authorImage.Valid {
			author.ProfileImage = &authorImage.String
		}
		a.Author = author
	}

	if catID.Valid {
		category := &models.Category{ID: catID.Int64, Name: catName.String}
		if catColor.Valid {
			category.Color = &catColor.String
		}
		a.Category = category
	}

	if edID.Valid {
		edition := &models.Edition{
			ID:            edID.Int64,
			Title:         edTitle.String,
			PublicationID: edPublicationID.Int64,
		}
		if edIssue.Valid {
			issue := int(edIssue.Int64)
			edition.IssueNumber = &issue
		}
		a.Edition = edition
	}

	return &a, nil
}

// queryArticles runs a list query built on articleListColumns
func (r *articleRepo) queryArticles(ctx context.Context, query string, args ...any) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanJoinedArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// GetPublishedBySlug retrieves one published article by slug with its
// author, category and edition, the edition carrying its publication
func (r *articleRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := `
		SELECT
			a.id, a.slug, a.title, a.excerpt, a.content, a.featured_image,
			a.status, a.is_featured, a.read_time, a.published_at, a.created_at,
			a.author_id, a.category_id, a.edition_id,
			p.id, p.full_name, p.email, p.profile_image,
			c.id, c.name, c.color,
			e.id, e.title, e.publication_id,
			pub.id, pub.name, pub.type, pub.slug
		FROM articles a
		LEFT JOIN people p ON p.id = a.author_id
		LEFT JOIN categories c ON c.id = a.category_id
		LEFT JOIN editions e ON e.id = a.edition_id
		LEFT JOIN publications pub ON pub.id = e.publication_id
		WHERE a.slug = $1 AND a.status = $2
	`

	var a models.Article
	var excerpt, featuredImage sql.NullString
	var isFeatured sql.NullBool
	var readTime sql.NullInt64
	var publishedAt, createdAt sql.NullTime
	var categoryID, editionID sql.NullInt64

	var authorID sql.NullInt64
	var authorName, authorEmail, authorImage sql.NullString

	var catID sql.NullInt64
	var catName, catColor sql.NullString

	var edID sql.NullInt64
	var edTitle sql.NullString
	var edPublicationID sql.NullInt64

	var pubID sql.NullInt64
	var pubName, pubType, pubSlug sql.NullString

	err := r.db.QueryRowContext(ctx, query, slug, models.StatusPublished).Scan(
		&a.ID, &a.Slug, &a.Title, &excerpt, &a.Content, &featuredImage,
		&a.Status, &isFeatured, &readTime, &publishedAt, &createdAt,
		&a.AuthorID, &categoryID, &editionID,
		&authorID, &authorName, &authorEmail, &authorImage,
		&catID, &catName, &catColor,
		&edID, &edTitle, &edPublicationID,
		&pubID, &pubName, &pubType, &pubSlug,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if excerpt.Valid {
		a.Excerpt = &excerpt.String
	}
	if featuredImage.Valid {
		a.FeaturedImage = &featuredImage.String
	}
	a.IsFeatured = isFeatured.Valid && isFeatured.Bool
	if readTime.Valid {
		rt := int(readTime.Int64)
		a.ReadTime = &rt
	}
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}
	if createdAt.Valid {
		a.CreatedAt = &createdAt.Time
	}
	if categoryID.Valid {
		a.CategoryID = &categoryID.Int64
	}
	if editionID.Valid {
		a.EditionID = &editionID.Int64
	}

	if authorID.Valid {
		author := &models.Person{ID: authorID.Int64}
		if authorName.Valid {
			author.FullName = &authorName.String
		}
		if authorEmail.Valid {
			author.Email = &authorEmail.String
		}
		if authorImage.Valid {
			author.ProfileImage = &authorImage.String
		}
		a.Author = author
	}

	if catID.Valid {
		category := &models.Category{ID: catID.Int64, Name: catName.String}
		if catColor.Valid {
			category.Color = &catColor.String
		}
		a.Category = category
	}

	if edID.Valid {
		edition := &models.Edition{
			ID:            edID.Int64,
			Title:         edTitle.String,
			PublicationID: edPublicationID.Int64,
		}
		if pubID.Valid {
			edition.Publication = &models.Publication{
				ID:   pubID.Int64,
				Name: pubName.String,
				Type: pubType.String,
				Slug: pubSlug.String,
			}
		}
		a.Edition = edition
	}

	return &a, nil
}

// ListFeatured retrieves the newest published featured articles
func (r *articleRepo) ListFeatured(ctx context.Context, limit int) ([]*models.Article, error) {
	query := `SELECT` + articleListColumns + articleListJoins + `
		WHERE a.status = $1 AND a.is_featured = TRUE
		ORDER BY a.published_at DESC
		LIMIT $2
	`
	return r.queryArticles(ctx, query, models.StatusPublished, limit)
}

// ListPublishedWithEdition retrieves all published articles bound to an
// edition, across both publications. Section filtering happens in the
// service layer on the joined publication_id.
func (r *articleRepo) ListPublishedWithEdition(ctx context.Context) ([]*models.Article, error) {
	query := `SELECT` + articleListColumns + articleListJoins + `
		WHERE a.status = $1 AND a.edition_id IS NOT NULL
		ORDER BY a.published_at DESC
	`
	return r.queryArticles(ctx, query, models.StatusPublished)
}

// ListByEdition retrieves the published articles of one edition
func (r *articleRepo) ListByEdition(ctx context.Context, editionID int64) ([]*models.Article, error) {
	query := `SELECT` + articleListColumns + articleListJoins + `
		WHERE a.status = $1 AND a.edition_id = $2
		ORDER BY a.published_at DESC
	`
	return r.queryArticles(ctx, query, models.StatusPublished, editionID)
}

// CountPublishedByEdition counts the published articles of one edition
func (r *articleRepo) CountPublishedByEdition(ctx context.Context, editionID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM articles WHERE edition_id = $1 AND status = $2",
		editionID, models.StatusPublished,
	).Scan(&count)
	return count, err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}
