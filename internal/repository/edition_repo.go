package repository

import (
	"context"
	"database/sql"

	"github.com/abr-content-api/internal/database"
	"github.com/abr-content-api/internal/models"
)

// editionRepo is the concrete implementation of EditionRepository
type editionRepo struct {
	db *database.DB
}

// NewEditionRepo creates a new edition repository
func NewEditionRepo(db *database.DB) EditionRepository {
	return &editionRepo{db: db}
}

const editionColumns = `
	id, title, subtitle, description, cover_image, issue_number,
	publication_date, status, publication_id
`

func scanEdition(scan func(dest ...any) error) (*models.Edition, error) {
	var e models.Edition
	var subtitle, description, coverImage sql.NullString
	var issueNumber sql.NullInt64
	var publicationDate sql.NullTime

	err := scan(
		&e.ID, &e.Title, &subtitle, &description, &coverImage, &issueNumber,
		&publicationDate, &e.Status, &e.PublicationID,
	)
	if err != nil {
		return nil, err
	}

	if subtitle.Valid {
		e.Subtitle = &subtitle.String
	}
	if description.Valid {
		e.Description = &description.String
	}
	if coverImage.Valid {
		e.CoverImage = &coverImage.String
	}
	if issueNumber.Valid {
		issue := int(issueNumber.Int64)
		e.IssueNumber = &issue
	}
	if publicationDate.Valid {
		e.PublicationDate = &publicationDate.Time
	}

	return &e, nil
}

// ListPublishedByPublication retrieves the published editions of one
// publication, newest first
func (r *editionRepo) ListPublishedByPublication(ctx context.Context, publicationID int64) ([]*models.Edition, error) {
	query := `
		SELECT` + editionColumns + `
		FROM editions
		WHERE publication_id = $1 AND status = $2
		ORDER BY publication_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, publicationID, models.StatusPublished)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var editions []*models.Edition
	for rows.Next() {
		edition, err := scanEdition(rows.Scan)
		if err != nil {
			return nil, err
		}
		editions = append(editions, edition)
	}
	return editions, rows.Err()
}

// GetByID retrieves one edition by id, scoped to a publication
func (r *editionRepo) GetByID(ctx context.Context, id, publicationID int64) (*models.Edition, error) {
	query := `
		SELECT` + editionColumns + `
		FROM editions
		WHERE id = $1 AND publication_id = $2
	`
	edition, err := scanEdition(r.db.QueryRowContext(ctx, query, id, publicationID).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return edition, nil
}

// Count returns the total number of editions
func (r *editionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM editions").Scan(&count)
	return count, err
}
