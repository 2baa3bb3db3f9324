package repository

import (
	"context"
	"database/sql"

	"github.com/abr-content-api/internal/database"
	"github.com/abr-content-api/internal/models"
)

// teamRepo is the concrete implementation of TeamRepository
type teamRepo struct {
	db *database.DB
}

// NewTeamRepo creates a new team repository
func NewTeamRepo(db *database.DB) TeamRepository {
	return &teamRepo{db: db}
}

// List retrieves all teams in roster order
func (r *teamRepo) List(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT id, name, display_order
		FROM teams
		ORDER BY display_order ASC, name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		var t models.Team
		var name sql.NullString
		var displayOrder sql.NullInt64

		if err := rows.Scan(&t.ID, &name, &displayOrder); err != nil {
			return nil, err
		}

		if name.Valid {
			t.Name = &name.String
		}
		if displayOrder.Valid {
			order := int(displayOrder.Int64)
			t.DisplayOrder = &order
		}

		teams = append(teams, &t)
	}
	return teams, rows.Err()
}
