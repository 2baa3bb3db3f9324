package repository

import (
	"context"
	"database/sql"

	"github.com/abr-content-api/internal/database"
	"github.com/abr-content-api/internal/models"
)

// personRepo is the concrete implementation of PersonRepository
type personRepo struct {
	db *database.DB
}

// NewPersonRepo creates a new person repository
func NewPersonRepo(db *database.DB) PersonRepository {
	return &personRepo{db: db}
}

// ListActive retrieves active people with their role and team joins,
// ordered for the roster: by team (teamless people last), then by
// display order within the team
func (r *personRepo) ListActive(ctx context.Context) ([]*models.Person, error) {
	query := `
		SELECT
			p.id, p.full_name, p.email, p.profile_image,
			p.linkedin, p.instagram, p.twitter,
			p.is_active, p.display_order, p.role_id, p.team_id,
			r.id, r.name,
			t.id, t.name, t.display_order
		FROM people p
		LEFT JOIN roles r ON r.id = p.role_id
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.is_active = TRUE
		ORDER BY p.team_id ASC NULLS LAST, p.display_order ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		var p models.Person
		var fullName, email, profileImage sql.NullString
		var linkedin, instagram, twitter sql.NullString
		var displayOrder sql.NullInt64
		var roleID, teamID sql.NullInt64

		var rID sql.NullInt64
		var rName sql.NullString

		var tID, tOrder sql.NullInt64
		var tName sql.NullString

		err := rows.Scan(
			&p.ID, &fullName, &email, &profileImage,
			&linkedin, &instagram, &twitter,
			&p.IsActive, &displayOrder, &roleID, &teamID,
			&rID, &rName,
			&tID, &tName, &tOrder,
		)
		if err != nil {
			return nil, err
		}

		if fullName.Valid {
			p.FullName = &fullName.String
		}
		if email.Valid {
			p.Email = &email.String
		}
		if profileImage.Valid {
			p.ProfileImage = &profileImage.String
		}
		if linkedin.Valid {
			p.LinkedIn = &linkedin.String
		}
		if instagram.Valid {
			p.Instagram = &instagram.String
		}
		if twitter.Valid {
			p.Twitter = &twitter.String
		}
		if displayOrder.Valid {
			order := int(displayOrder.Int64)
			p.DisplayOrder = &order
		}
		if roleID.Valid {
			p.RoleID = &roleID.Int64
		}
		if teamID.Valid {
			p.TeamID = &teamID.Int64
		}

		if rID.Valid {
			role := &models.Role{ID: rID.Int64}
			if rName.Valid {
				role.Name = &rName.String
			}
			p.Role = role
		}

		if tID.Valid {
			team := &models.Team{ID: tID.Int64}
			if tName.Valid {
				team.Name = &tName.String
			}
			if tOrder.Valid {
				order := int(tOrder.Int64)
				team.DisplayOrder = &order
			}
			p.Team = team
		}

		people = append(people, &p)
	}
	return people, rows.Err()
}

// Count returns the total number of people
func (r *personRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM people").Scan(&count)
	return count, err
}
