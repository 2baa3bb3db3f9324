package main

import (
	"context"
	"os"
	"time"

	"github.com/abr-content-api/internal/config"
	"github.com/abr-content-api/internal/database"
	"github.com/abr-content-api/pkg/logger"
)

// Development seeder. Content is normally created by the external
// authoring system; this stands in for it so the API has rows to serve
// locally.
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedStatements := []struct {
		desc  string
		query string
		args  []any
	}{
		{
			"publications",
			`INSERT INTO publications (id, name, type, slug)
			 VALUES ($1, 'Magazine', 'magazine', 'magazine'), ($2, 'Monocle', 'monocle', 'monocle')
			 ON CONFLICT (id) DO NOTHING`,
			[]any{cfg.Content.MagazinePublicationID, cfg.Content.MonoclePublicationID},
		},
		{
			"teams",
			`INSERT INTO teams (id, name, display_order)
			 VALUES (1, 'Editorial', 1), (2, 'Design', 2), (3, 'Digital', 3)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			"roles",
			`INSERT INTO roles (id, name)
			 VALUES (1, 'Editor-in-Chief'), (2, 'Managing Editor'), (3, 'Staff Writer'), (4, 'Designer')
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			"categories",
			`INSERT INTO categories (id, name, color)
			 VALUES (1, 'Economics', '#2563eb'), (2, 'Markets', '#7c3aed'), (3, 'Strategy', NULL)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			"people",
			`INSERT INTO people (id, full_name, email, linkedin, is_active, display_order, role_id, team_id)
			 VALUES
			   (1, 'Sarah Johnson', 'sarah.johnson@example.edu', 'https://linkedin.com/in/sarahjohnson', TRUE, 1, 1, 1),
			   (2, 'Michael Chen', 'michael.chen@example.edu', NULL, TRUE, 2, 2, 1),
			   (3, 'Priya Mehta', NULL, NULL, TRUE, 1, 4, 2)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			"editions",
			`INSERT INTO editions (id, title, subtitle, status, issue_number, publication_date, publication_id)
			 VALUES
			   (1, 'The Growth Issue', 'Scaling beyond campus', 'published', 1, now() - interval '60 days', $1),
			   (2, 'Monocle No. 1', NULL, 'published', 1, now() - interval '30 days', $2),
			   (3, 'Monocle No. 2', 'Work in progress', 'draft', 2, NULL, $2)
			 ON CONFLICT (id) DO NOTHING`,
			[]any{cfg.Content.MagazinePublicationID, cfg.Content.MonoclePublicationID},
		},
		{
			"articles",
			`INSERT INTO articles (id, slug, title, excerpt, content, status, is_featured, read_time, published_at, author_id, category_id, edition_id)
			 VALUES
			   (1, 'the-campus-economy', 'The Campus Economy', 'How student ventures reshape local markets.', '<p>...</p>', 'published', TRUE, 7, now() - interval '45 days', 1, 1, 1),
			   (2, 'markets-after-midnight', 'Markets After Midnight', NULL, '<p>...</p>', 'published', TRUE, NULL, now() - interval '20 days', 2, 2, 2),
			   (3, 'unfinished-draft', 'Unfinished Draft', NULL, '<p>...</p>', 'draft', FALSE, NULL, NULL, 2, NULL, NULL)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
	}

	for _, stmt := range seedStatements {
		if _, err := db.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			log.Fatal().Err(err).Str("step", stmt.desc).Msg("Seed failed")
		}
		log.Info().Str("step", stmt.desc).Msg("Seeded")
	}

	log.Info().Msg("Seed completed")
}
