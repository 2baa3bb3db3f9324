package service

import (
	"context"

	"github.com/abr-content-api/internal/repository"
	"github.com/abr-content-api/internal/views"
	"github.com/rs/zerolog"
)

// teamService is the concrete implementation of TeamService
type teamService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newTeamService creates a new TeamService
func newTeamService(repos *repository.Repositories, log zerolog.Logger) *teamService {
	return &teamService{
		repos: repos,
		log:   log.With().Str("service", "team").Logger(),
	}
}

// Departments returns the team roster grouped by team, in roster order.
// Teams with no active members are omitted, as are active people without
// a team assignment (they have no department to appear under).
func (s *teamService) Departments(ctx context.Context) ([]views.TeamDepartment, error) {
	people, err := s.repos.Person.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Error fetching people")
		return nil, fetchFailed(MsgFailedLoadTeam, err)
	}

	teams, err := s.repos.Team.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Error fetching teams")
		return nil, fetchFailed(MsgFailedLoadTeam, err)
	}

	departments := make([]views.TeamDepartment, 0, len(teams))
	for _, team := range teams {
		var members []views.TeamMemberView
		for _, person := range people {
			if person.TeamID != nil && *person.TeamID == team.ID {
				members = append(members, views.MapTeamMember(person))
			}
		}
		if len(members) == 0 {
			continue
		}
		departments = append(departments, views.MapTeamDepartment(team, members))
	}

	return departments, nil
}
