package app

import (
	"sort"

	"pub-trivia-service/internal/domain"
)

// Roster is the team/player registry for one session. It owns score mutation.
// Not safe for concurrent use on its own; Game serializes all access.
type Roster struct {
	teams  map[string]*domain.Team
	byName map[string]string
	order  []string
}

func NewRoster() *Roster {
	return &Roster{
		teams:  make(map[string]*domain.Team),
		byName: make(map[string]string),
	}
}

// CreateTeam allocates a team with zero score under a unique name.
func (r *Roster) CreateTeam(name string) (domain.Team, error) {
	if _, ok := r.byName[name]; ok {
		return domain.Team{}, domain.ErrDuplicateTeam
	}
	team := &domain.Team{
		ID:   domain.NewID(),
		Name: name,
	}
	r.teams[team.ID] = team
	r.byName[name] = team.ID
	r.order = append(r.order, team.ID)
	return cloneTeam(team), nil
}

// JoinTeam attaches a new player to the named team, creating the team first
// if it does not exist. Join never fails.
func (r *Roster) JoinTeam(teamName, playerName string) (domain.Team, domain.Player) {
	teamID, ok := r.byName[teamName]
	if !ok {
		created, _ := r.CreateTeam(teamName)
		teamID = created.ID
	}
	team := r.teams[teamID]
	player := domain.Player{
		ID:     domain.NewID(),
		Name:   playerName,
		TeamID: team.ID,
	}
	team.Players = append(team.Players, player)
	return cloneTeam(team), player
}

// Award adds points to a team's score.
func (r *Roster) Award(teamID string, points int) error {
	team, ok := r.teams[teamID]
	if !ok {
		return domain.ErrUnknownTeam
	}
	team.Score += points
	return nil
}

// Has reports whether a team identity is registered.
func (r *Roster) Has(teamID string) bool {
	_, ok := r.teams[teamID]
	return ok
}

// TeamsByScore returns a snapshot ordered by score descending. Ties keep
// insertion order.
func (r *Roster) TeamsByScore() []domain.Team {
	teams := make([]domain.Team, 0, len(r.order))
	for _, id := range r.order {
		teams = append(teams, cloneTeam(r.teams[id]))
	}
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Score > teams[j].Score
	})
	return teams
}

// Clear removes all teams and players. Used only by a full session reset.
func (r *Roster) Clear() {
	r.teams = make(map[string]*domain.Team)
	r.byName = make(map[string]string)
	r.order = nil
}

func cloneTeam(t *domain.Team) domain.Team {
	clone := *t
	clone.Players = make([]domain.Player, len(t.Players))
	copy(clone.Players, t.Players)
	return clone
}
