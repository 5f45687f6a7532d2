package app_test

import (
	"errors"
	"testing"

	"pub-trivia-service/internal/app"
	"pub-trivia-service/internal/domain"
)

func TestCreateTeamRejectsDuplicateName(t *testing.T) {
	roster := app.NewRoster()
	if _, err := roster.CreateTeam("Red"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := roster.CreateTeam("Red"); !errors.Is(err, domain.ErrDuplicateTeam) {
		t.Fatalf("expected duplicate-team error, got %v", err)
	}
}

func TestJoinTeamAttachesToExistingTeam(t *testing.T) {
	roster := app.NewRoster()
	first, al := roster.JoinTeam("Red", "Al")
	second, bo := roster.JoinTeam("Red", "Bo")

	if first.ID != second.ID {
		t.Fatalf("expected one team, got %s and %s", first.ID, second.ID)
	}
	if len(second.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(second.Players))
	}
	if al.TeamID != first.ID || bo.TeamID != first.ID {
		t.Fatalf("players not linked to team %s", first.ID)
	}
	if teams := roster.TeamsByScore(); len(teams) != 1 {
		t.Fatalf("expected single team, got %d", len(teams))
	}
}

func TestAwardUnknownTeam(t *testing.T) {
	roster := app.NewRoster()
	if err := roster.Award("missing", 1); !errors.Is(err, domain.ErrUnknownTeam) {
		t.Fatalf("expected unknown-team error, got %v", err)
	}
}

func TestTeamsByScoreKeepsInsertionOrderOnTies(t *testing.T) {
	roster := app.NewRoster()
	red, _ := roster.CreateTeam("Red")
	blue, _ := roster.CreateTeam("Blue")
	green, _ := roster.CreateTeam("Green")

	if err := roster.Award(blue.ID, 3); err != nil {
		t.Fatalf("award: %v", err)
	}
	if err := roster.Award(green.ID, 3); err != nil {
		t.Fatalf("award: %v", err)
	}
	if err := roster.Award(red.ID, 1); err != nil {
		t.Fatalf("award: %v", err)
	}

	teams := roster.TeamsByScore()
	got := []string{teams[0].Name, teams[1].Name, teams[2].Name}
	want := []string{"Blue", "Green", "Red"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestClearEmptiesRoster(t *testing.T) {
	roster := app.NewRoster()
	roster.JoinTeam("Red", "Al")
	roster.Clear()
	if teams := roster.TeamsByScore(); len(teams) != 0 {
		t.Fatalf("expected empty roster, got %d teams", len(teams))
	}
	if _, err := roster.CreateTeam("Red"); err != nil {
		t.Fatalf("name should be free after clear: %v", err)
	}
}
