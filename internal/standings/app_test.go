package standings

import (
	"testing"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/matches"
)

func TestTallyPointsAndOrdering(t *testing.T) {
	teamA := uuid.New()
	teamB := uuid.New()
	teamC := uuid.New()

	results := []matches.MatchResult{
		{HomeTeamID: teamA, HomeTeamName: "Arsenal", AwayTeamID: teamB, AwayTeamName: "Burnley", HomeScore: 2, AwayScore: 1},
		{HomeTeamID: teamB, HomeTeamName: "Burnley", AwayTeamID: teamC, AwayTeamName: "Chelsea", HomeScore: 1, AwayScore: 1},
	}

	rows := Tally(results)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	want := []Row{
		{TeamID: teamA, TeamName: "Arsenal", Played: 1, Wins: 1, Draws: 0, Losses: 0, Points: 3},
		{TeamID: teamB, TeamName: "Burnley", Played: 2, Wins: 0, Draws: 1, Losses: 1, Points: 1},
		{TeamID: teamC, TeamName: "Chelsea", Played: 1, Wins: 0, Draws: 1, Losses: 0, Points: 1},
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestTallyWinsBreakPointsTie(t *testing.T) {
	teamA := uuid.New()
	teamB := uuid.New()
	teamC := uuid.New()
	teamD := uuid.New()

	// A: one win and one loss (3 pts). B: three draws (3 pts).
	results := []matches.MatchResult{
		{HomeTeamID: teamA, HomeTeamName: "Alpha", AwayTeamID: teamC, AwayTeamName: "Gamma", HomeScore: 1, AwayScore: 0},
		{HomeTeamID: teamD, HomeTeamName: "Delta", AwayTeamID: teamA, AwayTeamName: "Alpha", HomeScore: 2, AwayScore: 0},
		{HomeTeamID: teamB, HomeTeamName: "Beta", AwayTeamID: teamC, AwayTeamName: "Gamma", HomeScore: 0, AwayScore: 0},
		{HomeTeamID: teamB, HomeTeamName: "Beta", AwayTeamID: teamD, AwayTeamName: "Delta", HomeScore: 1, AwayScore: 1},
		{HomeTeamID: teamC, HomeTeamName: "Gamma", AwayTeamID: teamB, AwayTeamName: "Beta", HomeScore: 2, AwayScore: 2},
	}

	rows := Tally(results)

	posA, posB := -1, -1
	for i, r := range rows {
		switch r.TeamID {
		case teamA:
			posA = i
		case teamB:
			posB = i
		}
	}

	if rows[posA].Points != 3 || rows[posB].Points != 3 {
		t.Fatalf("expected both on 3 points, got A=%d B=%d", rows[posA].Points, rows[posB].Points)
	}
	if posA > posB {
		t.Errorf("team with a win should rank above team with only draws")
	}
}

func TestTallyEmptyResults(t *testing.T) {
	rows := Tally(nil)
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(rows))
	}
}
