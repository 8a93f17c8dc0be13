package standings

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/eugeneboyah/LIb-Score/internal/matches"
)

// Points awarded per completed match
const (
	pointsWin  = 3
	pointsDraw = 1
)

// ResultsLister defines what the app layer needs from the matches repository
type ResultsLister interface {
	ListResultsByLeague(ctx context.Context, leagueID uuid.UUID) ([]matches.MatchResult, error)
}

// App computes league tables from completed match results
type App struct {
	results ResultsLister
}

// NewApp creates a new standings App
func NewApp(results ResultsLister) *App {
	return &App{results: results}
}

// StandingsByLeague tallies completed results into a league table.
// Teams with no completed matches do not appear.
func (a *App) StandingsByLeague(ctx context.Context, leagueID uuid.UUID) ([]Row, error) {
	results, err := a.results.ListResultsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return Tally(results), nil
}

// Tally folds results into standings rows ordered by points, then wins,
// then team name.
func Tally(results []matches.MatchResult) []Row {
	table := make(map[uuid.UUID]*Row)

	row := func(teamID uuid.UUID, name string) *Row {
		r, ok := table[teamID]
		if !ok {
			r = &Row{TeamID: teamID, TeamName: name}
			table[teamID] = r
		}
		return r
	}

	for _, res := range results {
		home := row(res.HomeTeamID, res.HomeTeamName)
		away := row(res.AwayTeamID, res.AwayTeamName)
		home.Played++
		away.Played++

		switch {
		case res.HomeScore > res.AwayScore:
			home.Wins++
			home.Points += pointsWin
			away.Losses++
		case res.HomeScore < res.AwayScore:
			away.Wins++
			away.Points += pointsWin
			home.Losses++
		default:
			home.Draws++
			home.Points += pointsDraw
			away.Draws++
			away.Points += pointsDraw
		}
	}

	rows := make([]Row, 0, len(table))
	for _, r := range table {
		rows = append(rows, *r)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return rows[i].TeamName < rows[j].TeamName
	})

	return rows
}
