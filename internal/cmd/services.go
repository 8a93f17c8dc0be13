package main

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/eugeneboyah/LIb-Score/internal/admin"
	"github.com/eugeneboyah/LIb-Score/internal/events"
	"github.com/eugeneboyah/LIb-Score/internal/gateway"
	"github.com/eugeneboyah/LIb-Score/internal/leagues"
	"github.com/eugeneboyah/LIb-Score/internal/matches"
	"github.com/eugeneboyah/LIb-Score/internal/matchevents"
	"github.com/eugeneboyah/LIb-Score/internal/players"
	"github.com/eugeneboyah/LIb-Score/internal/scores"
	"github.com/eugeneboyah/LIb-Score/internal/standings"
	"github.com/eugeneboyah/LIb-Score/internal/teams"
	"github.com/eugeneboyah/LIb-Score/internal/users"
)

type Services struct {
	Leagues     *leagues.Service
	Teams       *teams.Service
	Players     *players.Service
	Matches     *matches.Service
	Scores      *scores.Service
	MatchEvents *matchevents.Service
	Standings   *standings.Service
	Users       *users.Service
	Admin       *admin.Service
	WebSocket   *gateway.WebSocketHandler

	// MatchRepo is shared with the scheduler
	MatchRepo *matches.Repository
}

func setupServices(pool *pgxpool.Pool, bus events.Bus, hub *gateway.Hub) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	// Leagues
	leaguesRepo := leagues.NewRepository(pool)
	leaguesApp := leagues.NewApp(leaguesRepo)
	leaguesService := leagues.NewService(leaguesApp)

	// Teams
	teamsRepo := teams.NewRepository(pool)
	teamsApp := teams.NewApp(teamsRepo)
	teamsService := teams.NewService(teamsApp)

	// Players
	playersRepo := players.NewRepository(pool)
	playersApp := players.NewApp(playersRepo)
	playersService := players.NewService(playersApp)

	// Matches
	matchesRepo := matches.NewRepository(pool)
	matchesApp := matches.NewApp(matchesRepo)
	matchesService := matches.NewService(matchesApp)

	// Scores
	scoresRepo := scores.NewRepository(pool)
	scoresApp := scores.NewApp(scoresRepo, matchesRepo, bus, clockwork.NewRealClock())
	scoresService := scores.NewService(scoresApp)

	// Match events
	matchEventsRepo := matchevents.NewRepository(pool)
	matchEventsApp := matchevents.NewApp(matchEventsRepo)
	matchEventsService := matchevents.NewService(matchEventsApp)

	// Standings
	standingsApp := standings.NewApp(matchesRepo)
	standingsService := standings.NewService(standingsApp)

	// Users
	usersRepo := users.NewRepository(pool)
	usersApp := users.NewApp(usersRepo)
	usersService := users.NewService(usersApp)

	// Admin
	adminRepo := admin.NewRepository(pool)
	adminService := admin.NewService(adminRepo)

	return &Services{
		Leagues:     leaguesService,
		Teams:       teamsService,
		Players:     playersService,
		Matches:     matchesService,
		Scores:      scoresService,
		MatchEvents: matchEventsService,
		Standings:   standingsService,
		Users:       usersService,
		Admin:       adminService,
		WebSocket:   gateway.NewWebSocketHandler(hub),
		MatchRepo:   matchesRepo,
	}
}

func registerServices(mux *http.ServeMux, services *Services) {
	services.Leagues.RegisterRoutes(mux)
	services.Teams.RegisterRoutes(mux)
	services.Players.RegisterRoutes(mux)
	services.Matches.RegisterRoutes(mux)
	services.Scores.RegisterRoutes(mux)
	services.MatchEvents.RegisterRoutes(mux)
	services.Standings.RegisterRoutes(mux)
	services.Users.RegisterRoutes(mux)
	services.Admin.RegisterRoutes(mux)
	services.WebSocket.RegisterRoutes(mux)
}
