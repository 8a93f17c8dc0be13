package leagues

// CreateLeagueRequest represents the data needed to create a new league
type CreateLeagueRequest struct {
	Name string `json:"name"`
}
