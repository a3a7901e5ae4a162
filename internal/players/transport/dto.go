package transport

import "time"

// Player is the wire shape of a player record. Field names follow the
// dataset's column naming, which the frontend renders verbatim.
type Player struct {
	ID                               string    `json:"_id"`
	PlayerID                         int64     `json:"player_id"`
	CurrentClubID                    int64     `json:"current_club_id"`
	CountryOfBirth                   string    `json:"country_of_birth"`
	CityOfBirth                      string    `json:"city_of_birth"`
	CountryOfCitizenship             string    `json:"country_of_citizenship"`
	DateOfBirth                      string    `json:"date_of_birth"`
	SubPosition                      string    `json:"sub_position"`
	Foot                             string    `json:"foot"`
	HeightInCm                       int       `json:"height_in_cm"`
	ContractExpirationDate           string    `json:"contract_expiration_date"`
	AgentName                        string    `json:"agent_name"`
	CurrentClubDomesticCompetitionID string    `json:"current_club_domestic_competition_id"`
	CurrentClubName                  string    `json:"current_club_name"`
	MarketValueInEur                 float64   `json:"market_value_in_eur"`
	HighestMarketValueInEur          float64   `json:"highest_market_value_in_eur"`
	Age                              int       `json:"age"`
	Nationality                      string    `json:"Nationality"`
	Name                             string    `json:"Name"`
	XGBoostPredictedValues           float64   `json:"XGBoost_predicted_values"`
	RFTPredictedValues               float64   `json:"RFT_predicted_values"`
	ImageURL                         string    `json:"image_url"`
	CreatedAt                        time.Time `json:"createdAt"`
	UpdatedAt                        time.Time `json:"updatedAt"`
}

// PlayerRequest carries player attributes for admin create/update. A
// player_id in the body is ignored; the server assigns it.
type PlayerRequest struct {
	CurrentClubID                    int64   `json:"current_club_id"`
	CountryOfBirth                   string  `json:"country_of_birth"`
	CityOfBirth                      string  `json:"city_of_birth"`
	CountryOfCitizenship             string  `json:"country_of_citizenship"`
	DateOfBirth                      string  `json:"date_of_birth"`
	SubPosition                      string  `json:"sub_position"`
	Foot                             string  `json:"foot"`
	HeightInCm                       int     `json:"height_in_cm"`
	ContractExpirationDate           string  `json:"contract_expiration_date"`
	AgentName                        string  `json:"agent_name"`
	CurrentClubDomesticCompetitionID string  `json:"current_club_domestic_competition_id" validate:"required"`
	CurrentClubName                  string  `json:"current_club_name"`
	MarketValueInEur                 float64 `json:"market_value_in_eur"`
	HighestMarketValueInEur          float64 `json:"highest_market_value_in_eur"`
	Age                              int     `json:"age"`
	Nationality                      string  `json:"Nationality"`
	Name                             string  `json:"Name"`
	XGBoostPredictedValues           float64 `json:"XGBoost_predicted_values"`
	RFTPredictedValues               float64 `json:"RFT_predicted_values"`
	ImageURL                         string  `json:"image_url"`
}

// PlayerListResponse is the paginated envelope for the public list endpoint.
type PlayerListResponse struct {
	TotalPlayers int      `json:"totalPlayers"`
	TotalPages   int      `json:"totalPages"`
	CurrentPage  int      `json:"currentPage"`
	Players      []Player `json:"players"`
}

// CompetitionGroup is one competition's top players.
type CompetitionGroup struct {
	ID         string   `json:"_id"`
	TopPlayers []Player `json:"topPlayers"`
}

// FilterParams are the recognized query params of the filter endpoint.
type FilterParams struct {
	SubPosition            string
	Name                   string
	Age                    *int
	XGBoostPredictedValues *float64
	SortBy                 string
	SortOrder              string
}

// SearchResponse is the envelope of the paginated search endpoint.
type SearchResponse struct {
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Players []Player `json:"players"`
}
