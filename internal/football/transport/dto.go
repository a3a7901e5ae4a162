// Package transport defines the gateway's reshaped response types. The raw
// football-data payloads are trimmed to what the frontend renders.
package transport

import "encoding/json"

type TopScorer struct {
	Player        string `json:"player"`
	Team          string `json:"team"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	PlayedMatches int    `json:"playedMatches"`
}

type TeamRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest"`
}

type FullTimeScore struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type MatchSummary struct {
	MatchID     int64         `json:"matchId"`
	Competition string        `json:"competition"`
	Matchday    int           `json:"matchday"`
	Status      string        `json:"status"`
	Stage       string        `json:"stage"`
	UTCDate     string        `json:"utcDate"`
	HomeTeam    TeamRef       `json:"homeTeam"`
	AwayTeam    TeamRef       `json:"awayTeam"`
	Score       FullTimeScore `json:"score"`
}

// UpcomingMatch is MatchSummary without the score; scheduled games have none.
type UpcomingMatch struct {
	MatchID     int64   `json:"matchId"`
	Competition string  `json:"competition"`
	Matchday    int     `json:"matchday"`
	Status      string  `json:"status"`
	Stage       string  `json:"stage"`
	UTCDate     string  `json:"utcDate"`
	HomeTeam    TeamRef `json:"homeTeam"`
	AwayTeam    TeamRef `json:"awayTeam"`
}

type TodaysMatchesResponse struct {
	Success   bool            `json:"success"`
	Filters   json.RawMessage `json:"filters"`
	ResultSet json.RawMessage `json:"resultSet"`
	Matches   json.RawMessage `json:"matches"`
}

type TeamSummary struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Crest     string `json:"crest"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Founded   int    `json:"founded"`
	Venue     string `json:"venue"`
}

type CompetitionInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Type   string `json:"type"`
	Emblem string `json:"emblem"`
}

// CoachInfo substitutes "N/A" for contract dates the API omits.
type CoachInfo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality"`
	DateOfBirth   string `json:"dateOfBirth"`
	ContractStart string `json:"contractStart"`
	ContractUntil string `json:"contractUntil"`
}

// SquadPlayer carries the shirt number as sent, or "N/A" when missing,
// matching the shape the frontend expects.
type SquadPlayer struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Position    string      `json:"position"`
	Nationality string      `json:"nationality"`
	DateOfBirth string      `json:"dateOfBirth"`
	ShirtNumber interface{} `json:"shirtNumber"`
}

type TeamInfo struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	ShortName           string            `json:"shortName"`
	TLA                 string            `json:"tla"`
	Crest               string            `json:"crest"`
	Country             string            `json:"country"`
	CountryFlag         string            `json:"countryFlag"`
	Address             string            `json:"address"`
	Website             string            `json:"website"`
	Founded             int               `json:"founded"`
	ClubColors          string            `json:"clubColors"`
	Venue               string            `json:"venue"`
	RunningCompetitions []CompetitionInfo `json:"runningCompetitions"`
	Coach               *CoachInfo        `json:"coach"`
	Squad               []SquadPlayer     `json:"squad"`
}

type StandingsRow struct {
	Position       int           `json:"position"`
	Team           StandingsTeam `json:"team"`
	PlayedGames    int           `json:"playedGames"`
	Won            int           `json:"won"`
	Draw           int           `json:"draw"`
	Lost           int           `json:"lost"`
	Points         int           `json:"points"`
	GoalsFor       int           `json:"goalsFor"`
	GoalsAgainst   int           `json:"goalsAgainst"`
	GoalDifference int           `json:"goalDifference"`
}

type StandingsTeam struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}
