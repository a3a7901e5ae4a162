// Package client is a typed HTTP client for the football-data.org v4 API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.football-data.org/v4"

const requestTimeout = 10 * time.Second

// UpstreamError reports a non-200 answer from the API. The gateway forwards
// its status code to the caller.
type UpstreamError struct {
	Status   int
	Endpoint string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("football-data %s returned status %d", e.Endpoint, e.Status)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client. baseURL is overridable for tests; pass
// DefaultBaseURL in production.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Upstream payload shapes. Only the fields the gateway reshapes are decoded.

type ScorerEntry struct {
	Player struct {
		Name string `json:"name"`
	} `json:"player"`
	Team struct {
		Name string `json:"name"`
	} `json:"team"`
	Goals         int  `json:"goals"`
	Assists       *int `json:"assists"`
	PlayedMatches int  `json:"playedMatches"`
}

type ScorersResponse struct {
	Scorers []ScorerEntry `json:"scorers"`
}

type TeamRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Crest string `json:"crest"`
}

type Score struct {
	FullTime struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"fullTime"`
}

type Match struct {
	ID          int64   `json:"id"`
	Matchday    int     `json:"matchday"`
	Status      string  `json:"status"`
	Stage       string  `json:"stage"`
	UTCDate     string  `json:"utcDate"`
	HomeTeam    TeamRef `json:"homeTeam"`
	AwayTeam    TeamRef `json:"awayTeam"`
	Score       Score   `json:"score"`
	Competition struct {
		Name string `json:"name"`
	} `json:"competition"`
}

type MatchesResponse struct {
	Filters     json.RawMessage `json:"filters"`
	ResultSet   json.RawMessage `json:"resultSet"`
	Competition struct {
		Name string `json:"name"`
	} `json:"competition"`
	Matches []Match `json:"matches"`
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

type TeamsResponse struct {
	Teams []TeamSummary `json:"teams"`
}

type Competition struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Type   string `json:"type"`
	Emblem string `json:"emblem"`
}

type Coach struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"dateOfBirth"`
	Contract    *struct {
		Start string `json:"start"`
		Until string `json:"until"`
	} `json:"contract"`
}

type SquadMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"dateOfBirth"`
	ShirtNumber *int   `json:"shirtNumber"`
}

type TeamDetail struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
	Area      struct {
		Name string `json:"name"`
		Flag string `json:"flag"`
	} `json:"area"`
	Address             string        `json:"address"`
	Website             string        `json:"website"`
	Founded             int           `json:"founded"`
	ClubColors          string        `json:"clubColors"`
	Venue               string        `json:"venue"`
	RunningCompetitions []Competition `json:"runningCompetitions"`
	Coach               *Coach        `json:"coach"`
	Squad               []SquadMember `json:"squad"`
}

type StandingsTeam struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type StandingsEntry struct {
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

type StandingsResponse struct {
	Standings []struct {
		Table []StandingsEntry `json:"table"`
	} `json:"standings"`
}

// Table returns the first standings table of the competition.
func (r *StandingsResponse) Table() []StandingsEntry {
	if len(r.Standings) == 0 {
		return nil
	}
	return r.Standings[0].Table
}

func (c *Client) Scorers(ctx context.Context, leagueCode string) (*ScorersResponse, error) {
	var out ScorersResponse
	if err := c.get(ctx, "/competitions/"+url.PathEscape(leagueCode)+"/scorers", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TodayResponse keeps the /matches payload sections verbatim; the gateway
// forwards them without reshaping.
type TodayResponse struct {
	Filters   json.RawMessage `json:"filters"`
	ResultSet json.RawMessage `json:"resultSet"`
	Matches   json.RawMessage `json:"matches"`
}

func (c *Client) TodaysMatches(ctx context.Context) (*TodayResponse, error) {
	var out TodayResponse
	if err := c.get(ctx, "/matches", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompetitionMatches(ctx context.Context, competitionCode, matchday string) (*MatchesResponse, error) {
	query := url.Values{}
	if matchday != "" {
		query.Set("matchday", matchday)
	}

	var out MatchesResponse
	if err := c.get(ctx, "/competitions/"+url.PathEscape(competitionCode)+"/matches", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompetitionTeams(ctx context.Context, competitionCode string) (*TeamsResponse, error) {
	var out TeamsResponse
	if err := c.get(ctx, "/competitions/"+url.PathEscape(competitionCode)+"/teams", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Team(ctx context.Context, teamID int64) (*TeamDetail, error) {
	var out TeamDetail
	if err := c.get(ctx, "/teams/"+strconv.FormatInt(teamID, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ScheduledMatches(ctx context.Context, teamID int64) (*MatchesResponse, error) {
	query := url.Values{"status": {"SCHEDULED"}}

	var out MatchesResponse
	if err := c.get(ctx, "/teams/"+strconv.FormatInt(teamID, 10)+"/matches", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Standings(ctx context.Context, leagueCode string) (*StandingsResponse, error) {
	var out StandingsResponse
	if err := c.get(ctx, "/competitions/"+url.PathEscape(leagueCode)+"/standings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Auth-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Status: resp.StatusCode, Endpoint: path}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
