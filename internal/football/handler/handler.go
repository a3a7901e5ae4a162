// Package handler reshapes football-data.org payloads into the responses
// the frontend consumes. The gateway holds no state and stores nothing.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pitchside_backend/internal/football/client"
	"pitchside_backend/internal/football/transport"
	"pitchside_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	api *client.Client
	log *logger.Logger
}

func New(api *client.Client, log *logger.Logger) *Handler {
	return &Handler{api: api, log: log}
}

func (h *Handler) TopScorers(c *gin.Context) {
	leagueCode := c.Param("leagueCode")

	resp, err := h.api.Scorers(c.Request.Context(), leagueCode)
	if err != nil {
		h.upstream(c, "scorers", err, "Failed to fetch data")
		return
	}

	scorers := make([]transport.TopScorer, 0, len(resp.Scorers))
	for _, s := range resp.Scorers {
		assists := 0
		if s.Assists != nil {
			assists = *s.Assists
		}
		scorers = append(scorers, transport.TopScorer{
			Player:        s.Player.Name,
			Team:          s.Team.Name,
			Goals:         s.Goals,
			Assists:       assists,
			PlayedMatches: s.PlayedMatches,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": scorers})
}

// MatchesToday forwards the day's fixtures without reshaping.
func (h *Handler) MatchesToday(c *gin.Context) {
	resp, err := h.api.TodaysMatches(c.Request.Context())
	if err != nil {
		h.upstream(c, "matches", err, "Failed to fetch matches")
		return
	}

	c.JSON(http.StatusOK, transport.TodaysMatchesResponse{
		Success:   true,
		Filters:   resp.Filters,
		ResultSet: resp.ResultSet,
		Matches:   resp.Matches,
	})
}

func (h *Handler) CompetitionMatches(c *gin.Context) {
	code := c.Param("competitionCode")

	resp, err := h.api.CompetitionMatches(c.Request.Context(), code, c.Query("matchday"))
	if err != nil {
		h.upstream(c, "competition matches", err, "Failed to fetch matches")
		return
	}

	matches := make([]transport.MatchSummary, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, transport.MatchSummary{
			MatchID:     m.ID,
			Competition: resp.Competition.Name,
			Matchday:    m.Matchday,
			Status:      m.Status,
			Stage:       m.Stage,
			UTCDate:     m.UTCDate,
			HomeTeam:    teamRef(m.HomeTeam),
			AwayTeam:    teamRef(m.AwayTeam),
			Score: transport.FullTimeScore{
				Home: m.Score.FullTime.Home,
				Away: m.Score.FullTime.Away,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": matches})
}

func (h *Handler) CompetitionTeams(c *gin.Context) {
	code := c.Param("competitionCode")

	resp, err := h.api.CompetitionTeams(c.Request.Context(), code)
	if err != nil {
		h.upstream(c, "teams", err, "Failed to fetch teams")
		return
	}

	teams := make([]transport.TeamSummary, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		teams = append(teams, transport.TeamSummary{
			ID:        t.ID,
			Name:      t.Name,
			Crest:     t.Crest,
			ShortName: t.ShortName,
			TLA:       t.TLA,
			Founded:   t.Founded,
			Venue:     t.Venue,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": teams})
}

func (h *Handler) Team(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("teamId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid team ID provided"})
		return
	}

	team, err := h.api.Team(c.Request.Context(), teamID)
	if err != nil {
		h.upstream(c, "team", err, "Failed to fetch team data")
		return
	}

	info := transport.TeamInfo{
		ID:          team.ID,
		Name:        team.Name,
		ShortName:   team.ShortName,
		TLA:         team.TLA,
		Crest:       team.Crest,
		Country:     team.Area.Name,
		CountryFlag: team.Area.Flag,
		Address:     team.Address,
		Website:     team.Website,
		Founded:     team.Founded,
		ClubColors:  team.ClubColors,
		Venue:       team.Venue,
	}

	info.RunningCompetitions = make([]transport.CompetitionInfo, 0, len(team.RunningCompetitions))
	for _, comp := range team.RunningCompetitions {
		info.RunningCompetitions = append(info.RunningCompetitions, transport.CompetitionInfo{
			ID: comp.ID, Name: comp.Name, Code: comp.Code, Type: comp.Type, Emblem: comp.Emblem,
		})
	}

	if team.Coach != nil {
		coach := &transport.CoachInfo{
			ID:            team.Coach.ID,
			Name:          team.Coach.Name,
			Nationality:   team.Coach.Nationality,
			DateOfBirth:   team.Coach.DateOfBirth,
			ContractStart: "N/A",
			ContractUntil: "N/A",
		}
		if team.Coach.Contract != nil {
			if team.Coach.Contract.Start != "" {
				coach.ContractStart = team.Coach.Contract.Start
			}
			if team.Coach.Contract.Until != "" {
				coach.ContractUntil = team.Coach.Contract.Until
			}
		}
		info.Coach = coach
	}

	info.Squad = make([]transport.SquadPlayer, 0, len(team.Squad))
	for _, p := range team.Squad {
		var shirt interface{} = "N/A"
		if p.ShirtNumber != nil {
			shirt = *p.ShirtNumber
		}
		info.Squad = append(info.Squad, transport.SquadPlayer{
			ID:          p.ID,
			Name:        p.Name,
			Position:    p.Position,
			Nationality: p.Nationality,
			DateOfBirth: p.DateOfBirth,
			ShirtNumber: shirt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": info})
}

// UpcomingMatches answers 200 with success=false when the team has no
// scheduled games; the frontend treats that as an empty state, not an error.
func (h *Handler) UpcomingMatches(c *gin.Context) {
	raw := c.Param("teamId")
	teamID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid team ID provided"})
		return
	}

	resp, err := h.api.ScheduledMatches(c.Request.Context(), teamID)
	if err != nil {
		h.upstream(c, "scheduled matches", err, "Server error fetching matches")
		return
	}

	if len(resp.Matches) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "No upcoming matches found for this team."})
		return
	}

	matches := make([]transport.UpcomingMatch, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, transport.UpcomingMatch{
			MatchID:     m.ID,
			Competition: m.Competition.Name,
			Matchday:    m.Matchday,
			Status:      m.Status,
			Stage:       m.Stage,
			UTCDate:     m.UTCDate,
			HomeTeam:    teamRef(m.HomeTeam),
			AwayTeam:    teamRef(m.AwayTeam),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "teamId": raw, "matches": matches})
}

func (h *Handler) Standings(c *gin.Context) {
	leagueCode := c.Param("leagueCode")

	resp, err := h.api.Standings(c.Request.Context(), leagueCode)
	if err != nil {
		h.upstream(c, "standings", err, "Failed to fetch data")
		return
	}

	rows := make([]transport.StandingsRow, 0)
	for _, entry := range resp.Table() {
		rows = append(rows, transport.StandingsRow{
			Position: entry.Position,
			Team: transport.StandingsTeam{
				ID:        entry.Team.ID,
				Name:      entry.Team.Name,
				ShortName: entry.Team.ShortName,
				TLA:       entry.Team.TLA,
				Crest:     entry.Team.Crest,
			},
			PlayedGames:    entry.PlayedGames,
			Won:            entry.Won,
			Draw:           entry.Draw,
			Lost:           entry.Lost,
			Points:         entry.Points,
			GoalsFor:       entry.GoalsFor,
			GoalsAgainst:   entry.GoalsAgainst,
			GoalDifference: entry.GoalDifference,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows})
}

// upstream maps a client failure onto the response: non-200 answers forward
// the upstream status, transport failures become a 500.
func (h *Handler) upstream(c *gin.Context, endpoint string, err error, message string) {
	var ue *client.UpstreamError
	if errors.As(err, &ue) {
		h.log.UpstreamError(endpoint, ue.Status, err)
		c.JSON(ue.Status, gin.H{"success": false, "message": message})
		return
	}

	h.log.UpstreamError(endpoint, 0, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
}

func teamRef(t client.TeamRef) transport.TeamRef {
	return transport.TeamRef{ID: t.ID, Name: t.Name, Crest: t.Crest}
}
