package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pitchside_backend/internal/players/pipeline"
	"pitchside_backend/internal/players/repository"
	"pitchside_backend/internal/players/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	msgInvalidPagination = "Page and limit must be positive numbers."
	msgPlayerNotFound    = "Player not found"
	msgNoTopPlayers      = "No players found or data missing."
	msgNoSubPositionHits = "No players found for the given sub-positions."
	msgNoFilterHits      = "No players found matching the criteria."
	msgInvalidSortField  = "Invalid sort field. Use XGBoost_predicted_values, age, or current_club_domestic_competition_id."
)

// sortColumns maps the public sortBy values onto their table columns.
// Anything outside this map is rejected before reaching SQL.
var sortColumns = map[string]string{
	"XGBoost_predicted_values":             "xgboost_predicted_values",
	"age":                                  "age",
	"current_club_domestic_competition_id": "current_club_domestic_competition_id",
}

// Repository is the persistence surface the player service needs.
type Repository interface {
	Create(ctx context.Context, req transport.PlayerRequest) (repository.Player, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Player, error)
	GetByPlayerID(ctx context.Context, playerID int64) (repository.Player, error)
	List(ctx context.Context, limit, offset int) ([]repository.Player, error)
	Count(ctx context.Context) (int, error)
	All(ctx context.Context) ([]repository.Player, error)
	BySubPositions(ctx context.Context, subPositions []string) ([]repository.Player, error)
	Filter(ctx context.Context, params transport.FilterParams, sortColumn string, descending bool) ([]repository.Player, error)
	Update(ctx context.Context, playerID int64, req transport.PlayerRequest) (repository.Player, error)
	Delete(ctx context.Context, playerID int64) error
}

type Service struct {
	repo Repository
	log  *logger.Logger
}

func New(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, page, limit int) (transport.PlayerListResponse, error) {
	if page < 1 || limit < 1 {
		return transport.PlayerListResponse{}, apperr.BadRequest(msgInvalidPagination)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.DatabaseError("players.List", err)
		return transport.PlayerListResponse{}, apperr.Wrap(apperr.KindInternal, "could not count players", err)
	}

	players, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		s.log.DatabaseError("players.List", err)
		return transport.PlayerListResponse{}, apperr.Wrap(apperr.KindInternal, "could not list players", err)
	}

	return transport.PlayerListResponse{
		TotalPlayers: total,
		TotalPages:   (total + limit - 1) / limit,
		CurrentPage:  page,
		Players:      toResponses(players),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.Player, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.Player{}, apperr.NotFound(msgPlayerNotFound)
		}
		return transport.Player{}, apperr.Wrap(apperr.KindInternal, "could not fetch player", err)
	}
	return toResponse(player), nil
}

// Top5 groups all players by domestic competition and keeps each group's
// five highest predicted values. Groups come back in competition-id order
// so the response is deterministic.
func (s *Service) Top5(ctx context.Context) ([]transport.CompetitionGroup, error) {
	players, err := s.repo.All(ctx)
	if err != nil {
		s.log.DatabaseError("players.Top5", err)
		return nil, apperr.Wrap(apperr.KindInternal, "could not fetch players", err)
	}
	if len(players) == 0 {
		return nil, apperr.NotFound(msgNoTopPlayers)
	}

	byCompetition := make(map[string][]transport.Player)
	for _, p := range players {
		byCompetition[p.CurrentClubDomesticCompetitionID] = append(
			byCompetition[p.CurrentClubDomesticCompetitionID], toResponse(p))
	}

	ids := make([]string, 0, len(byCompetition))
	for id := range byCompetition {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	groups := make([]transport.CompetitionGroup, 0, len(ids))
	for _, id := range ids {
		group := byCompetition[id]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].XGBoostPredictedValues > group[j].XGBoostPredictedValues
		})
		if len(group) > 5 {
			group = group[:5]
		}
		groups = append(groups, transport.CompetitionGroup{ID: id, TopPlayers: group})
	}
	return groups, nil
}

// LookupInternalID translates an external player_id into the internal id.
func (s *Service) LookupInternalID(ctx context.Context, playerID int64) (string, error) {
	player, err := s.repo.GetByPlayerID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperr.NotFound(msgPlayerNotFound)
		}
		return "", apperr.Wrap(apperr.KindInternal, "could not fetch player", err)
	}
	return player.ID.String(), nil
}

// BySubPositions matches players against a comma-separated list of
// sub-positions; any single match qualifies.
func (s *Service) BySubPositions(ctx context.Context, raw string) ([]transport.Player, error) {
	subPositions := strings.Split(raw, ",")

	players, err := s.repo.BySubPositions(ctx, subPositions)
	if err != nil {
		s.log.DatabaseError("players.BySubPositions", err)
		return nil, apperr.Wrap(apperr.KindInternal, "could not fetch players", err)
	}
	if len(players) == 0 {
		return nil, apperr.NotFound(msgNoSubPositionHits)
	}
	return toResponses(players), nil
}

func (s *Service) Filter(ctx context.Context, params transport.FilterParams) ([]transport.Player, error) {
	sortColumn := ""
	if params.SortBy != "" {
		col, ok := sortColumns[params.SortBy]
		if !ok {
			return nil, apperr.BadRequest(msgInvalidSortField)
		}
		sortColumn = col
	}

	players, err := s.repo.Filter(ctx, params, sortColumn, params.SortOrder != "asc")
	if err != nil {
		s.log.DatabaseError("players.Filter", err)
		return nil, apperr.Wrap(apperr.KindInternal, "could not filter players", err)
	}
	if len(players) == 0 {
		return nil, apperr.NotFound(msgNoFilterHits)
	}
	return toResponses(players), nil
}

// Search runs the full pipeline: name search, market-value sort, pagination.
func (s *Service) Search(ctx context.Context, query, sortOrder string, page, limit int) (transport.SearchResponse, error) {
	players, err := s.repo.All(ctx)
	if err != nil {
		s.log.DatabaseError("players.Search", err)
		return transport.SearchResponse{}, apperr.Wrap(apperr.KindInternal, "could not fetch players", err)
	}

	result := pipeline.SortByMarketValue(pipeline.Search(toResponses(players), query), sortOrder)
	pageItems, total := pipeline.Paginate(result, page, limit)

	return transport.SearchResponse{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Players: pageItems,
	}, nil
}

// SearchSort runs search and sort without pagination, returning the bare list.
func (s *Service) SearchSort(ctx context.Context, query, sortOrder string) ([]transport.Player, error) {
	players, err := s.repo.All(ctx)
	if err != nil {
		s.log.DatabaseError("players.SearchSort", err)
		return nil, apperr.Wrap(apperr.KindInternal, "could not fetch players", err)
	}
	return pipeline.SortByMarketValue(pipeline.Search(toResponses(players), query), sortOrder), nil
}

func (s *Service) CreatePlayer(ctx context.Context, req transport.PlayerRequest) (transport.Player, error) {
	player, err := s.repo.Create(ctx, req)
	if err != nil {
		s.log.DatabaseError("players.CreatePlayer", err)
		return transport.Player{}, apperr.Wrap(apperr.KindInternal, "could not create player", err)
	}
	return toResponse(player), nil
}

func (s *Service) AllPlayers(ctx context.Context) ([]transport.Player, error) {
	players, err := s.repo.All(ctx)
	if err != nil {
		s.log.DatabaseError("players.AllPlayers", err)
		return nil, apperr.Wrap(apperr.KindInternal, "could not list players", err)
	}
	return toResponses(players), nil
}

func (s *Service) GetByPlayerID(ctx context.Context, playerID int64) (transport.Player, error) {
	player, err := s.repo.GetByPlayerID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.Player{}, apperr.NotFound(msgPlayerNotFound)
		}
		return transport.Player{}, apperr.Wrap(apperr.KindInternal, "could not fetch player", err)
	}
	return toResponse(player), nil
}

func (s *Service) UpdatePlayer(ctx context.Context, playerID int64, req transport.PlayerRequest) (transport.Player, error) {
	player, err := s.repo.Update(ctx, playerID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.Player{}, apperr.NotFound(msgPlayerNotFound)
		}
		s.log.DatabaseError("players.UpdatePlayer", err)
		return transport.Player{}, apperr.Wrap(apperr.KindInternal, "could not update player", err)
	}
	return toResponse(player), nil
}

func (s *Service) DeletePlayer(ctx context.Context, playerID int64) error {
	if err := s.repo.Delete(ctx, playerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(msgPlayerNotFound)
		}
		s.log.DatabaseError("players.DeletePlayer", err)
		return apperr.Wrap(apperr.KindInternal, "could not delete player", err)
	}
	return nil
}

func toResponse(p repository.Player) transport.Player {
	return transport.Player{
		ID:                               p.ID.String(),
		PlayerID:                         p.PlayerID,
		CurrentClubID:                    p.CurrentClubID,
		CountryOfBirth:                   p.CountryOfBirth,
		CityOfBirth:                      p.CityOfBirth,
		CountryOfCitizenship:             p.CountryOfCitizenship,
		DateOfBirth:                      p.DateOfBirth,
		SubPosition:                      p.SubPosition,
		Foot:                             p.Foot,
		HeightInCm:                       p.HeightInCm,
		ContractExpirationDate:           p.ContractExpirationDate,
		AgentName:                        p.AgentName,
		CurrentClubDomesticCompetitionID: p.CurrentClubDomesticCompetitionID,
		CurrentClubName:                  p.CurrentClubName,
		MarketValueInEur:                 p.MarketValueInEur,
		HighestMarketValueInEur:          p.HighestMarketValueInEur,
		Age:                              p.Age,
		Nationality:                      p.Nationality,
		Name:                             p.Name,
		XGBoostPredictedValues:           p.XGBoostPredictedValues,
		RFTPredictedValues:               p.RFTPredictedValues,
		ImageURL:                         p.ImageURL,
		CreatedAt:                        p.CreatedAt,
		UpdatedAt:                        p.UpdatedAt,
	}
}

func toResponses(players []repository.Player) []transport.Player {
	responses := make([]transport.Player, 0, len(players))
	for _, p := range players {
		responses = append(responses, toResponse(p))
	}
	return responses
}
