package service

import (
	"context"
	"encoding/json"
	"errors"

	"pitchside_backend/internal/squads/repository"
	"pitchside_backend/internal/squads/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	msgEmptyPlayers  = "Players array cannot be empty and must contain position data."
	msgSquadNotFound = "Squad not found or unauthorized"
)

// Repository is the persistence surface the squad service needs.
type Repository interface {
	Create(ctx context.Context, squadName string, players []byte, totalValue float64, userID uuid.UUID) (repository.Squad, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]repository.Squad, error)
	DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error
}

type Service struct {
	repo Repository
	log  *logger.Logger
}

func New(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Save persists a squad owned by the caller. The player list must be a
// non-empty array; its entries are stored verbatim.
func (s *Service) Save(ctx context.Context, userID uuid.UUID, req transport.SaveSquadRequest) (transport.SquadResponse, error) {
	if len(req.Players) == 0 {
		return transport.SquadResponse{}, apperr.BadRequest(msgEmptyPlayers)
	}

	players, err := json.Marshal(req.Players)
	if err != nil {
		return transport.SquadResponse{}, apperr.Wrap(apperr.KindBadRequest, "invalid players payload", err)
	}

	squad, err := s.repo.Create(ctx, req.SquadName, players, req.TotalValue, userID)
	if err != nil {
		s.log.DatabaseError("squads.Save", err)
		return transport.SquadResponse{}, apperr.Wrap(apperr.KindInternal, "Failed to save squad", err)
	}
	return toResponse(squad)
}

func (s *Service) MySquads(ctx context.Context, userID uuid.UUID) ([]transport.SquadResponse, error) {
	squads, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		s.log.DatabaseError("squads.MySquads", err)
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch squads", err)
	}

	responses := make([]transport.SquadResponse, 0, len(squads))
	for _, squad := range squads {
		resp, err := toResponse(squad)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Delete removes a squad only when it belongs to the caller. A squad owned
// by someone else yields the same not-found as a missing one.
func (s *Service) Delete(ctx context.Context, userID, squadID uuid.UUID) error {
	if err := s.repo.DeleteByOwner(ctx, squadID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(msgSquadNotFound)
		}
		s.log.DatabaseError("squads.Delete", err)
		return apperr.Wrap(apperr.KindInternal, "Failed to delete squad", err)
	}
	return nil
}

func toResponse(squad repository.Squad) (transport.SquadResponse, error) {
	var players []json.RawMessage
	if len(squad.Players) > 0 {
		if err := json.Unmarshal(squad.Players, &players); err != nil {
			return transport.SquadResponse{}, apperr.Wrap(apperr.KindInternal, "corrupt squad players", err)
		}
	}

	return transport.SquadResponse{
		ID:         squad.ID.String(),
		SquadName:  squad.SquadName,
		Players:    players,
		TotalValue: squad.TotalValue,
		UserID:     squad.UserID.String(),
		CreatedAt:  squad.CreatedAt,
		UpdatedAt:  squad.UpdatedAt,
	}, nil
}
