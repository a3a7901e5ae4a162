// Package repository provides PostgreSQL persistence for player records.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pitchside_backend/internal/players/transport"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no player matches the lookup.
var ErrNotFound = errors.New("player not found")

// playerColumns is the canonical select list; every scan follows this order.
const playerColumns = `id, player_id, current_club_id, country_of_birth, city_of_birth,
		country_of_citizenship, date_of_birth, sub_position, foot, height_in_cm,
		contract_expiration_date, agent_name, current_club_domestic_competition_id,
		current_club_name, market_value_in_eur, highest_market_value_in_eur, age,
		nationality, name, xgboost_predicted_values, rft_predicted_values, image_url,
		created_at, updated_at`

// playerAttrs are the client-settable columns, in insert/update order.
const playerAttrs = `current_club_id, country_of_birth, city_of_birth,
		country_of_citizenship, date_of_birth, sub_position, foot, height_in_cm,
		contract_expiration_date, agent_name, current_club_domestic_competition_id,
		current_club_name, market_value_in_eur, highest_market_value_in_eur, age,
		nationality, name, xgboost_predicted_values, rft_predicted_values, image_url`

const (
	// player_id always comes from the sequence; client-supplied values never
	// reach this statement.
	insertPlayerQuery = `
		INSERT INTO player_full_info (player_id, ` + playerAttrs + `)
		VALUES (nextval('players_player_id_seq'),
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + playerColumns

	getPlayerByIDQuery = `
		SELECT ` + playerColumns + `
		FROM player_full_info
		WHERE id = $1`

	getPlayerByPlayerIDQuery = `
		SELECT ` + playerColumns + `
		FROM player_full_info
		WHERE player_id = $1`

	listPlayersQuery = `
		SELECT ` + playerColumns + `
		FROM player_full_info
		ORDER BY player_id
		LIMIT $1 OFFSET $2`

	countPlayersQuery = `SELECT COUNT(*) FROM player_full_info`

	allPlayersQuery = `
		SELECT ` + playerColumns + `
		FROM player_full_info
		ORDER BY player_id`

	bySubPositionsQuery = `
		SELECT ` + playerColumns + `
		FROM player_full_info
		WHERE sub_position = ANY($1)
		ORDER BY player_id`

	updatePlayerQuery = `
		UPDATE player_full_info
		SET current_club_id = $1, country_of_birth = $2, city_of_birth = $3,
			country_of_citizenship = $4, date_of_birth = $5, sub_position = $6,
			foot = $7, height_in_cm = $8, contract_expiration_date = $9,
			agent_name = $10, current_club_domestic_competition_id = $11,
			current_club_name = $12, market_value_in_eur = $13,
			highest_market_value_in_eur = $14, age = $15, nationality = $16,
			name = $17, xgboost_predicted_values = $18, rft_predicted_values = $19,
			image_url = $20, updated_at = now()
		WHERE player_id = $21
		RETURNING ` + playerColumns

	deletePlayerQuery = `DELETE FROM player_full_info WHERE player_id = $1`
)

// Player is the database model. Columns are NOT NULL with zero-value
// defaults, so no field needs pointer nullability.
type Player struct {
	ID                               uuid.UUID
	PlayerID                         int64
	CurrentClubID                    int64
	CountryOfBirth                   string
	CityOfBirth                      string
	CountryOfCitizenship             string
	DateOfBirth                      string
	SubPosition                      string
	Foot                             string
	HeightInCm                       int
	ContractExpirationDate           string
	AgentName                        string
	CurrentClubDomesticCompetitionID string
	CurrentClubName                  string
	MarketValueInEur                 float64
	HighestMarketValueInEur          float64
	Age                              int
	Nationality                      string
	Name                             string
	XGBoostPredictedValues           float64
	RFTPredictedValues               float64
	ImageURL                         string
	CreatedAt                        time.Time
	UpdatedAt                        time.Time
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, req transport.PlayerRequest) (Player, error) {
	row := r.pool.QueryRow(ctx, insertPlayerQuery, attrArgs(req)...)
	return scanPlayer(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Player, error) {
	row := r.pool.QueryRow(ctx, getPlayerByIDQuery, id)
	return scanPlayer(row)
}

func (r *Repository) GetByPlayerID(ctx context.Context, playerID int64) (Player, error) {
	row := r.pool.QueryRow(ctx, getPlayerByPlayerIDQuery, playerID)
	return scanPlayer(row)
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Player, error) {
	rows, err := r.pool.Query(ctx, listPlayersQuery, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectPlayers(rows)
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, countPlayersQuery).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repository) All(ctx context.Context) ([]Player, error) {
	rows, err := r.pool.Query(ctx, allPlayersQuery)
	if err != nil {
		return nil, err
	}
	return collectPlayers(rows)
}

func (r *Repository) BySubPositions(ctx context.Context, subPositions []string) ([]Player, error) {
	rows, err := r.pool.Query(ctx, bySubPositionsQuery, subPositions)
	if err != nil {
		return nil, err
	}
	return collectPlayers(rows)
}

// Filter builds a conjunctive WHERE clause from the provided params.
// sortColumn must already be validated against the allow-list by the caller;
// it is interpolated, not parameterized.
func (r *Repository) Filter(ctx context.Context, params transport.FilterParams, sortColumn string, descending bool) ([]Player, error) {
	var (
		where []string
		args  []interface{}
	)

	if params.SubPosition != "" {
		args = append(args, params.SubPosition)
		where = append(where, fmt.Sprintf("sub_position = $%d", len(args)))
	}
	if params.Name != "" {
		args = append(args, "%"+params.Name+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if params.Age != nil {
		args = append(args, *params.Age)
		where = append(where, fmt.Sprintf("age <= $%d", len(args)))
	}
	if params.XGBoostPredictedValues != nil {
		args = append(args, *params.XGBoostPredictedValues)
		where = append(where, fmt.Sprintf("xgboost_predicted_values <= $%d", len(args)))
	}

	query := `SELECT ` + playerColumns + ` FROM player_full_info`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if sortColumn != "" {
		query += " ORDER BY " + sortColumn
		if descending {
			query += " DESC"
		} else {
			query += " ASC"
		}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectPlayers(rows)
}

func (r *Repository) Update(ctx context.Context, playerID int64, req transport.PlayerRequest) (Player, error) {
	args := append(attrArgs(req), playerID)
	row := r.pool.QueryRow(ctx, updatePlayerQuery, args...)
	return scanPlayer(row)
}

func (r *Repository) Delete(ctx context.Context, playerID int64) error {
	tag, err := r.pool.Exec(ctx, deletePlayerQuery, playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func attrArgs(req transport.PlayerRequest) []interface{} {
	return []interface{}{
		req.CurrentClubID, req.CountryOfBirth, req.CityOfBirth,
		req.CountryOfCitizenship, req.DateOfBirth, req.SubPosition, req.Foot,
		req.HeightInCm, req.ContractExpirationDate, req.AgentName,
		req.CurrentClubDomesticCompetitionID, req.CurrentClubName,
		req.MarketValueInEur, req.HighestMarketValueInEur, req.Age,
		req.Nationality, req.Name, req.XGBoostPredictedValues,
		req.RFTPredictedValues, req.ImageURL,
	}
}

func scanPlayer(row pgx.Row) (Player, error) {
	var p Player
	err := row.Scan(
		&p.ID, &p.PlayerID, &p.CurrentClubID, &p.CountryOfBirth, &p.CityOfBirth,
		&p.CountryOfCitizenship, &p.DateOfBirth, &p.SubPosition, &p.Foot,
		&p.HeightInCm, &p.ContractExpirationDate, &p.AgentName,
		&p.CurrentClubDomesticCompetitionID, &p.CurrentClubName,
		&p.MarketValueInEur, &p.HighestMarketValueInEur, &p.Age,
		&p.Nationality, &p.Name, &p.XGBoostPredictedValues,
		&p.RFTPredictedValues, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Player{}, ErrNotFound
		}
		return Player{}, err
	}
	return p, nil
}

func collectPlayers(rows pgx.Rows) ([]Player, error) {
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
