package transport

import (
	"encoding/json"
	"time"
)

// SaveSquadRequest carries a fantasy squad. Player entries are opaque to the
// backend (the frontend stores formation/position data in them), so they are
// kept as raw JSON.
type SaveSquadRequest struct {
	SquadName  string            `json:"squadName" validate:"required"`
	Players    []json.RawMessage `json:"players"`
	TotalValue float64           `json:"totalValue"`
}

type SquadResponse struct {
	ID         string            `json:"_id"`
	SquadName  string            `json:"squadName"`
	Players    []json.RawMessage `json:"players"`
	TotalValue float64           `json:"totalValue"`
	UserID     string            `json:"userId"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
