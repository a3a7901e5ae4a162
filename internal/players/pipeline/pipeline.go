// Package pipeline implements the search/sort/paginate stages as pure
// functions over player slices. Each stage takes and returns a value; no
// stage mutates shared request state.
package pipeline

import (
	"sort"
	"strings"

	"pitchside_backend/internal/players/transport"
)

// Search keeps players whose name contains query, case-insensitively.
// An empty query passes the full set through unchanged.
func Search(players []transport.Player, query string) []transport.Player {
	if query == "" {
		return players
	}

	needle := strings.ToLower(query)
	matched := make([]transport.Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// SortByMarketValue orders players by market_value_in_eur. "asc" sorts
// ascending; any other value sorts descending.
func SortByMarketValue(players []transport.Player, order string) []transport.Player {
	sorted := make([]transport.Player, len(players))
	copy(sorted, players)

	ascending := order == "asc"
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].MarketValueInEur < sorted[j].MarketValueInEur
		}
		return sorted[i].MarketValueInEur > sorted[j].MarketValueInEur
	})
	return sorted
}

// Paginate returns the page-th slice of limit players plus the
// pre-pagination total. Pages past the end yield an empty slice.
func Paginate(players []transport.Player, page, limit int) ([]transport.Player, int) {
	total := len(players)

	start := (page - 1) * limit
	if start >= total {
		return []transport.Player{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return players[start:end], total
}
