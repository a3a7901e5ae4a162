package repository

import (
	"strings"
	"testing"
)

func TestInsertAssignsPlayerIDFromSequence(t *testing.T) {
	if !strings.Contains(insertPlayerQuery, "nextval('players_player_id_seq')") {
		t.Error("insert must take player_id from the sequence")
	}
	// 20 attribute placeholders, none of them the player_id.
	if strings.Contains(insertPlayerQuery, "$21") {
		t.Error("insert must not accept a client-supplied player_id")
	}
}

func TestAdminQueriesKeyOnPlayerID(t *testing.T) {
	for name, q := range map[string]string{
		"get":    getPlayerByPlayerIDQuery,
		"update": updatePlayerQuery,
		"delete": deletePlayerQuery,
	} {
		if !strings.Contains(q, "WHERE player_id = $") {
			t.Errorf("%s query must key on player_id", name)
		}
	}
}

func TestUpdateNeverTouchesPlayerID(t *testing.T) {
	set := updatePlayerQuery[strings.Index(updatePlayerQuery, "SET"):strings.Index(updatePlayerQuery, "WHERE")]
	if strings.Contains(set, "player_id") {
		t.Error("update must not reassign player_id")
	}
}

func TestSubPositionQueryMatchesAny(t *testing.T) {
	if !strings.Contains(bySubPositionsQuery, "sub_position = ANY($1)") {
		t.Error("sub-position lookup must match any of the given values")
	}
}
