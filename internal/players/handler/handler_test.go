package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pitchside_backend/internal/players/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeService struct {
	listPage  int
	listLimit int
}

func (f *fakeService) List(_ context.Context, page, limit int) (transport.PlayerListResponse, error) {
	f.listPage, f.listLimit = page, limit
	if page < 1 || limit < 1 {
		return transport.PlayerListResponse{}, apperr.BadRequest("Page and limit must be positive numbers.")
	}
	return transport.PlayerListResponse{CurrentPage: page, Players: []transport.Player{}}, nil
}

func (f *fakeService) GetByID(context.Context, uuid.UUID) (transport.Player, error) {
	return transport.Player{}, apperr.NotFound("Player not found")
}

func (f *fakeService) Top5(context.Context) ([]transport.CompetitionGroup, error) {
	return nil, apperr.NotFound("No players found or data missing.")
}

func (f *fakeService) LookupInternalID(context.Context, int64) (string, error) {
	return "abc123", nil
}

func (f *fakeService) BySubPositions(context.Context, string) ([]transport.Player, error) {
	return []transport.Player{}, nil
}

func (f *fakeService) Filter(context.Context, transport.FilterParams) ([]transport.Player, error) {
	return []transport.Player{}, nil
}

func (f *fakeService) Search(_ context.Context, _, _ string, page, limit int) (transport.SearchResponse, error) {
	return transport.SearchResponse{Page: page, Limit: limit, Players: []transport.Player{}}, nil
}

func (f *fakeService) SearchSort(context.Context, string, string) ([]transport.Player, error) {
	return []transport.Player{}, nil
}

func (f *fakeService) CreatePlayer(context.Context, transport.PlayerRequest) (transport.Player, error) {
	return transport.Player{PlayerID: 1}, nil
}

func (f *fakeService) AllPlayers(context.Context) ([]transport.Player, error) {
	return []transport.Player{}, nil
}

func (f *fakeService) GetByPlayerID(context.Context, int64) (transport.Player, error) {
	return transport.Player{}, apperr.NotFound("Player not found")
}

func (f *fakeService) UpdatePlayer(context.Context, int64, transport.PlayerRequest) (transport.Player, error) {
	return transport.Player{}, apperr.NotFound("Player not found")
}

func (f *fakeService) DeletePlayer(context.Context, int64) error {
	return nil
}

func newTestRouter(svc PlayerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, validator.New())

	r := gin.New()
	r.GET("/api/players", h.List)
	r.GET("/api/players/playerId/:player_id", h.LookupInternalID)
	r.GET("/api/players/:id", h.GetByID)
	r.PUT("/api/handlePlayer/update/:id", h.Update)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListDefaultsPageAndLimit(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	if w := get(r, "/api/players"); w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if svc.listPage != 1 || svc.listLimit != 10 {
		t.Errorf("defaults = page %d limit %d, want 1 and 10", svc.listPage, svc.listLimit)
	}
}

func TestListRejectsNonNumericAndNonPositiveParams(t *testing.T) {
	r := newTestRouter(&fakeService{})

	for _, path := range []string{
		"/api/players?page=abc",
		"/api/players?limit=abc",
		"/api/players?page=0",
		"/api/players?limit=0",
	} {
		if w := get(r, path); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, w.Code)
		}
	}
}

func TestLookupInternalIDReturnsOnlyID(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w := get(r, "/api/players/playerId/42")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"_id"`) || strings.Contains(body, `"Name"`) {
		t.Errorf("body = %s, want only the _id field", body)
	}
}

func TestGetByIDRejectsMalformedUUID(t *testing.T) {
	r := newTestRouter(&fakeService{})

	if w := get(r, "/api/players/not-a-uuid"); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateUnknownPlayerIs404(t *testing.T) {
	r := newTestRouter(&fakeService{})

	body := strings.NewReader(`{"Name":"ghost","current_club_domestic_competition_id":"GB1"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/handlePlayer/update/99", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
