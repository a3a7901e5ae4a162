package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pitchside_backend/internal/squads/repository"
	"pitchside_backend/internal/squads/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	squads []repository.Squad
}

func (f *fakeRepo) Create(_ context.Context, squadName string, players []byte, totalValue float64, userID uuid.UUID) (repository.Squad, error) {
	s := repository.Squad{
		ID: uuid.New(), SquadName: squadName, Players: players,
		TotalValue: totalValue, UserID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	f.squads = append(f.squads, s)
	return s, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, userID uuid.UUID) ([]repository.Squad, error) {
	var owned []repository.Squad
	for _, s := range f.squads {
		if s.UserID == userID {
			owned = append(owned, s)
		}
	}
	return owned, nil
}

func (f *fakeRepo) DeleteByOwner(_ context.Context, id, userID uuid.UUID) error {
	for i, s := range f.squads {
		if s.ID == id && s.UserID == userID {
			f.squads = append(f.squads[:i], f.squads[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newTestService(repo *fakeRepo) *Service {
	return New(repo, logger.New("development"))
}

func squadRequest() transport.SaveSquadRequest {
	return transport.SaveSquadRequest{
		SquadName:  "dream XI",
		Players:    []json.RawMessage{json.RawMessage(`{"player_id":1,"position":"GK"}`)},
		TotalValue: 120_000_000,
	}
}

func TestSaveRejectsEmptyPlayers(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	req := squadRequest()
	req.Players = nil
	_, err := svc.Save(context.Background(), uuid.New(), req)
	if apperr.GetKind(err) != apperr.KindBadRequest {
		t.Fatalf("kind = %v, want bad request", apperr.GetKind(err))
	}
}

func TestSaveRoundTripsOpaquePlayers(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	owner := uuid.New()

	squad, err := svc.Save(context.Background(), owner, squadRequest())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if squad.UserID != owner.String() {
		t.Errorf("owner = %s, want caller", squad.UserID)
	}
	if len(squad.Players) != 1 || string(squad.Players[0]) != `{"player_id":1,"position":"GK"}` {
		t.Errorf("players = %v, want entry preserved verbatim", squad.Players)
	}
}

func TestMySquadsOnlyReturnsOwn(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()
	mine, theirs := uuid.New(), uuid.New()

	if _, err := svc.Save(ctx, mine, squadRequest()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := svc.Save(ctx, theirs, squadRequest()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	squads, err := svc.MySquads(ctx, mine)
	if err != nil {
		t.Fatalf("MySquads: %v", err)
	}
	if len(squads) != 1 || squads[0].UserID != mine.String() {
		t.Errorf("got %d squads for owner", len(squads))
	}
}

func TestDeleteByNonOwnerLooksLikeMissing(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()
	owner := uuid.New()

	squad, err := svc.Save(ctx, owner, squadRequest())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	id := uuid.MustParse(squad.ID)

	errStranger := svc.Delete(ctx, uuid.New(), id)
	errMissing := svc.Delete(ctx, owner, uuid.New())
	if apperr.GetKind(errStranger) != apperr.KindNotFound || apperr.GetKind(errMissing) != apperr.KindNotFound {
		t.Fatal("both cases must be not found")
	}
	if errStranger.Error() != errMissing.Error() {
		t.Errorf("messages differ: %q vs %q", errStranger, errMissing)
	}

	if err := svc.Delete(ctx, owner, id); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
