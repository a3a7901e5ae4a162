package apperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindValidation, http.StatusBadRequest},
		{KindBadRequest, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindForbidden, http.StatusForbidden},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindInternal, http.StatusInternalServerError},
		{KindUnknown, http.StatusBadRequest},
	}

	for _, tc := range cases {
		got := New(tc.kind, "x").HTTPStatus()
		if got != tc.want {
			t.Fatalf("kind %d: expected status %d, got %d", tc.kind, tc.want, got)
		}
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("row missing")
	err := Wrap(KindNotFound, "player not found", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if !Is(err, KindNotFound) {
		t.Fatal("expected kind to be KindNotFound")
	}
}

func TestErrorStringIncludesOp(t *testing.T) {
	err := Validation("bad page").WithOp("players.List")
	if err.Error() != "players.List: bad page" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}
