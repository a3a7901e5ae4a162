package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScorersSendsAuthTokenAndDecodes(t *testing.T) {
	var gotToken, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Auth-Token")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"scorers":[{"player":{"name":"Kane"},"team":{"name":"Bayern"},"goals":30,"playedMatches":28}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key")
	resp, err := c.Scorers(context.Background(), "BL1")
	if err != nil {
		t.Fatalf("Scorers: %v", err)
	}

	if gotToken != "secret-key" {
		t.Errorf("X-Auth-Token = %q", gotToken)
	}
	if gotPath != "/competitions/BL1/scorers" {
		t.Errorf("path = %q", gotPath)
	}
	if len(resp.Scorers) != 1 || resp.Scorers[0].Player.Name != "Kane" {
		t.Errorf("decoded = %+v", resp.Scorers)
	}
	if resp.Scorers[0].Assists != nil {
		t.Error("missing assists must decode as nil")
	}
}

func TestNon200BecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	_, err := c.Standings(context.Background(), "PL")

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if ue.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", ue.Status)
	}
}

func TestScheduledMatchesRequestsScheduledStatus(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"matches":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	if _, err := c.ScheduledMatches(context.Background(), 57); err != nil {
		t.Fatalf("ScheduledMatches: %v", err)
	}
	if gotQuery != "status=SCHEDULED" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestCompetitionMatchesForwardsMatchday(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"competition":{"name":"Premier League"},"matches":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	if _, err := c.CompetitionMatches(context.Background(), "PL", "14"); err != nil {
		t.Fatalf("CompetitionMatches: %v", err)
	}
	if gotQuery != "matchday=14" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestStandingsTableTakesFirstGroup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"standings":[{"table":[{"position":1,"team":{"id":64,"name":"Liverpool"},"points":84}]},{"table":[]}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k")
	resp, err := c.Standings(context.Background(), "PL")
	if err != nil {
		t.Fatalf("Standings: %v", err)
	}

	table := resp.Table()
	if len(table) != 1 || table[0].Team.Name != "Liverpool" || table[0].Points != 84 {
		t.Errorf("table = %+v", table)
	}
}
