// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package httpapi

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-battle-engine/pkg/arena"
	"github.com/AccelByte/extend-battle-engine/pkg/memstore"
	"github.com/AccelByte/extend-battle-engine/pkg/testsetup"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalog := memstore.NewCatalog()
	catalog.Put(testsetup.Creature("c1", "p1"))
	catalog.Put(testsetup.Creature("c2", "p2"))
	catalog.Put(testsetup.Creature("wild-template", "system"))
	records := memstore.NewRecords()

	a, err := arena.New(testsetup.DeterministicCombatConfig(), arena.Dependencies{
		Creatures:        catalog,
		Ratings:          records,
		OutcomeWriter:    records,
		CreatureRecorder: records,
		Rand:             rand.New(rand.NewSource(3)),
	})
	require.NoError(t, err)

	server := httptest.NewServer(NewRouter(a, prometheus.NewRegistry()))
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, server *httptest.Server, path, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestStartWildBattleEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server, "/v1/battles/wild",
		`{"participantID":"p1","creatureID":"c1","opponentTemplateID":"wild-template","opponentLevel":5}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var snapshot SessionSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
	require.NotEmpty(t, snapshot.ID)
	require.Equal(t, "wild", string(snapshot.Kind))
	require.Equal(t, "home", string(snapshot.Turn))
	require.True(t, snapshot.Away.IsAI)
	require.Equal(t, 5, snapshot.Away.Level)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		Name           string
		Prepare        func(t *testing.T, server *httptest.Server)
		Path           string
		Body           string
		ExpectedStatus int
	}{
		{
			Name:           "malformed body",
			Path:           "/v1/battles/wild",
			Body:           `{not json`,
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
		{
			Name:           "unknown creature",
			Path:           "/v1/queue/join",
			Body:           `{"participantID":"p1","creatureID":"nope"}`,
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name:           "action without a session",
			Path:           "/v1/battles/action",
			Body:           `{"participantID":"ghost","action":{"kind":"attack","moveIndex":0}}`,
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name: "joining the queue twice",
			Prepare: func(t *testing.T, server *httptest.Server) {
				resp := post(t, server, "/v1/queue/join", `{"participantID":"p1","creatureID":"c1"}`)
				require.Equal(t, http.StatusAccepted, resp.StatusCode)
			},
			Path:           "/v1/queue/join",
			Body:           `{"participantID":"p1","creatureID":"c1"}`,
			ExpectedStatus: http.StatusConflict,
		},
		{
			Name: "malformed battle action",
			Prepare: func(t *testing.T, server *httptest.Server) {
				resp := post(t, server, "/v1/battles/wild",
					`{"participantID":"p1","creatureID":"c1","opponentTemplateID":"wild-template"}`)
				require.Equal(t, http.StatusCreated, resp.StatusCode)
			},
			Path:           "/v1/battles/action",
			Body:           `{"participantID":"p1","action":{"kind":"dance"}}`,
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			server := newTestServer(t)
			if tt.Prepare != nil {
				tt.Prepare(t, server)
			}

			resp := post(t, server, tt.Path, tt.Body)
			require.Equal(t, tt.ExpectedStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.NotEmpty(t, body["error"])
		})
	}
}

func TestLeaveQueueIsIdempotent(t *testing.T) {
	server := newTestServer(t)

	resp := post(t, server, "/v1/queue/leave", `{"participantID":"p1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
