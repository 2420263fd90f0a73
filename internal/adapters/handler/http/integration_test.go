package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vncsmyrnk/ballotbox/internal/adapters/repository/postgres"
)

type integrationApp struct {
	Server *httptest.Server
	Client *http.Client
	Store  *postgres.Store
}

func setupIntegrationApp(t *testing.T) *integrationApp {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("bayroudb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := postgres.Connect(ctx, connStr)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(ctx, store.DB()))

	app := setupTestApp(t, store)
	server := httptest.NewServer(app.Handler)

	t.Cleanup(func() {
		server.Close()
		store.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return &integrationApp{Server: server, Client: server.Client(), Store: store}
}

func (a *integrationApp) postJSON(t *testing.T, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := a.Client.Post(a.Server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestIntegration_VotingFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupIntegrationApp(t)

	// 1. Register a user without pseudo
	resp := app.postJSON(t, "/user", map[string]string{"email": "alice@example.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		User map[string]string `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, "alice@example.com", created.User["pseudo"])

	// 2. Not voted yet
	resp, err := app.Client.Get(app.Server.URL + "/hasVoted?email=alice%40example.com")
	require.NoError(t, err)
	var status hasVotedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	resp.Body.Close()
	assert.False(t, status.HasVoted)

	// 3. Vote twice with the same email, both are stored
	for i := 0; i < 2; i++ {
		resp = app.postJSON(t, "/vote", map[string]string{"email": "alice@example.com", "choice": "Oui"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	resp = app.postJSON(t, "/vote", map[string]string{"email": "bob@example.com", "choice": "Non"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var count int
	err = app.Store.DB().QueryRow("SELECT COUNT(*) FROM documents WHERE collection = 'votes' AND partition_key = $1", "alice@example.com").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// 4. Invalid choice never reaches the table
	resp = app.postJSON(t, "/vote", map[string]string{"email": "carol@example.com", "choice": "Maybe"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// 5. Now voted
	resp, err = app.Client.Get(app.Server.URL + "/hasVoted?email=alice%40example.com")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	resp.Body.Close()
	assert.True(t, status.HasVoted)

	// 6. Results and listing
	resp, err = app.Client.Get(app.Server.URL + "/results")
	require.NoError(t, err)
	var results map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	resp.Body.Close()
	assert.Equal(t, map[string]int{"Oui": 2, "Non": 1}, results)

	resp, err = app.Client.Get(app.Server.URL + "/votes")
	require.NoError(t, err)
	var votes []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&votes))
	resp.Body.Close()
	assert.Len(t, votes, 3)
	for _, v := range votes {
		assert.ElementsMatch(t, []string{"email", "pseudo", "choice"}, keys(v))
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
