package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utakatalp/nrr-simulator/internal/league"
	"github.com/utakatalp/nrr-simulator/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	table, err := league.CalculateTable(store.Builtin())
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(table, league.DefaultWinPoints, logger).Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealth(t *testing.T) {
	rec, body := do(t, newTestRouter(t), "GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestTable(t *testing.T) {
	rec, _ := do(t, newTestRouter(t), "GET", "/api/table", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 5)
	assert.Equal(t, float64(1), rows[0]["position"])
	assert.Equal(t, "Chennai Super Kings", rows[0]["name"])
	assert.Equal(t, "133.1", rows[0]["oversFor"])
}

func TestTeam(t *testing.T) {
	h := newTestRouter(t)

	rec, body := do(t, h, "GET", "/api/teams/Delhi%20Capitals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["position"])

	rec, _ = do(t, h, "GET", "/api/teams/Gujarat%20Titans", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSimulate(t *testing.T) {
	h := newTestRouter(t)

	rec, body := do(t, h, "POST", "/api/simulate", `{
		"team": "Rajasthan Royals",
		"opponent": "Delhi Capitals",
		"desiredPosition": 3,
		"overs": 20,
		"score": 180,
		"battingFirst": true
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["feasible"])

	batting := body["battingFirst"].(map[string]any)
	assert.Equal(t, float64(175), batting["maxRunsToAllow"])
	assert.Equal(t, float64(133), batting["minRunsToAllow"])
	assert.Nil(t, body["bowlingFirst"])

	window := body["window"].(map[string]any)
	assert.Equal(t, 0.597, window["max"])
}

func TestSimulateInfeasible(t *testing.T) {
	rec, body := do(t, newTestRouter(t), "POST", "/api/simulate",
		`{"team":"Rajasthan Royals","opponent":"Delhi Capitals","desiredPosition":2,"overs":20,"score":20,"battingFirst":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["feasible"])
}

func TestSimulateErrors(t *testing.T) {
	h := newTestRouter(t)

	testCases := []struct {
		name   string
		body   string
		status int
	}{
		{"unreachable", `{"team":"Mumbai Indians","opponent":"Delhi Capitals","desiredPosition":3,"overs":20,"score":200}`, http.StatusUnprocessableEntity},
		{"bad overs", `{"team":"Rajasthan Royals","opponent":"Delhi Capitals","desiredPosition":3,"overs":0,"score":150}`, http.StatusBadRequest},
		{"same team", `{"team":"Rajasthan Royals","opponent":"Rajasthan Royals","desiredPosition":3,"overs":20,"score":150}`, http.StatusBadRequest},
		{"unknown team", `{"team":"Gujarat Titans","opponent":"Delhi Capitals","desiredPosition":3,"overs":20,"score":150}`, http.StatusNotFound},
		{"overs above limit", `{"team":"Rajasthan Royals","opponent":"Delhi Capitals","desiredPosition":3,"overs":500000000,"score":150}`, http.StatusBadRequest},
		{"score above limit", `{"team":"Rajasthan Royals","opponent":"Delhi Capitals","desiredPosition":3,"overs":20,"score":3000000000,"battingFirst":true}`, http.StatusBadRequest},
		{"body too large", `{"team":"` + strings.Repeat("R", maxBodyBytes) + `"}`, http.StatusBadRequest},
		{"unknown field", `{"team":"Rajasthan Royals","toss":"won"}`, http.StatusBadRequest},
		{"not json", `simulate please`, http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := do(t, h, "POST", "/api/simulate", tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.NotEmpty(t, body["error"])
		})
	}

	_, body := do(t, h, "POST", "/api/simulate", testCases[0].body)
	assert.Equal(t, "unreachable", body["reason"])
}

func TestRequestLogRecordsStatus(t *testing.T) {
	table, err := league.CalculateTable(store.Builtin())
	require.NoError(t, err)
	var buf bytes.Buffer
	h := NewHandler(table, league.DefaultWinPoints, slog.New(slog.NewJSONHandler(&buf, nil))).Routes()

	do(t, h, "GET", "/api/teams/Gujarat%20Titans", "")
	do(t, h, "GET", "/api/health", "")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for i, want := range []float64{http.StatusNotFound, http.StatusOK} {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[i]), &entry))
		assert.Equal(t, want, entry["status"])
		assert.NotEmpty(t, entry["request_id"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec, _ := do(t, newTestRouter(t), "GET", "/api/simulate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
