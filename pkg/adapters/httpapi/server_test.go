package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/pkg/adapters/httpapi"
	"github.com/canopyhq/canopy/pkg/adapters/memory"
	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	loader, err := memory.NewTreeLoader(
		domain.TreeNode{ID: "root", Label: "Supply Chain Health"},
		domain.TreeNode{ID: "suppliers", Label: "Suppliers", ParentID: "root", Weight: 0.4},
		domain.TreeNode{ID: "logistics", Label: "Logistics", ParentID: "root", Weight: 0.6},
		domain.TreeNode{ID: "supplier-otd", Label: "On-Time Delivery", ParentID: "suppliers", Weight: 1},
		domain.TreeNode{ID: "freight-cost", Label: "Freight Cost", ParentID: "logistics", Weight: 1},
	)
	require.NoError(t, err)

	provider := memory.NewProvider(map[string]float64{
		"supplier-otd": 30,
		"freight-cost": 90,
	})

	eng, err := canopy.New(loader, canopy.WithScoreProvider(provider))
	require.NoError(t, err)

	return httpapi.NewHandler(eng, provider, nil)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Healthz(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestServer_GetTree(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodGet, "/api/v1/tree", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var defs []domain.TreeNode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &defs))
	assert.Len(t, defs, 5)
	assert.Equal(t, "root", defs[0].ID)
}

func TestServer_GetSnapshot(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodGet, "/api/v1/snapshot", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))

	// root = 0.4*30 + 0.6*90 = 66 -> amber
	root, ok := snap.Health()
	require.True(t, ok)
	assert.InDelta(t, 66.0, root.Score, 1e-9)
	assert.Equal(t, domain.StatusAmber, root.Status)
}

func TestServer_GetAlerts(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodGet, "/api/v1/alerts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var alerts []domain.AlertEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alerts))

	// supplier-otd (30) and suppliers (30) are red.
	require.Len(t, alerts, 2)
	assert.Equal(t, "supplier-otd", alerts[0].Node.ID)
	assert.Equal(t, "suppliers", alerts[1].Node.ID)
}

func TestServer_GetTrace(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodGet, "/api/v1/trace/root", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var path []domain.ScoredNode
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &path))

	ids := make([]string, len(path))
	for i, sn := range path {
		ids[i] = sn.ID
	}
	assert.Equal(t, []string{"root", "suppliers", "supplier-otd"}, ids)
}

func TestServer_GetTrace_UnknownNode(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodGet, "/api/v1/trace/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown node")
}

func TestServer_Simulate(t *testing.T) {
	body := `{"name":"port-strike","leaves":["freight-cost"],"severity":0.5}`
	rec := doRequest(t, newTestHandler(t), http.MethodPost, "/api/v1/simulate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))

	// freight-cost halves to 45; root = 0.4*30 + 0.6*45 = 39 -> red.
	assert.InDelta(t, 45.0, snap.Nodes["freight-cost"].Score, 1e-9)
	root, ok := snap.Health()
	require.True(t, ok)
	assert.InDelta(t, 39.0, root.Score, 1e-9)
	assert.Equal(t, domain.StatusRed, root.Status)
}

func TestServer_Simulate_InvalidScenario(t *testing.T) {
	rec := doRequest(t, newTestHandler(t), http.MethodPost, "/api/v1/simulate", `{"name":"x","leaves":[],"severity":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Simulate_LiveScoresUntouched(t *testing.T) {
	h := newTestHandler(t)

	body := `{"name":"port-strike","leaves":["freight-cost"],"severity":1}`
	rec := doRequest(t, h, http.MethodPost, "/api/v1/simulate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	// A subsequent live snapshot must be unaffected.
	rec = doRequest(t, h, http.MethodGet, "/api/v1/snapshot", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.InDelta(t, 90.0, snap.Nodes["freight-cost"].Score, 1e-9)
}
