package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacima/plantlayout/pkg/advisor"
	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/pipeline"
	"github.com/lacima/plantlayout/pkg/slp"
	"github.com/lacima/plantlayout/pkg/study"
)

type fakeGenerator struct {
	text string
	err  error
}

func (g fakeGenerator) Generate(context.Context, string) (string, error) { return g.text, g.err }
func (g fakeGenerator) Model() string                                   { return "fake" }

func newTestServer(t *testing.T, s *study.Study, gen advisor.Generator) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	if gen != nil {
		runner.Advisor = advisor.New(gen, advisor.Options{})
	}
	return New(Options{Study: s, Runner: runner, Logger: logger})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, study.Seed(), nil), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestIndex(t *testing.T) {
	rec := do(t, newTestServer(t, study.Seed(), nil), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Lacima plant layout improvement")
	assert.Contains(t, body, "/api/charts/area.svg")
	assert.Contains(t, body, "/api/charts/plan.svg")
	assert.Contains(t, body, "Thermal Processing / Pasteurization")
	assert.Contains(t, body, "21000")
	assert.Contains(t, body, "HACCP")
	assert.Contains(t, body, `disabled title="No API key configured"`)
}

func TestIndex_InvalidRatingShown(t *testing.T) {
	s := study.Seed()
	s.Adjacencies[0].Rating = "Z"
	rec := do(t, newTestServer(t, s, nil), http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid rating")
}

func TestStudyAndAnalysis(t *testing.T) {
	srv := newTestServer(t, study.Seed(), nil)

	rec := do(t, srv, http.MethodGet, "/api/study", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[study.Study](t, rec)
	assert.Len(t, got.Departments, 9)
	assert.Len(t, got.Adjacencies, 16)

	rec = do(t, srv, http.MethodGet, "/api/analysis", "")
	require.Equal(t, http.StatusOK, rec.Code)
	a := decode[study.Analysis](t, rec)
	assert.InDelta(t, 825, a.TotalCurrent, 1e-9)
	assert.InDelta(t, 796, a.TotalNeeded, 1e-9)
	require.NotNil(t, a.LargestGrowth)
	assert.Equal(t, "D5", a.LargestGrowth.Department.Code)
}

func TestPlacement(t *testing.T) {
	rec := do(t, newTestServer(t, study.Seed(), nil), http.MethodGet, "/api/placement", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[placementResponse](t, rec)
	require.Len(t, got.Placements, 9)
	codes := make([]string, len(got.Placements))
	for i, p := range got.Placements {
		codes[i] = p.Department.Code
	}
	assert.Equal(t, []string{"D3", "D8", "D4", "D5", "D7", "D1", "D2", "D6", "D9"}, codes)
	assert.Equal(t, 1, got.Placements[0].Position)
	assert.Equal(t, 21000, got.Placements[0].TCR)
}

func TestRankDataset(t *testing.T) {
	srv := newTestServer(t, study.Seed(), nil)
	body := `{
		"departments": [{"id":"P","code":"P"},{"id":"Q","code":"Q"},{"id":"R","code":"R"}],
		"adjacencies": [
			{"fromId":"P","toId":"Q","rating":"U"},
			{"fromId":"Q","toId":"R","rating":"A"},
			{"fromId":"R","toId":"Q","rating":"E"},
			{"fromId":"R","toId":"P","rating":"X"}
		]
	}`

	rec := do(t, srv, http.MethodPost, "/api/placement", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[placementResponse](t, rec)
	require.Len(t, got.Placements, 3)
	assert.Equal(t, "Q", got.Placements[0].Department.ID)
	assert.Equal(t, 11000, got.Placements[0].TCR)
	assert.Equal(t, "R", got.Placements[1].Department.ID)
	assert.Equal(t, 1000, got.Placements[1].TCR)
	assert.Equal(t, "P", got.Placements[2].Department.ID)
	assert.Equal(t, -10000, got.Placements[2].TCR)
}

func TestRankDataset_Empty(t *testing.T) {
	rec := do(t, newTestServer(t, study.Seed(), nil), http.MethodPost, "/api/placement", `{"departments":[],"adjacencies":[]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"placements":[]}`, rec.Body.String())
}

func TestRankDataset_InvalidRating(t *testing.T) {
	body := `{"departments":[{"id":"P"},{"id":"Q"}],"adjacencies":[{"fromId":"P","toId":"Q","rating":"A"},{"fromId":"Q","toId":"P","rating":"Z"}]}`
	rec := do(t, newTestServer(t, study.Seed(), nil), http.MethodPost, "/api/placement", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	got := decode[errorBody](t, rec)
	assert.Equal(t, "INVALID_RATING", got.Code)
	require.NotNil(t, got.Index)
	assert.Equal(t, 1, *got.Index)
	assert.Equal(t, "Q", got.FromID)
	assert.Equal(t, "P", got.ToID)
	assert.Contains(t, got.Message, `"Z"`)
}

func TestRankDataset_BadJSON(t *testing.T) {
	srv := newTestServer(t, study.Seed(), nil)

	for _, body := range []string{`{`, `{"departments": 3}`, `{"unknown": true}`} {
		rec := do(t, srv, http.MethodPost, "/api/placement", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Equal(t, "INVALID_INPUT", decode[errorBody](t, rec).Code)
	}
}

func TestCharts(t *testing.T) {
	srv := newTestServer(t, study.Seed(), nil)

	for _, kind := range []string{"area", "plan", "adjacency"} {
		t.Run(kind, func(t *testing.T) {
			rec := do(t, srv, http.MethodGet, fmt.Sprintf("/api/charts/%s.svg", kind), "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "<svg")
		})
	}
}

func TestCharts_Errors(t *testing.T) {
	noPlan := study.Seed()
	noPlan.Plan = nil
	srv := newTestServer(t, noPlan, nil)

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/charts/pie.svg", http.StatusBadRequest, "INVALID_CHART"},
		{"/api/charts/area.gif", http.StatusBadRequest, "INVALID_FORMAT"},
		{"/api/charts/plan.svg", http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tt := range tests {
		rec := do(t, srv, http.MethodGet, tt.path, "")
		assert.Equal(t, tt.status, rec.Code, tt.path)
		assert.Equal(t, tt.code, decode[errorBody](t, rec).Code, tt.path)
	}
}

func TestRecommendation(t *testing.T) {
	srv := newTestServer(t, study.Seed(), fakeGenerator{text: "Place D3 first."})

	rec := do(t, srv, http.MethodPost, "/api/recommendation", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[advisor.Recommendation](t, rec)
	assert.Equal(t, "Place D3 first.", got.Text)
	assert.Equal(t, "fake", got.Model)
	assert.NotEmpty(t, got.ID.String())
}

func TestRecommendation_Failures(t *testing.T) {
	tests := []struct {
		name   string
		gen    advisor.Generator
		status int
		code   string
	}{
		{"service error", fakeGenerator{err: fmt.Errorf("503 from upstream")}, http.StatusBadGateway, "ADVISOR_FAILED"},
		{"no advisor", nil, http.StatusServiceUnavailable, "ADVISOR_UNAVAILABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t, study.Seed(), tt.gen), http.MethodPost, "/api/recommendation", "")

			assert.Equal(t, tt.status, rec.Code)
			got := decode[errorBody](t, rec)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, advisor.FallbackMessage(advisor.DefaultLanguage), got.Fallback)
		})
	}
}

func TestRecommendation_InvalidStudy(t *testing.T) {
	s := study.Seed()
	s.Adjacencies[5].Rating = slp.Rating("?")
	rec := do(t, newTestServer(t, s, fakeGenerator{text: "unused"}), http.MethodPost, "/api/recommendation", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, decode[errorBody](t, rec).Fallback)
}

func TestNotFoundAndMethod(t *testing.T) {
	srv := newTestServer(t, study.Seed(), nil)

	rec := do(t, srv, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode[errorBody](t, rec).Code)

	rec = do(t, srv, http.MethodDelete, "/api/study", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := map[errors.Code]int{
		"INVALID_RATING":      422,
		"INVALID_STUDY":       400,
		"INVALID_INPUT":       400,
		"NOT_FOUND":           404,
		"FILE_NOT_FOUND":      404,
		"ADVISOR_FAILED":      502,
		"ADVISOR_UNAVAILABLE": 503,
		"UNSUPPORTED":         501,
		"INTERNAL_ERROR":      500,
		"":                    500,
	}
	for code, want := range tests {
		assert.Equal(t, want, statusFor(code), string(code))
	}
}
