package server

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lacima/plantlayout/pkg/advisor"
	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/pipeline"
	"github.com/lacima/plantlayout/pkg/slp"
	"github.com/lacima/plantlayout/pkg/study"
)

// maxBodyBytes bounds posted datasets.
const maxBodyBytes = 1 << 20

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"area":  func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"delta": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
}).ParseFS(templateFS, "templates/index.html"))

type indexData struct {
	Study     *study.Study
	Analysis  study.Analysis
	Ranking   []slp.Placement
	RankError string
	HasPlan   bool
	Advisor   bool
	Fallback  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Study:    s.study,
		Analysis: s.runner.Analyze(s.study),
		HasPlan:  s.study.Plan != nil,
		Advisor:  s.runner.Advisor != nil,
		Fallback: advisor.FallbackMessage(s.language()),
	}
	ranking, err := s.runner.Rank(r.Context(), s.study)
	if err != nil {
		data.RankError = errors.UserMessage(err)
	}
	data.Ranking = ranking

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStudy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.study)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.runner.Analyze(s.study))
}

type placementResponse struct {
	Placements []slp.Placement `json:"placements"`
}

func (s *Server) handlePlacement(w http.ResponseWriter, r *http.Request) {
	ranking, err := s.runner.Rank(r.Context(), s.study)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placementResponse{Placements: ranking})
}

// dataset is the body of POST /api/placement.
type dataset struct {
	Departments []slp.Department     `json:"departments"`
	Adjacencies []slp.AdjacencyScore `json:"adjacencies"`
}

func (s *Server) handleRankDataset(w http.ResponseWriter, r *http.Request) {
	var ds dataset
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode dataset"))
		return
	}

	ranking, err := s.runner.Rank(r.Context(), &study.Study{Departments: ds.Departments, Adjacencies: ds.Adjacencies})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placementResponse{Placements: ranking})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{
		Chart:           chi.URLParam(r, "kind"),
		Format:          chi.URLParam(r, "format"),
		ShowUnimportant: r.URL.Query().Get("unimportant") == "1",
		Legend:          r.URL.Query().Get("legend") == "1",
	}
	if opts.Chart == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidChart, "chart name cannot be empty"))
		return
	}
	if v := r.URL.Query().Get("width"); v != "" {
		opts.Width, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("height"); v != "" {
		opts.Height, _ = strconv.Atoi(v)
	}

	data, err := s.runner.Render(r.Context(), s.study, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", opts.ContentType())
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	fallback := advisor.FallbackMessage(s.language())

	ctx := r.Context()
	if s.advisorTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.advisorTimeout)
		defer cancel()
	}

	refresh := r.URL.Query().Get("refresh") == "1"
	rec, err := s.runner.Recommend(ctx, s.study, refresh)
	if err != nil {
		code := errors.GetCode(err)
		if code == errors.ErrCodeAdvisorFailed || code == errors.ErrCodeAdvisorUnavailable {
			writeJSON(w, statusFor(code), errorBody{Code: string(code), Message: errors.UserMessage(err), Fallback: fallback})
			return
		}
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) language() string {
	if s.runner.Advisor == nil {
		return advisor.DefaultLanguage
	}
	return s.runner.Advisor.Language()
}
