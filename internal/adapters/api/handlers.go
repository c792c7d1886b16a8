package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/gofrs/uuid/v5"

	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/engine"
)

type errorResp struct {
	Error string `json:"error"`
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorResp{Error: err.Error()})
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
	Limit int         `json:"limit,omitempty"`
}

type solveResp struct {
	Board      [9][9]uint8  `json:"board"`
	DurationMs int64        `json:"durationMs"`
	Nodes      int          `json:"nodes"`
	Stats      engine.Stats `json:"stats"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	out, st, err := s.uc.Solve(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, engine.ErrNoSolution) {
			status = http.StatusUnprocessableEntity
		}
		render.Status(r, status)
		render.JSON(w, r, errorResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, solveResp{
		Board:      out.Values,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
		Stats:      st.Deduce,
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	ok, conflicts, err := s.uc.Validate(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board   [9][9]uint8 `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	h, found, err := s.uc.Hint(r.Context(), &domain.Board{Values: req.Board}, domain.ParseStrategyTier(req.MaxTier))
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, hintResp{Found: found, Hint: h})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board"`
	Seed       int64        `json:"seed"`
	Difficulty string       `json:"difficulty"`
	DurationMs int64        `json:"durationMs"`
	Nodes      int          `json:"nodes"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := s.uc.Generate(r.Context(), seed, domain.ParseDifficulty(req.Difficulty))
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, generateResp{
		Board:      p.Board,
		Seed:       seed,
		Difficulty: p.Difficulty.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID string `json:"id"`
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := render.DecodeJSON(r.Body, &p); err != nil {
		badRequest(w, r, err)
		return
	}
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV4()).String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := s.uc.Save(r.Context(), &p); err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, saveResp{ID: p.ID})
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.uc.Load(r.Context(), id)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ps, err := s.uc.List(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResp{Error: err.Error()})
		return
	}
	render.JSON(w, r, listResp{Puzzles: ps})
}
