package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds"
	"github.com/ddsbridge/dds-go/pkg/dds/logging"
)

// Solver is the part of *dds.Solver the API needs.
type Solver interface {
	PossibleTricks(ctx context.Context, deal bridge.Deal) (dds.TableResults, error)
	Solve(ctx context.Context, state dds.GameState, mode dds.Mode) ([]dds.CardPotential, error)
}

// maxBody bounds request bodies; a full request is well under 1 KiB.
const maxBody = 16 << 10

// NewRouter returns the API handler. timeout bounds each request,
// including time spent waiting for an engine slot; zero disables it.
func NewRouter(s Solver, log logging.Logger, timeout time.Duration) http.Handler {
	if log == nil {
		log = logging.Nop()
	}
	h := &handlers{solver: s, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/tables", h.tables)
		r.Post("/solve", h.solve)
	})
	return r
}

type handlers struct {
	solver Solver
	log    logging.Logger
}

type tablesRequest struct {
	Deal bridge.Deal `json:"deal"`
}

type tablesResponse struct {
	Deal   bridge.Deal               `json:"deal"`
	Tricks map[string]map[string]int `json:"tricks"`
}

func (h *handlers) tables(w http.ResponseWriter, r *http.Request) {
	var req tablesRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	table, err := h.solver.PossibleTricks(r.Context(), req.Deal)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	tricks := make(map[string]map[string]int, bridge.NumSeats)
	for _, seat := range bridge.Seats() {
		row := make(map[string]int, bridge.NumStrains)
		for _, strain := range bridge.Strains() {
			row[strainKey(strain)] = table.Tricks(seat, strain)
		}
		tricks[string(seat.Letter())] = row
	}
	writeJSON(w, http.StatusOK, tablesResponse{Deal: req.Deal, Tricks: tricks})
}

type solveRequest struct {
	Deal   bridge.Deal `json:"deal"`
	Trump  string      `json:"trump"`
	Leader string      `json:"leader"`
	Played []string    `json:"played"`
	All    bool        `json:"all"`
}

type cardJSON struct {
	Card    string `json:"card"`
	Tricks  int    `json:"tricks"`
	Primary bool   `json:"primary"`
}

type solveResponse struct {
	Cards []cardJSON `json:"cards"`
}

func (h *handlers) solve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	state, err := req.state()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mode := dds.ModeBestCards
	if req.All {
		mode = dds.ModeAllCards
	}

	cards, err := h.solver.Solve(r.Context(), state, mode)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp := solveResponse{Cards: make([]cardJSON, 0, len(cards))}
	for _, c := range cards {
		resp.Cards = append(resp.Cards, cardJSON{Card: c.Card.String(), Tricks: c.Tricks, Primary: c.Primary})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (req solveRequest) state() (dds.GameState, error) {
	trump, err := bridge.ParseSuit(req.Trump)
	if err != nil {
		return dds.GameState{}, err
	}
	leader, err := bridge.ParseSeat(req.Leader)
	if err != nil {
		return dds.GameState{}, err
	}
	played := make([]bridge.Card, 0, len(req.Played))
	for _, s := range req.Played {
		c, err := bridge.ParseCard(s)
		if err != nil {
			return dds.GameState{}, err
		}
		played = append(played, c)
	}
	return dds.GameState{Remaining: req.Deal, Trump: trump, Leader: leader, Played: played}, nil
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error(r.Context(), "request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	}
	writeError(w, status, err)
}

func statusFor(err error) int {
	var engErr *dds.EngineError
	switch {
	case errors.Is(err, bridge.ErrFormat), errors.Is(err, dds.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, dds.ErrResourceExhausted), errors.Is(err, dds.ErrClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &engErr) && engErr.InputFault():
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func strainKey(s bridge.Suit) string {
	if s == bridge.NoTrump {
		return "NT"
	}
	return string(s.Letter())
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBody))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
