package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/utakatalp/nrr-simulator/internal/league"
)

// Handler serves the standings and simulations over JSON.
type Handler struct {
	table     league.Table
	winPoints int
	logger    *slog.Logger
}

// NewHandler builds a Handler over a read-only table.
func NewHandler(table league.Table, winPoints int, logger *slog.Logger) *Handler {
	return &Handler{table: table, winPoints: winPoints, logger: logger}
}

// Routes configures the HTTP routes.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(logging(h.logger))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.handleHealth).Methods("GET")
	api.HandleFunc("/table", h.handleTable).Methods("GET")
	api.HandleFunc("/teams/{name}", h.handleTeam).Methods("GET")
	api.HandleFunc("/simulate", h.handleSimulate).Methods("POST")

	return r
}

type tableRow struct {
	Position int `json:"position"`
	*league.Team
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleTable(w http.ResponseWriter, r *http.Request) {
	rows := make([]tableRow, 0, len(h.table))
	for i, t := range h.table {
		rows = append(rows, tableRow{Position: i + 1, Team: t})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleTeam(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	t, err := h.table.Find(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tableRow{Position: h.table.Position(name), Team: t})
}

// maxBodyBytes caps a simulate request body.
const maxBodyBytes = 1 << 16

func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req league.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	ev, err := league.Evaluate(h.table, req, h.winPoints)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, league.ErrUnreachableByPoints) {
			status = http.StatusUnprocessableEntity
			writeJSON(w, status, map[string]string{"error": err.Error(), "reason": "unreachable"})
			return
		}
		if errors.Is(err, league.ErrTeamNotFound) {
			status = http.StatusNotFound
		}
		h.logger.DebugContext(r.Context(), "simulation rejected", slog.String("error", err.Error()))
		writeError(w, status, err.Error())
		return
	}

	h.logger.DebugContext(r.Context(), "simulation",
		slog.String("team", req.Team),
		slog.Int("desired", req.DesiredPosition),
		slog.Bool("batting_first", req.BattingFirst),
		slog.Bool("feasible", ev.Feasible),
	)
	writeJSON(w, http.StatusOK, ev)
}

// writeJSON marshals v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
