package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/db"
	"github.com/JustinWhittecar/bvcalc/internal/equipment"
	"github.com/JustinWhittecar/bvcalc/internal/ingestion"
	"github.com/JustinWhittecar/bvcalc/internal/models"
	"github.com/JustinWhittecar/bvcalc/internal/roster"
)

const maxBody = 1 << 20

// BVHandler serves battle value calculations. Store is optional.
type BVHandler struct {
	Catalog *equipment.Catalog
	Scorer  *roster.Scorer
	Store   db.ResultStore
	Log     zerolog.Logger
}

// errBadRequest marks request problems that are not calculator misuse.
var errBadRequest = errors.New("bad request")

func skills(r *http.Request) (int, int, error) {
	g, p := roster.DefaultGunnery, roster.DefaultPiloting
	q := r.URL.Query()
	if v := q.Get("gunnery"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid gunnery %q", errBadRequest, v)
		}
		g = n
	}
	if v := q.Get("piloting"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: invalid piloting %q", errBadRequest, v)
		}
		p = n
	}
	return g, p, nil
}

// Calculate scores a unit snapshot posted as JSON.
func (h *BVHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	u, err := ingestion.DecodeUnit(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	h.respond(w, r, u, nil, "api")
}

// CalculateMTF scores a Mek posted as MegaMek .mtf text.
func (h *BVHandler) CalculateMTF(w http.ResponseWriter, r *http.Request) {
	data, err := ingestion.ReadMTF(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	u, unknown, err := ingestion.ToUnit(data, h.Catalog)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	h.respond(w, r, u, unknown, "api/mtf")
}

func (h *BVHandler) respond(w http.ResponseWriter, r *http.Request, u *bv.Unit, unknown []string, source string) {
	g, p, err := skills(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := bv.Compute(u)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := db.NewRecord(res, g, p, source)
	if err != nil {
		writeError(w, err)
		return
	}
	if h.Store != nil {
		if err := h.Store.Save(r.Context(), &rec); err != nil {
			h.Log.Error().Err(err).Str("unit", res.Unit).Msg("save result")
			writeError(w, err)
			return
		}
	}
	h.Log.Info().Str("unit", res.Unit).Str("kind", string(res.Kind)).Int("bv", res.BV).
		Strs("unknown", unknown).Msg("computed unit")

	out := models.NewCalcResult(res, rec.AdjustedBV, g, p)
	out.ID = rec.ID
	out.Unknown = unknown
	writeJSON(w, http.StatusOK, out)
}

// ScoreRoster scores a roster whose entries embed their units.
func (h *BVHandler) ScoreRoster(w http.ResponseWriter, r *http.Request) {
	var ros roster.Roster
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&ros); err != nil {
		writeError(w, fmt.Errorf("%w: decode roster: %v", errBadRequest, err))
		return
	}
	for i, e := range ros.Entries {
		if e.File != "" {
			writeError(w, fmt.Errorf("%w: entry %d: unit files are not accepted over HTTP", errBadRequest, i))
			return
		}
	}
	sc, err := h.Scorer.Score(r.Context(), &ros)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// Results lists stored runs, optionally for one unit.
func (h *BVHandler) Results(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		http.Error(w, "result storage not configured", http.StatusServiceUnavailable)
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, fmt.Errorf("%w: invalid limit %q", errBadRequest, v))
			return
		}
		limit = min(n, 500)
	}
	recs, err := h.Store.List(r.Context(), r.URL.Query().Get("unit"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps caller misuse and malformed requests to 400; anything
// else is a server fault.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, bv.ErrCallerMisuse) || errors.Is(err, errBadRequest) {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}
