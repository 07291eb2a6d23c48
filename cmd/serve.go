package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretfinder/chord"
	"github.com/jsphweid/fretfinder/constants"
	"github.com/jsphweid/fretfinder/db"
	"github.com/jsphweid/fretfinder/display"
	"github.com/jsphweid/fretfinder/fingering"
	"github.com/jsphweid/fretfinder/model"
	"github.com/jsphweid/fretfinder/spelling"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var cache db.Cache = db.NewMemoryCache()

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves fingerings over http",
	Long: `Serves fingerings over http.

  POST /fingering        {"notes": ["c3", "e4", "g4"], "capo": 0}
  GET  /spellings/{note}`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(LoadServeDeps())
		serve()
	},
}

// LoadServeDeps picks the result cache: DynamoDB when an endpoint is
// configured, memory otherwise.
func LoadServeDeps() error {
	endpoint := constants.GetDynamoEndpoint()
	if endpoint == "" {
		cache = db.NewMemoryCache()
		return nil
	}
	c, err := db.NewDynamoCache(endpoint, constants.GetDynamoRegion(), constants.GetDynamoTable())
	if err != nil {
		return err
	}
	slog.Info("serve: caching in dynamodb", "endpoint", endpoint, "table", constants.GetDynamoTable())
	cache = c
	return nil
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/fingering", HandleFingering).Methods("POST")
	router.HandleFunc("/spellings/{note}", HandleSpellings).Methods("GET")
	return cors.Default().Handler(withRequestId(router))
}

func serve() {
	addr := ":" + constants.GetPort()
	slog.Info("serve: listening", "addr", addr)
	if err := http.ListenAndServe(addr, NewRouter()); err != nil {
		slog.Error("serve: stopped", "err", err)
	}
}

const requestIdHeader = "X-Request-Id"

func withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIdHeader)
		if id == "" {
			id = uuid.New().String()
			r.Header.Set(requestIdHeader, id)
		}
		w.Header().Set(requestIdHeader, id)
		slog.Debug("serve: request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("serve: could not encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func fingeringCacheKey(c chord.Chord, req model.FingeringRequest, frets, maxEase int, policy fingering.FretPolicy) string {
	return fmt.Sprintf("%v|capo=%d|ease=%d|frets=%d|policy=%v|tuning=%v", c.Key(), req.Capo, maxEase, frets, policy, req.Tuning)
}

func HandleFingering(w http.ResponseWriter, r *http.Request) {
	var req model.FingeringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}
	if len(req.Notes) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("notes must not be empty"))
		return
	}

	c, err := chord.Parse(req.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	policy, err := fingering.ParseFretPolicy(req.FretPolicy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := fingering.ValidateCapo(req.Capo); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	frets := constants.GetMaxFret()
	if req.MaxFret != nil {
		frets = *req.MaxFret
	}
	maxEase := constants.GetMaxEase()
	if req.MaxEase != nil {
		maxEase = *req.MaxEase
	}
	in, err := buildInstrument(req.Tuning, frets)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id := r.Header.Get(requestIdHeader)
	key := fingeringCacheKey(c, req, frets, maxEase, policy)
	entry, cached, err := cache.Get(key)
	if err != nil {
		slog.Warn("serve: cache read failed", "id", id, "err", err)
		cached = false
	}
	if !cached {
		fs := fingering.Find(in, c, fingering.WithFretPolicy(policy))
		best, found := fingering.SelectBest(fs, req.Capo, maxEase)
		entry = db.Entry{Found: found, Fingering: best, Candidates: len(fs)}
		if err := cache.Put(key, entry); err != nil {
			slog.Warn("serve: cache write failed", "id", id, "err", err)
		}
	}

	res := model.FingeringResponse{
		RequestId:  id,
		Found:      entry.Found,
		Candidates: entry.Candidates,
		Cached:     cached,
		Diagram:    display.NotFound,
	}
	for _, p := range c.Pitches() {
		res.Chord = append(res.Chord, p.String())
	}
	if entry.Found {
		res.Fingering = entry.Fingering
		res.Ease, _ = fingering.Ease(entry.Fingering, req.Capo)
		res.Closed = fingering.ClosedCount(entry.Fingering, req.Capo)
		res.Diagram = display.Diagram(entry.Fingering)
	}
	slog.Info("serve: fingering", "id", id, "chord", c.String(), "capo", req.Capo, "found", res.Found, "cached", cached)
	writeJSON(w, http.StatusOK, res)
}

func HandleSpellings(w http.ResponseWriter, r *http.Request) {
	note := mux.Vars(r)["note"]
	p, err := spelling.ParsePitch(note)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.SpellingsResponse{Note: note, Pitch: p.String(), Spellings: []model.Spelling{}}
	for _, n := range spelling.Spellings(p) {
		res.Spellings = append(res.Spellings, model.Spelling{Name: n.String(), Lilypond: spelling.Lilypond(n)})
	}
	writeJSON(w, http.StatusOK, res)
}
