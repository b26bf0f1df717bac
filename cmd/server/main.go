// Command server exposes the Turkish morphology engine as a JSON REST API.
//
// Endpoints:
//
//	GET /api/conjugate?lemma=<infinitive>[&compound=true]
//	GET /api/conjugate/form?lemma=<infinitive>&tense=<id>&person=<pronoun>&polarity=<id>
//	GET /api/deinflect?word=<surface form>
//	GET /api/lookup?q=<query>
//	GET /api/glosses
//	GET /api/healthz
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/turkce-kelime/cekim"
	"github.com/turkce-kelime/cekim/internal/dictstore"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(log *zap.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response", zap.Error(err))
	}
}

func writeError(log *zap.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(log, w, status, errorResponse{Error: msg})
}

func handleConjugate(eng *cekim.Engine, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(log, w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		compound, _ := strconv.ParseBool(r.URL.Query().Get("compound"))
		writeJSON(log, w, http.StatusOK, eng.ConjugateVerb(lemma, compound))
	}
}

func handleConjugateForm(eng *cekim.Engine, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		lemma := q.Get("lemma")
		if lemma == "" {
			writeError(log, w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		tense, ok := cekim.ParseTense(q.Get("tense"))
		if !ok {
			writeError(log, w, http.StatusBadRequest, fmt.Sprintf("unknown tense %q", q.Get("tense")))
			return
		}
		person, ok := cekim.ParsePerson(q.Get("person"))
		if !ok {
			writeError(log, w, http.StatusBadRequest, fmt.Sprintf("unknown person %q", q.Get("person")))
			return
		}
		polarity := cekim.PolarityPositive
		if p := q.Get("polarity"); p != "" {
			polarity, ok = cekim.ParsePolarity(p)
			if !ok {
				writeError(log, w, http.StatusBadRequest, fmt.Sprintf("unknown polarity %q", p))
				return
			}
		}
		form := eng.Conjugate(lemma, tense, person, polarity)
		writeJSON(log, w, http.StatusOK, map[string]string{"form": form})
	}
}

func handleDeinflect(eng *cekim.Engine, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(log, w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		writeJSON(log, w, http.StatusOK, map[string]any{
			"word":    word,
			"results": eng.Deinflect(word),
		})
	}
}

func handleLookup(lookup *cekim.Lookup, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(log, w, http.StatusBadRequest, "missing 'q' query parameter")
			return
		}
		res, err := lookup.Find(r.Context(), q)
		if err != nil {
			log.Error("lookup failed", zap.String("query", q), zap.Error(err))
			writeError(log, w, http.StatusInternalServerError, "dictionary lookup failed")
			return
		}
		status := http.StatusOK
		if res.Entry == nil {
			status = http.StatusNotFound
		}
		writeJSON(log, w, status, res)
	}
}

func handleGlosses(eng *cekim.Engine, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(log, w, http.StatusOK, eng.Glosses())
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "dict.db", "path to the dictionary SQLite database")
	glossPath := flag.String("glosses", "", "optional YAML file with gloss label overrides")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	eng := cekim.New()
	if *glossPath != "" {
		if err := eng.LoadGlossFile(*glossPath); err != nil {
			log.Fatal("load glosses", zap.String("path", *glossPath), zap.Error(err))
		}
		log.Info("gloss overrides loaded", zap.String("path", *glossPath))
	}

	store, err := dictstore.Open(*dbPath)
	if err != nil {
		log.Fatal("open dictionary", zap.String("path", *dbPath), zap.Error(err))
	}
	defer store.Close()
	if n, err := store.Count(context.Background()); err == nil {
		log.Info("dictionary opened", zap.String("path", *dbPath), zap.Int64("entries", n))
	}

	lookup := cekim.NewLookup(store, eng, log.Named("lookup"))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Default().Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/conjugate", handleConjugate(eng, log))
		r.Get("/conjugate/form", handleConjugateForm(eng, log))
		r.Get("/deinflect", handleDeinflect(eng, log))
		r.Get("/lookup", handleLookup(lookup, log))
		r.Get("/glosses", handleGlosses(eng, log))
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(log, w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("listening", zap.String("addr", *addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("stopped")
}
