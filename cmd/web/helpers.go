package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/myrjola/liftlog/internal/errors"
	"github.com/myrjola/liftlog/internal/progression"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.render(w, r, http.StatusInternalServerError, "error", newBaseTemplateData())
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData())
}

// writeJSON encodes v into the response with the given status.
func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

// decodeJSON decodes the request body into v, rejecting unknown fields so
// client typos surface as errors instead of silently dropped data.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(err, "decode request body")
	}
	return nil
}

// badRequest responds with a JSON error message.
func (app *application) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	app.writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": message})
}

// parseDateKeyParam parses the "date" path parameter from the request URL.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseDateKeyParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	dateKey := r.PathValue("date")
	if _, err := progression.ParseDateKey(dateKey); err != nil {
		http.NotFound(w, r)
		return "", false
	}
	return dateKey, true
}

// parseExerciseParam reads the "exercise" path parameter. Go's mux decodes
// percent-escapes, so "Barbell%20Bench%20Press" arrives as the plain name.
func (app *application) parseExerciseParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	exercise := r.PathValue("exercise")
	if exercise == "" {
		http.NotFound(w, r)
		return "", false
	}
	return exercise, true
}

// validateSets checks the client-provided sets before they reach the
// ledger: reps must be at least one and weight cannot be negative.
func validateSets(sets []progression.Set) error {
	if len(sets) == 0 {
		return errors.New("at least one set is required")
	}
	for i, set := range sets {
		if set.Reps < 1 {
			return errors.New("reps must be at least 1", slog.Int("set", i+1))
		}
		if set.WeightKg < 0 {
			return errors.New("weight cannot be negative", slog.Int("set", i+1))
		}
	}
	return nil
}
