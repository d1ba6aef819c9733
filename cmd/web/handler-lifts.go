package main

import (
	"fmt"
	"net/http"

	"github.com/myrjola/liftlog/internal/progression"
)

// liftLogRequest is the payload for logging a training session.
type liftLogRequest struct {
	ExerciseName string            `json:"exerciseName"`
	Sets         []progression.Set `json:"sets"`
	// DateKey is the YYYY-MM-DD day of the session. Empty means today.
	DateKey string `json:"dateKey"`
}

// liftLogPOST records the sets for an exercise and responds with the
// personal-record outcome. A record also leaves a flash message in the
// session so the dashboard can celebrate it on the next page load.
func (app *application) liftLogPOST(w http.ResponseWriter, r *http.Request) {
	var req liftLogRequest
	if err := decodeJSON(r, &req); err != nil {
		app.badRequest(w, r, "malformed request body")
		return
	}
	if req.ExerciseName == "" {
		app.badRequest(w, r, "exerciseName is required")
		return
	}
	if err := validateSets(req.Sets); err != nil {
		app.badRequest(w, r, err.Error())
		return
	}

	result, err := app.trainingService.LogLift(r.Context(), req.ExerciseName, req.Sets, req.DateKey)
	if err != nil {
		app.badRequest(w, r, err.Error())
		return
	}

	if result.IsPR {
		flash := fmt.Sprintf("New personal record on %s: estimated 1RM %s kg!",
			req.ExerciseName, formatFloat(result.Estimated1RM))
		if result.PreviousBest != nil {
			flash = fmt.Sprintf("%s Previous best was %s kg.",
				flash, formatFloat(result.PreviousBest.Estimated1RM))
		}
		app.sessionManager.Put(r.Context(), "flash", flash)
	}

	app.writeJSON(w, r, http.StatusOK, result)
}

// liftEntryDELETE removes the logged entry for an exercise on a day.
func (app *application) liftEntryDELETE(w http.ResponseWriter, r *http.Request) {
	exercise, ok := app.parseExerciseParam(w, r)
	if !ok {
		return
	}
	dateKey, ok := app.parseDateKeyParam(w, r)
	if !ok {
		return
	}

	if err := app.trainingService.RemoveLiftEntry(r.Context(), exercise, dateKey); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// liftHistoryGET returns the ledger for an exercise, oldest entry first.
func (app *application) liftHistoryGET(w http.ResponseWriter, r *http.Request) {
	exercise, ok := app.parseExerciseParam(w, r)
	if !ok {
		return
	}

	history := app.trainingService.LiftHistory(exercise)
	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"exerciseName": exercise,
		"entries":      history,
	})
}

// personalRecordGET returns the stored record for an exercise.
func (app *application) personalRecordGET(w http.ResponseWriter, r *http.Request) {
	exercise, ok := app.parseExerciseParam(w, r)
	if !ok {
		return
	}

	record := app.trainingService.GetPR(exercise)
	if record == nil {
		http.NotFound(w, r)
		return
	}
	app.writeJSON(w, r, http.StatusOK, record)
}
