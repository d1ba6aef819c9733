package main

import "net/http"

// swapRequest records a one-day exercise substitution.
type swapRequest struct {
	Original   string `json:"original"`
	Substitute string `json:"substitute"`
}

// swapsGET returns the substitutions recorded for a day.
func (app *application) swapsGET(w http.ResponseWriter, r *http.Request) {
	dateKey, ok := app.parseDateKeyParam(w, r)
	if !ok {
		return
	}

	app.writeJSON(w, r, http.StatusOK, app.trainingService.ExerciseSwaps(dateKey))
}

// swapPOST records that one exercise replaces another for the given day.
func (app *application) swapPOST(w http.ResponseWriter, r *http.Request) {
	dateKey, ok := app.parseDateKeyParam(w, r)
	if !ok {
		return
	}

	var req swapRequest
	if err := decodeJSON(r, &req); err != nil {
		app.badRequest(w, r, "malformed request body")
		return
	}
	if req.Original == "" || req.Substitute == "" {
		app.badRequest(w, r, "original and substitute are required")
		return
	}

	if err := app.trainingService.SaveExerciseSwap(r.Context(), dateKey, req.Original, req.Substitute); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
