package main

import "net/http"

// recoveryGET returns the body areas ranked by accumulated training
// fatigue, most fatigued first.
func (app *application) recoveryGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.trainingService.PrioritizedAreas())
}
