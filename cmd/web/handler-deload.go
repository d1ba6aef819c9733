package main

import "net/http"

// deloadGET reports whether a deload week is due.
func (app *application) deloadGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.trainingService.ShouldDeload())
}

// deloadCompletePOST acknowledges a finished deload week and resets the
// deload clock.
func (app *application) deloadCompletePOST(w http.ResponseWriter, r *http.Request) {
	app.trainingService.MarkDeloadComplete(r.Context())
	app.writeJSON(w, r, http.StatusOK, app.trainingService.ShouldDeload())
}
