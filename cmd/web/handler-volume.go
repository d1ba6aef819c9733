package main

import (
	"net/http"
	"strconv"

	"github.com/myrjola/liftlog/internal/progression"
)

// parseWindowDays reads the optional windowDays query parameter, defaulting
// to a trailing week.
func parseWindowDays(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("windowDays")
	if raw == "" {
		return progression.DefaultWindowDays, true
	}
	windowDays, err := strconv.Atoi(raw)
	if err != nil || windowDays < 1 {
		return 0, false
	}
	return windowDays, true
}

// allVolumesGET returns the weekly volume for every configured muscle group.
func (app *application) allVolumesGET(w http.ResponseWriter, r *http.Request) {
	windowDays, ok := parseWindowDays(r)
	if !ok {
		app.badRequest(w, r, "windowDays must be a positive integer")
		return
	}

	app.writeJSON(w, r, http.StatusOK, app.trainingService.AllWeeklyVolumes(windowDays))
}

// volumeGET returns the weekly volume for a single muscle group.
func (app *application) volumeGET(w http.ResponseWriter, r *http.Request) {
	group := r.PathValue("group")
	if group == "" {
		http.NotFound(w, r)
		return
	}
	windowDays, ok := parseWindowDays(r)
	if !ok {
		app.badRequest(w, r, "windowDays must be a positive integer")
		return
	}

	app.writeJSON(w, r, http.StatusOK, app.trainingService.WeeklyVolume(group, windowDays))
}
