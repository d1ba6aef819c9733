package main

import (
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logRequest(secureHeaders(app.crossOriginProtection(app.timeout(next))))
		}
		// api handlers serve JSON and skip the session cookie machinery.
		api = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(shared(next)))
		}
		// session handlers render HTML pages with flash messages.
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(shared(next))))
		}
	)

	mux.Handle("POST /api/lifts", session(http.HandlerFunc(app.liftLogPOST)))
	mux.Handle("DELETE /api/lifts/{exercise}/{date}", api(http.HandlerFunc(app.liftEntryDELETE)))
	mux.Handle("GET /api/lifts/{exercise}", api(http.HandlerFunc(app.liftHistoryGET)))
	mux.Handle("GET /api/lifts/{exercise}/pr", api(http.HandlerFunc(app.personalRecordGET)))

	mux.Handle("GET /api/exercises/{exercise}/suggestion", api(http.HandlerFunc(app.suggestionGET)))

	mux.Handle("GET /api/volume", api(http.HandlerFunc(app.allVolumesGET)))
	mux.Handle("GET /api/volume/{group}", api(http.HandlerFunc(app.volumeGET)))

	mux.Handle("GET /api/deload", api(http.HandlerFunc(app.deloadGET)))
	mux.Handle("POST /api/deload/complete", api(http.HandlerFunc(app.deloadCompletePOST)))

	mux.Handle("GET /api/recovery", api(http.HandlerFunc(app.recoveryGET)))

	mux.Handle("GET /api/workouts/{date}/swaps", api(http.HandlerFunc(app.swapsGET)))
	mux.Handle("POST /api/workouts/{date}/swaps", api(http.HandlerFunc(app.swapPOST)))

	mux.Handle("GET /exercises/{exercise}/info", session(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	mux.Handle("/", api(http.HandlerFunc(app.notFound)))

	return mux, nil
}
