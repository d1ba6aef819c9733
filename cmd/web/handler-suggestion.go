package main

import "net/http"

// suggestionGET returns the next-session target for an exercise. An
// exercise without history has nothing to base a suggestion on and
// responds 404.
func (app *application) suggestionGET(w http.ResponseWriter, r *http.Request) {
	exercise, ok := app.parseExerciseParam(w, r)
	if !ok {
		return
	}

	suggestion := app.trainingService.SuggestNext(exercise)
	if suggestion == nil {
		http.NotFound(w, r)
		return
	}
	app.writeJSON(w, r, http.StatusOK, suggestion)
}
