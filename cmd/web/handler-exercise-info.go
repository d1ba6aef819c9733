package main

import "net/http"

// exerciseInfoTemplateData contains data for the exercise info template.
type exerciseInfoTemplateData struct {
	BaseTemplateData
	ExerciseName string
	// InfoMarkdown is rendered to HTML with the mdToHTML template function.
	InfoMarkdown string
}

// exerciseInfoGET renders a coaching write-up for an exercise.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exercise, ok := app.parseExerciseParam(w, r)
	if !ok {
		return
	}

	data := exerciseInfoTemplateData{
		BaseTemplateData: newBaseTemplateData(),
		ExerciseName:     exercise,
		InfoMarkdown:     app.infoGenerator.Describe(r.Context(), exercise),
	}

	app.render(w, r, http.StatusOK, "exercise-info", data)
}
