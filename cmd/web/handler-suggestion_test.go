package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/myrjola/liftlog/internal/e2etest"
	"github.com/myrjola/liftlog/internal/progression"
	"github.com/myrjola/liftlog/internal/testhelpers"
)

func Test_application_suggestion(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	t.Run("no history yields 404", func(t *testing.T) {
		resp, getErr := client.Get(ctx, "/api/exercises/Barbell%20Row/suggestion")
		if getErr != nil {
			t.Fatalf("Failed to get suggestion: %v", getErr)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status code = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})

	t.Run("hitting the rep ceiling suggests more weight", func(t *testing.T) {
		resp, postErr := client.PostJSON(ctx, "/api/lifts", map[string]any{
			"exerciseName": "Barbell Row",
			"dateKey":      time.Now().AddDate(0, 0, -2).Format(time.DateOnly),
			"sets": []map[string]any{
				{"weight": 80, "reps": 12},
				{"weight": 80, "reps": 12},
				{"weight": 80, "reps": 12},
			},
		})
		if postErr != nil {
			t.Fatalf("Failed to post lift: %v", postErr)
		}
		resp.Body.Close()

		var suggestion progression.Suggestion
		if getErr := client.GetJSON(ctx, "/api/exercises/Barbell%20Row/suggestion", &suggestion); getErr != nil {
			t.Fatalf("Failed to get suggestion: %v", getErr)
		}
		if suggestion.WeightKg != 85 || suggestion.Reps != 6 {
			t.Errorf("suggestion = %v kg x %d reps, want 85 kg x 6 reps", suggestion.WeightKg, suggestion.Reps)
		}
		if suggestion.Message == "" {
			t.Error("expected a non-empty message")
		}
	})
}
