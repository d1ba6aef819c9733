package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/myrjola/liftlog/internal/e2etest"
	"github.com/myrjola/liftlog/internal/progression"
	"github.com/myrjola/liftlog/internal/testhelpers"
)

func Test_application_volume(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	resp, err := client.PostJSON(ctx, "/api/lifts", map[string]any{
		"exerciseName": "Barbell Bench Press",
		"dateKey":      time.Now().Format(time.DateOnly),
		"sets": []map[string]any{
			{"weight": 100, "reps": 8},
			{"weight": 100, "reps": 8},
			{"weight": 100, "reps": 8},
		},
	})
	if err != nil {
		t.Fatalf("Failed to post lift: %v", err)
	}
	resp.Body.Close()

	t.Run("single group", func(t *testing.T) {
		var volume progression.MuscleGroupVolume
		if getErr := client.GetJSON(ctx, "/api/volume/chest", &volume); getErr != nil {
			t.Fatalf("Failed to get volume: %v", getErr)
		}
		if volume.Sets != 3 || volume.Volume != 2400 {
			t.Errorf("chest volume = %+v, want 3 sets and 2400 kg", volume)
		}
	})

	t.Run("all groups include pressing muscles and untouched groups", func(t *testing.T) {
		var volumes map[string]progression.MuscleGroupVolume
		if getErr := client.GetJSON(ctx, "/api/volume", &volumes); getErr != nil {
			t.Fatalf("Failed to get volumes: %v", getErr)
		}
		if volumes["chest"].Sets != 3 || volumes["triceps"].Sets != 3 {
			t.Errorf("pressing groups = chest %d, triceps %d sets, want 3 each",
				volumes["chest"].Sets, volumes["triceps"].Sets)
		}
		if hamstrings, ok := volumes["hamstrings"]; !ok || hamstrings.Sets != 0 {
			t.Errorf("hamstrings = %+v, want present with zero sets", hamstrings)
		}
	})

	t.Run("narrow window excludes older entries", func(t *testing.T) {
		oldResp, postErr := client.PostJSON(ctx, "/api/lifts", map[string]any{
			"exerciseName": "Dumbbell Fly",
			"dateKey":      time.Now().AddDate(0, 0, -5).Format(time.DateOnly),
			"sets":         []map[string]any{{"weight": 20, "reps": 12}},
		})
		if postErr != nil {
			t.Fatalf("Failed to post lift: %v", postErr)
		}
		oldResp.Body.Close()

		var volume progression.MuscleGroupVolume
		if getErr := client.GetJSON(ctx, "/api/volume/chest?windowDays=2", &volume); getErr != nil {
			t.Fatalf("Failed to get volume: %v", getErr)
		}
		if volume.Sets != 3 {
			t.Errorf("chest sets in 2-day window = %d, want 3 with the older fly session excluded", volume.Sets)
		}
	})

	t.Run("invalid window is rejected", func(t *testing.T) {
		badResp, getErr := client.Get(ctx, "/api/volume?windowDays=potato")
		if getErr != nil {
			t.Fatalf("Failed to get volumes: %v", getErr)
		}
		badResp.Body.Close()
		if badResp.StatusCode != http.StatusBadRequest {
			t.Errorf("status code = %d, want %d", badResp.StatusCode, http.StatusBadRequest)
		}
	})
}
