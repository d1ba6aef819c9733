package main

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/myrjola/liftlog/internal/e2etest"
	"github.com/myrjola/liftlog/internal/progression"
	"github.com/myrjola/liftlog/internal/testhelpers"
)

func Test_application_swaps(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	today := time.Now().Format(time.DateOnly)
	swapsPath := fmt.Sprintf("/api/workouts/%s/swaps", today)

	t.Run("no swaps recorded", func(t *testing.T) {
		var swaps map[string]string
		if getErr := client.GetJSON(ctx, swapsPath, &swaps); getErr != nil {
			t.Fatalf("Failed to get swaps: %v", getErr)
		}
		if len(swaps) != 0 {
			t.Errorf("swaps = %v, want none", swaps)
		}
	})

	t.Run("recording and reading a swap", func(t *testing.T) {
		resp, postErr := client.PostJSON(ctx, swapsPath, map[string]any{
			"original":   "Back Squat",
			"substitute": "Leg Press",
		})
		if postErr != nil {
			t.Fatalf("Failed to post swap: %v", postErr)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("unexpected status code: %d", resp.StatusCode)
		}

		var swaps map[string]string
		if getErr := client.GetJSON(ctx, swapsPath, &swaps); getErr != nil {
			t.Fatalf("Failed to get swaps: %v", getErr)
		}
		if swaps["Back Squat"] != "Leg Press" {
			t.Errorf("swaps = %v, want Back Squat replaced by Leg Press", swaps)
		}
	})

	t.Run("swap is scoped to its day", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
		var swaps map[string]string
		if getErr := client.GetJSON(ctx, fmt.Sprintf("/api/workouts/%s/swaps", yesterday), &swaps); getErr != nil {
			t.Fatalf("Failed to get swaps: %v", getErr)
		}
		if len(swaps) != 0 {
			t.Errorf("swaps for yesterday = %v, want none", swaps)
		}
	})

	t.Run("swapped-day volume counts toward the substitute", func(t *testing.T) {
		// Re-point the swap at a quads-only isolation lift so the squat
		// entry stops crediting glutes.
		swapResp, postErr := client.PostJSON(ctx, swapsPath, map[string]any{
			"original":   "Back Squat",
			"substitute": "Leg Extension",
		})
		if postErr != nil {
			t.Fatalf("Failed to post swap: %v", postErr)
		}
		swapResp.Body.Close()

		resp, postErr := client.PostJSON(ctx, "/api/lifts", map[string]any{
			"exerciseName": "Back Squat",
			"dateKey":      today,
			"sets":         []map[string]any{{"weight": 120, "reps": 5}, {"weight": 120, "reps": 5}},
		})
		if postErr != nil {
			t.Fatalf("Failed to post lift: %v", postErr)
		}
		resp.Body.Close()

		var volume progression.MuscleGroupVolume
		if getErr := client.GetJSON(ctx, "/api/volume/quads", &volume); getErr != nil {
			t.Fatalf("Failed to get volume: %v", getErr)
		}
		if volume.Sets != 2 {
			t.Errorf("quads sets = %d, want 2 via the substitute mapping", volume.Sets)
		}
		if getErr := client.GetJSON(ctx, "/api/volume/glutes", &volume); getErr != nil {
			t.Fatalf("Failed to get volume: %v", getErr)
		}
		if volume.Sets != 0 {
			t.Errorf("glutes sets = %d, want 0 with the quads-only substitute", volume.Sets)
		}
	})

	t.Run("malformed date responds 404", func(t *testing.T) {
		resp, postErr := client.PostJSON(ctx, "/api/workouts/garbage/swaps", map[string]any{
			"original":   "Back Squat",
			"substitute": "Leg Press",
		})
		if postErr != nil {
			t.Fatalf("Failed to post swap: %v", postErr)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status code = %d, want %d", resp.StatusCode, http.StatusNotFound)
		}
	})
}
