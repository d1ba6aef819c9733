package main

import (
	"testing"
	"time"

	"github.com/myrjola/liftlog/internal/e2etest"
	"github.com/myrjola/liftlog/internal/progression"
	"github.com/myrjola/liftlog/internal/testhelpers"
)

func Test_application_recovery(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	// A chest-heavy week should rank the shoulder girdle above leg areas.
	sets := make([]map[string]any, 15)
	for i := range sets {
		sets[i] = map[string]any{"weight": 20, "reps": 12}
	}
	resp, err := client.PostJSON(ctx, "/api/lifts", map[string]any{
		"exerciseName": "Dumbbell Fly",
		"dateKey":      time.Now().Format(time.DateOnly),
		"sets":         sets,
	})
	if err != nil {
		t.Fatalf("Failed to post lift: %v", err)
	}
	resp.Body.Close()

	var priorities []progression.RecoveryPriority
	if err = client.GetJSON(ctx, "/api/recovery", &priorities); err != nil {
		t.Fatalf("Failed to get recovery priorities: %v", err)
	}
	if len(priorities) == 0 {
		t.Fatal("expected recovery priorities")
	}

	first := priorities[0]
	if first.Area != "Shoulder Girdle" {
		t.Errorf("top area = %s, want Shoulder Girdle after a chest-only week", first.Area)
	}
	if first.Score <= 0 {
		t.Errorf("top score = %v, want positive", first.Score)
	}
	for i := 1; i < len(priorities); i++ {
		if priorities[i].Score > priorities[i-1].Score {
			t.Errorf("priorities not sorted by score at index %d", i)
		}
	}
}
