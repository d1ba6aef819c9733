package progression_test

import (
	"path/filepath"
	"testing"

	"github.com/myrjola/liftlog/internal/progression"
	"github.com/myrjola/liftlog/internal/sqlite"
	"github.com/myrjola/liftlog/internal/testhelpers"
)

func TestService_PersistsAcrossRestarts(t *testing.T) {
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("Failed to close database: %v", closeErr)
		}
	})

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	cfg := progression.DefaultConfig()

	service, err := progression.NewService(ctx, db, backupPath, cfg, logger)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	sets := []progression.Set{{WeightKg: 100, Reps: 8}, {WeightKg: 100, Reps: 8}}
	result, err := service.LogLift(ctx, "Barbell Bench Press", sets, "2026-03-10")
	if err != nil {
		t.Fatalf("LogLift returned unexpected error: %v", err)
	}
	if !result.IsPR {
		t.Error("expected the first logged session to register a record")
	}
	if err = service.SaveExerciseSwap(ctx, "2026-03-10", "Back Squat", "Leg Press"); err != nil {
		t.Fatalf("SaveExerciseSwap returned unexpected error: %v", err)
	}

	// Wait for the background snapshot writes before restarting.
	service.Close()

	restarted, err := progression.NewService(ctx, db, backupPath, cfg, logger)
	if err != nil {
		t.Fatalf("Failed to restart service: %v", err)
	}
	defer restarted.Close()

	record := restarted.GetPR("Barbell Bench Press")
	if record == nil {
		t.Fatal("expected the record to survive a restart")
	}
	if record.Estimated1RM != 124 {
		t.Errorf("restored record estimate = %v, want 124", record.Estimated1RM)
	}

	history := restarted.LiftHistory("Barbell Bench Press")
	if len(history) != 1 || history[0].DateKey != "2026-03-10" {
		t.Errorf("restored history = %+v, want the single logged entry", history)
	}

	substitute, ok := restarted.GetExerciseSwap("2026-03-10", "Back Squat")
	if !ok || substitute != "Leg Press" {
		t.Errorf("restored swap = %q, %v, want Leg Press, true", substitute, ok)
	}
}

func TestService_RestoresFromFileBackupWhenDatabaseIsEmpty(t *testing.T) {
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	cfg := progression.DefaultConfig()

	// First lifecycle populates both stores.
	firstDB, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	service, err := progression.NewService(ctx, firstDB, backupPath, cfg, logger)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if _, err = service.LogLift(ctx, "Deadlift", []progression.Set{{WeightKg: 180, Reps: 3}}, "2026-03-12"); err != nil {
		t.Fatalf("LogLift returned unexpected error: %v", err)
	}
	service.Close()
	if err = firstDB.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	// A fresh database simulates a lost primary store; only the file backup
	// holds the state now.
	freshDB, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := freshDB.Close(); closeErr != nil {
			t.Errorf("Failed to close database: %v", closeErr)
		}
	})

	restored, err := progression.NewService(ctx, freshDB, backupPath, cfg, logger)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	defer restored.Close()

	if record := restored.GetPR("Deadlift"); record == nil || record.WeightKg != 180 {
		t.Errorf("restored record = %+v, want the 180 kg deadlift from the backup", record)
	}
}

func TestService_StartsEmptyWithoutSnapshots(t *testing.T) {
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("Failed to close database: %v", closeErr)
		}
	})

	service, err := progression.NewService(ctx, db, filepath.Join(t.TempDir(), "backup.json"), progression.DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	if record := service.GetPR("Barbell Bench Press"); record != nil {
		t.Errorf("expected no record on a fresh start, got %+v", record)
	}
	if suggestion := service.SuggestNext("Barbell Bench Press"); suggestion != nil {
		t.Errorf("expected no suggestion on a fresh start, got %+v", suggestion)
	}
}
