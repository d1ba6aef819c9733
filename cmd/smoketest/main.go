package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/myrjola/liftlog/internal/e2etest"
	"github.com/myrjola/liftlog/internal/logging"
	"github.com/myrjola/liftlog/internal/progression"
	"github.com/myrjola/liftlog/internal/testhelpers"
)

// TestProgression exercises the logging and advisory endpoints end to end:
// log a session, confirm the record, read back the volume and a suggestion.
func TestProgression(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	dateKey := time.Now().Format(time.DateOnly)
	exercise := "Barbell Bench Press"

	resp, err := client.PostJSON(ctx, "/api/lifts", map[string]any{
		"exerciseName": exercise,
		"dateKey":      dateKey,
		"sets":         []map[string]any{{"weight": 60, "reps": 8}, {"weight": 60, "reps": 8}},
	})
	if err != nil {
		return fmt.Errorf("log lift: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("log lift: unexpected status code: %d", resp.StatusCode)
	}

	var record progression.PersonalRecord
	if err = client.GetJSON(ctx, "/api/lifts/Barbell%20Bench%20Press/pr", &record); err != nil {
		return fmt.Errorf("get record: %w", err)
	}
	if record.DateKey != dateKey {
		return fmt.Errorf("record date %s, want %s", record.DateKey, dateKey)
	}

	var volume progression.MuscleGroupVolume
	if err = client.GetJSON(ctx, "/api/volume/chest", &volume); err != nil {
		return fmt.Errorf("get volume: %w", err)
	}
	if volume.Sets < 2 { //nolint:mnd // the two sets logged above.
		return fmt.Errorf("chest sets %d, want at least 2", volume.Sets)
	}

	var suggestion progression.Suggestion
	if err = client.GetJSON(ctx, "/api/exercises/Barbell%20Bench%20Press/suggestion", &suggestion); err != nil {
		return fmt.Errorf("get suggestion: %w", err)
	}
	if suggestion.Reps < 1 {
		return fmt.Errorf("suggestion reps %d, want at least 1", suggestion.Reps)
	}

	// Clean up the smoke-test entry so repeated runs start fresh.
	deleteResp, err := client.Delete(ctx, "/api/lifts/Barbell%20Bench%20Press/"+dateKey)
	if err != nil {
		return fmt.Errorf("delete lift entry: %w", err)
	}
	if err = deleteResp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}
	if deleteResp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete lift entry: unexpected status code: %d", deleteResp.StatusCode)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestProgression(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing progression", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
