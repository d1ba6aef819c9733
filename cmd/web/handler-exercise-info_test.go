package main

import (
	"strings"
	"testing"

	"github.com/myrjola/liftlog/internal/e2etest"
	"github.com/myrjola/liftlog/internal/testhelpers"
)

func Test_application_exerciseInfo(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	// Without an API key the page renders the fallback write-up.
	doc, err := client.GetDoc(ctx, "/exercises/Romanian%20Deadlift/info")
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	if heading := doc.Find("article.exercise-info h2").First().Text(); heading != "Romanian Deadlift" {
		t.Errorf("heading = %q, want Romanian Deadlift", heading)
	}
	if body := doc.Find("article.exercise-info").Text(); !strings.Contains(body, "warm up") {
		t.Errorf("expected the fallback guidance in the page body, got:\n%s", body)
	}
}
