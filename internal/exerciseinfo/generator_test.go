package exerciseinfo_test

import (
	"strings"
	"testing"

	"github.com/myrjola/liftlog/internal/exerciseinfo"
	"github.com/myrjola/liftlog/internal/testhelpers"
)

func TestGenerator_FallbackWithoutAPIKey(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	gen := exerciseinfo.NewGenerator("", logger)

	got := gen.Describe(t.Context(), "Romanian Deadlift")
	if !strings.Contains(got, "Romanian Deadlift") {
		t.Errorf("fallback description does not mention the exercise:\n%s", got)
	}
	if !strings.HasPrefix(got, "# ") {
		t.Errorf("fallback description is not markdown with a heading:\n%s", got)
	}
}
