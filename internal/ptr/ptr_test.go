package ptr_test

import (
	"testing"

	"github.com/myrjola/liftlog/internal/ptr"
)

func TestRef(t *testing.T) {
	if got := ptr.Ref(42); *got != 42 {
		t.Errorf("Ref(42) points at %d, want 42", *got)
	}

	s := ptr.Ref("deadlift")
	if *s != "deadlift" {
		t.Errorf("Ref(%q) points at %q", "deadlift", *s)
	}

	// Distinct calls must return distinct pointers.
	if ptr.Ref(1) == ptr.Ref(1) {
		t.Error("Ref returned the same pointer for separate calls")
	}
}
