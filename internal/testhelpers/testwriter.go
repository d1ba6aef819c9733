package testhelpers

import (
	"io"
	"strings"
	"testing"
)

// Writer is an io.Writer that forwards to t.Log so server logs only show
// up for failing tests.
type Writer struct {
	t        *testing.T
	testDone chan struct{}
}

// NewWriter creates a Writer bound to the lifetime of the test.
func NewWriter(t *testing.T) io.Writer {
	w := &Writer{
		t:        t,
		testDone: make(chan struct{}),
	}
	t.Cleanup(func() {
		close(w.testDone)
	})
	return w
}

// Write implements io.Writer. Writing after the test has finished panics to
// surface missing server shutdowns.
func (w *Writer) Write(p []byte) (int, error) {
	select {
	case <-w.testDone:
		panic("testwriter: write after test completion, did you forget to shut the server down?")
	default:
		output := strings.TrimSuffix(string(p), "\n")
		if output != "" {
			w.t.Log(output)
		}
		return len(p), nil
	}
}
