package coroutine

import (
	"bytes"
	"io"
	"testing"
)

// captureDiagnostics redirects the panic diagnostic line into a
// buffer for the duration of the test.
func captureDiagnostics(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = prev })
	return &buf
}

// silenceDiagnostics discards the panic diagnostic line for the
// duration of the test.
func silenceDiagnostics(t *testing.T) {
	t.Helper()
	prev := stderr
	stderr = io.Discard
	t.Cleanup(func() { stderr = prev })
}
