package scn

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustJSON parses a JSON fixture literal, failing the test on error.
func mustJSON(t *testing.T, src string) *Value {
	t.Helper()
	v, err := FromJSONBytes([]byte(src))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return v
}

// checkRoundTrip asserts encode(decode(fixture)) reproduces the fixture
// byte-for-byte through the JSON rendering.
func checkRoundTrip(t *testing.T, fixture string, decode func(*Value) (*Value, error)) {
	t.Helper()
	in := mustJSON(t, fixture)
	out, err := decode(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip mismatch (-want +got):\n%s",
			cmp.Diff(string(ToJSON(in)), string(ToJSON(out))))
	}
}

// captureLogger records Warn messages for diagnostics assertions.
type captureLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *captureLogger) Debug(string, Fields) {}
func (l *captureLogger) Info(string, Fields)  {}
func (l *captureLogger) Error(string, Fields) {}

func (l *captureLogger) Warn(msg string, _ Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *captureLogger) warnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warns)
}
