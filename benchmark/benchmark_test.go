package benchmark

import (
	"testing"
	"time"
)

func TestRunCallsFunction(t *testing.T) {
	called := 0
	stats := Run("test", func() {
		called++
		time.Sleep(time.Millisecond)
	})
	if called != 1 {
		t.Fatalf("wrapped function ran %d times, want 1", called)
	}
	if stats.Elapsed < time.Millisecond {
		t.Errorf("elapsed %v shorter than the wrapped sleep", stats.Elapsed)
	}
}
