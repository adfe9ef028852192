package utils

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestDurationUS(t *testing.T) {
	d := 1234*time.Microsecond + 567*time.Nanosecond
	got := DurationUS(d)
	if math.Abs(got-1234.567) > 0.001 {
		t.Fatalf("want 1234.567µs, got %.3f", got)
	}
}

func TestPrintTimingStats(t *testing.T) {
	prevOut, prevVerbose := Output, Verbose
	defer func() { Output, Verbose = prevOut, prevVerbose }()

	var buf bytes.Buffer
	Output = &buf
	stats := &TimingStats{
		TotalTime:    4 * time.Second,
		TrainingTime: 2 * time.Second,
	}

	Verbose = false
	PrintTimingStats(stats, 1000)
	if buf.Len() != 0 {
		t.Fatalf("expected no output when not verbose, got %q", buf.String())
	}

	Verbose = true
	PrintTimingStats(stats, 1000)
	out := buf.String()
	for _, want := range []string{
		"Iterations completed: 1000",
		"Average time per iteration: 2ms",
		"Training: 2s (50.0%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	PrintTimingStats(&TimingStats{}, 0)
	if strings.Contains(buf.String(), "NaN") {
		t.Errorf("zero stats printed NaN:\n%s", buf.String())
	}
}
