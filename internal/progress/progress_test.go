package progress

import (
	"testing"
	"time"
)

func TestFormatTimeChoosesCoarsestFittingUnit(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{3 * time.Second, "3s"},
		{90 * time.Second, "1m:30s"},
		{2*time.Hour + 5*time.Minute + 9*time.Second, "2h:5m:9s"},
		{26*time.Hour + time.Minute + time.Second, "1d:2h:1m:1s"},
	}
	for _, c := range cases {
		got := FormatTime(c.d)
		if got != c.want {
			t.Errorf("FormatTime(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestReporterSilentWhenQuiet(t *testing.T) {
	r := New(true)
	if !r.silent() {
		t.Error("silent() = false for a quiet reporter, want true")
	}
}

func TestReporterStageAndSpinAreNoOpsWhenSilent(t *testing.T) {
	r := New(true)

	done := r.Stage("loading")
	done()

	spinDone := r.Spin("triangulating")
	spinDone()
}
