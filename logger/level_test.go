package logger

import "testing"

func TestLevelString(t *testing.T) {
	t.Parallel()

	tt := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelNote, "NOTE"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(-1), "LEVEL(-1)"},
		{Level(42), "LEVEL(42)"},
	}

	for _, tc := range tt {
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			if got := tc.level.String(); got != tc.want {
				t.Fatalf("level string mismatch: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLevelOrder(t *testing.T) {
	t.Parallel()

	order := []Level{LevelTrace, LevelDebug, LevelInfo, LevelNote, LevelWarn, LevelError}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("expected %s < %s", order[i-1], order[i])
		}
	}
}
