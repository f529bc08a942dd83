package log

import (
	"context"
	"testing"
)

func TestTestLoggerCapturesFields(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Info("round complete",
		RoundKey, 2,
		ScoreKey, -7.0,
		RemovedKey, "c",
	)

	if !logger.ContainsMessage("round complete") {
		t.Error("expected message to be captured")
	}
	if !logger.ContainsField(RemovedKey, "c") {
		t.Errorf("expected field %s=c to be captured", RemovedKey)
	}

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	// JSON numbers decode as float64
	if entries[0][RoundKey] != float64(2) {
		t.Errorf("%s = %v, want 2", RoundKey, entries[0][RoundKey])
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, _ := NewTestLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["message"] != "visible" {
		t.Errorf("message = %v, want %q", entries[0]["message"], "visible")
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	scoped := logger.With(AlgorithmKey, AlgorithmBackward)
	scoped.Info("start")

	if !logger.ContainsField(AlgorithmKey, AlgorithmBackward) {
		t.Errorf("expected %s to be carried by With()", AlgorithmKey)
	}
}

func TestEnabled(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
