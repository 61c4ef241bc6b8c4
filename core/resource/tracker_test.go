package resource

import "testing"

func TestNewTrackerRejectsZeroBudget(t *testing.T) {
	if _, err := NewTracker(0); err == nil {
		t.Fatalf("expected error for zero budget")
	}
}

func TestConsumeAccumulatesAndHaltsAtBudget(t *testing.T) {
	tr, err := NewTracker(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tr.Consume(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Halted() {
		t.Fatalf("expected not halted below budget")
	}

	if err := tr.Consume(6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tr.Halted() {
		t.Fatalf("expected halted at budget")
	}
}

func TestConsumeRejectsZeroDeltaAndPostHaltUse(t *testing.T) {
	tr, _ := NewTracker(5)
	if err := tr.Consume(0); err == nil {
		t.Fatalf("expected error for zero delta")
	}
	if err := tr.Consume(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.Consume(1); err == nil {
		t.Fatalf("expected error consuming after halt")
	}
}

func TestLevelThresholds(t *testing.T) {
	tr, _ := NewTracker(100)
	if tr.Level() != LevelLow {
		t.Fatalf("expected LOW at zero consumption, got %s", tr.Level())
	}
	tr.Consume(60)
	if tr.Level() != LevelMedium {
		t.Fatalf("expected MEDIUM at 60%%, got %s", tr.Level())
	}
	tr.Consume(20)
	if tr.Level() != LevelHigh {
		t.Fatalf("expected HIGH at 80%%, got %s", tr.Level())
	}
	tr.Consume(20)
	if tr.Level() != LevelCritical {
		t.Fatalf("expected CRITICAL at budget, got %s", tr.Level())
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	tr, _ := NewTracker(10)
	tr.Consume(10)
	snap := tr.Snapshot()
	if !snap.Halted || snap.Level != LevelCritical || snap.Consumed != 10 || snap.Budget != 10 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
