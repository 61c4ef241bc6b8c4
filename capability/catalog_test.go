package capability

import (
	"os"
	"testing"

	"veristack/core/planning"
)

func TestRegisterAndGet(t *testing.T) {
	Reset()
	Register(Entry{ActionType: planning.ActionClick, Description: "click an element", DefaultRisk: planning.RiskLow})

	got, err := Get(planning.ActionClick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DefaultRisk != planning.RiskLow {
		t.Fatalf("expected LOW, got %s", got.DefaultRisk)
	}
}

func TestRegisterRejectsEmptyActionType(t *testing.T) {
	Reset()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for empty action_type")
		}
	}()
	Register(Entry{ActionType: ""})
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	Reset()
	Register(Entry{ActionType: planning.ActionClick})
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for duplicate registration")
		}
	}()
	Register(Entry{ActionType: planning.ActionClick})
}

func TestGetUnregisteredReturnsError(t *testing.T) {
	Reset()
	if _, err := Get(planning.ActionClick); err == nil {
		t.Fatalf("expected error for unregistered action_type")
	}
	if _, err := Get(""); err == nil {
		t.Fatalf("expected error for empty action_type")
	}
}

func TestAllowedSetReflectsRegistrations(t *testing.T) {
	Reset()
	Register(Entry{ActionType: planning.ActionClick})
	Register(Entry{ActionType: planning.ActionNavigate})

	allowed := AllowedSet()
	if !allowed[planning.ActionClick] || !allowed[planning.ActionNavigate] {
		t.Fatalf("expected both registered action types in allowed set")
	}
	if allowed[planning.ActionUpload] {
		t.Fatalf("expected UPLOAD to not be in allowed set")
	}
}

func TestLoadFromFileRejectsUnknownRisk(t *testing.T) {
	Reset()
	dir := t.TempDir()
	path := dir + "/catalog.yaml"
	contents := "capabilities:\n  - action_type: CLICK\n    description: click\n    default_risk: NOT_A_RISK\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}
	if err := LoadFromFile(path); err == nil {
		t.Fatalf("expected error for unknown default_risk")
	}
}

func TestLoadFromFileRegistersEntries(t *testing.T) {
	Reset()
	dir := t.TempDir()
	path := dir + "/catalog.yaml"
	contents := "capabilities:\n" +
		"  - action_type: CLICK\n    description: click an element\n    default_risk: LOW\n" +
		"  - action_type: NAVIGATE\n    description: navigate to a URL\n    default_risk: MEDIUM\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}
	if err := LoadFromFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	allowed := AllowedSet()
	if !allowed[planning.ActionClick] || !allowed[planning.ActionNavigate] {
		t.Fatalf("expected both loaded entries registered")
	}
}
