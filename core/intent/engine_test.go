package intent

import (
	"testing"

	"veristack/dedup"
)

func sampleDecision(id string) *DecisionRecordView {
	return &DecisionRecordView{
		DecisionID:        id,
		HumanID:           "human-1",
		Decision:          "CONTINUE",
		EvidenceChainHash: "chainhash0",
	}
}

func TestBindDecisionNilDecisionIsInvalid(t *testing.T) {
	result, got := BindDecision(nil, "SESSION-1", "RUNNING", "T1", "system")
	if result != BindingInvalidDecision || got != nil {
		t.Fatalf("expected INVALID_DECISION/nil, got %s/%v", result, got)
	}
}

func TestBindDecisionMissingFieldRejectsBlanks(t *testing.T) {
	dec := sampleDecision("DEC-1")
	cases := []struct {
		name           string
		sessionID      string
		executionState string
		timestamp      string
	}{
		{"blank session", "", "RUNNING", "T1"},
		{"blank state", "SESSION-1", "", "T1"},
		{"blank timestamp", "SESSION-1", "RUNNING", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, got := BindDecision(dec, tc.sessionID, tc.executionState, tc.timestamp, "system")
			if result != BindingMissingField || got != nil {
				t.Fatalf("expected MISSING_FIELD/nil, got %s/%v", result, got)
			}
		})
	}
}

func TestBindDecisionSucceedsAndComputesHash(t *testing.T) {
	dedup.ClearIntentBindings()
	dec := sampleDecision("DEC-unique-1")
	result, got := BindDecision(dec, "SESSION-1", "RUNNING", "T1", "system")
	if result != BindingSuccess {
		t.Fatalf("expected SUCCESS, got %s", result)
	}
	if got == nil {
		t.Fatalf("expected non-nil intent")
	}
	if got.IntentHash == "" {
		t.Fatalf("expected a computed intent hash")
	}
	if !ValidateIntent(got, dec) {
		t.Fatalf("expected freshly bound intent to validate against its decision")
	}
}

func TestBindDecisionRejectsDuplicateBinding(t *testing.T) {
	dedup.ClearIntentBindings()
	dec := sampleDecision("DEC-dup-1")

	first, _ := BindDecision(dec, "SESSION-1", "RUNNING", "T1", "system")
	if first != BindingSuccess {
		t.Fatalf("expected first bind to succeed, got %s", first)
	}

	second, got := BindDecision(dec, "SESSION-1", "RUNNING", "T2", "system")
	if second != BindingDuplicate || got != nil {
		t.Fatalf("expected DUPLICATE/nil on second bind, got %s/%v", second, got)
	}
}

func TestValidateIntentDetectsMismatch(t *testing.T) {
	dedup.ClearIntentBindings()
	dec := sampleDecision("DEC-mismatch-1")
	_, got := BindDecision(dec, "SESSION-1", "RUNNING", "T1", "system")

	other := sampleDecision("DEC-other")
	if ValidateIntent(got, other) {
		t.Fatalf("expected mismatch to fail validation")
	}
	if ValidateIntent(nil, dec) {
		t.Fatalf("expected nil intent to fail validation")
	}
	if ValidateIntent(got, nil) {
		t.Fatalf("expected nil decision to fail validation")
	}
}

func TestRevokeIntentRequiresAllFields(t *testing.T) {
	dedup.ClearIntentBindings()
	dec := sampleDecision("DEC-revoke-1")
	_, it := BindDecision(dec, "SESSION-1", "RUNNING", "T1", "system")

	if _, err := RevokeIntent(nil, "admin", "compromised", "T2"); err == nil {
		t.Fatalf("expected error for nil intent")
	}
	if _, err := RevokeIntent(it, "", "compromised", "T2"); err == nil {
		t.Fatalf("expected error for blank revoked_by")
	}
	if _, err := RevokeIntent(it, "admin", "", "T2"); err == nil {
		t.Fatalf("expected error for blank reason")
	}
	if _, err := RevokeIntent(it, "admin", "compromised", ""); err == nil {
		t.Fatalf("expected error for blank timestamp")
	}

	rev, err := RevokeIntent(it, "admin", "compromised", "T2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev.IntentID != it.IntentID {
		t.Fatalf("expected revocation to reference the intent it revokes")
	}
}

func TestRecordIntentRejectsUnknownRecordType(t *testing.T) {
	var audit IntentAudit
	if _, err := RecordIntent(audit, "INTENT-1", RecordType("BOGUS"), "T1"); err == nil {
		t.Fatalf("expected error for unknown record_type")
	}
}

func TestRecordIntentAppendsAndChainsAndTracksRevocation(t *testing.T) {
	var audit IntentAudit
	var err error

	audit, err = RecordIntent(audit, "INTENT-1", RecordBinding, "T1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if IsIntentRevoked("INTENT-1", audit) {
		t.Fatalf("expected intent to not be revoked after a BINDING record")
	}

	audit, err = RecordIntent(audit, "INTENT-1", RecordRevocation, "T2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsIntentRevoked("INTENT-1", audit) {
		t.Fatalf("expected intent to be revoked after a REVOCATION record")
	}
	if audit.Records[1].PriorHash != audit.Records[0].SelfHash {
		t.Fatalf("expected chain linkage between binding and revocation records")
	}
	if !ValidateAuditChain(audit) {
		t.Fatalf("expected valid audit chain")
	}
}

func TestValidateAuditChainEmpty(t *testing.T) {
	if !ValidateAuditChain(IntentAudit{}) {
		t.Fatalf("expected empty audit to validate")
	}
}
