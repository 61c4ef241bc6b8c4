package decision

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"veristack/core/hashchain"
)

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// CreateRequest builds a DecisionRequest from a curated evidence summary.
// AllowedDecisions always includes all four HumanDecision members —
// deny-by-default means the caller never gets to narrow the human's
// choices to something less than the full enum. TimeoutDecision is always
// ABORT.
func CreateRequest(
	sessionID string,
	point, evType, timestamp string,
	chainLength int,
	executionState string,
	confidence float64,
	chainHash string,
	timeoutAt string,
	createdAt string,
) DecisionRequest {
	return DecisionRequest{
		RequestID: "REQ-" + uuid.NewString(),
		SessionID: sessionID,
		EvidenceSummary: EvidenceSummary{
			ObservationPoint: point,
			EvidenceType:     evType,
			Timestamp:        timestamp,
			ChainLength:      chainLength,
			ExecutionState:   executionState,
			ConfidenceScore:  confidence,
			ChainHash:        chainHash,
		},
		AllowedDecisions: AllHumanDecisions(),
		CreatedAt:        createdAt,
		TimeoutAt:        timeoutAt,
		TimeoutDecision:  DecisionAbort,
	}
}

// PresentEvidence returns the request's curated summary, unchanged. It is
// idempotent and commutative with every other read-only operation.
func PresentEvidence(request DecisionRequest) EvidenceSummary {
	return request.EvidenceSummary
}

// AcceptDecision validates and records a human's decision against a
// request. Every failure path is a validation failure — it returns a
// zero-value DecisionRecord and a descriptive error, never a partially
// populated record.
func AcceptDecision(
	request DecisionRequest,
	decision HumanDecision,
	humanID string,
	reason string,
	escalationTarget string,
	timestamp string,
) (DecisionRecord, error) {
	if isBlank(humanID) {
		return DecisionRecord{}, errors.New("human_id required")
	}

	allowed := false
	for _, d := range request.AllowedDecisions {
		if d == decision {
			allowed = true
			break
		}
	}
	if !allowed {
		return DecisionRecord{}, errors.New("decision not permitted for this request")
	}

	if decision == DecisionRetry && isBlank(reason) {
		return DecisionRecord{}, errors.New("RETRY requires a non-empty reason")
	}

	if decision == DecisionEscalate && (isBlank(reason) || isBlank(escalationTarget)) {
		return DecisionRecord{}, errors.New("ESCALATE requires both reason and escalation_target")
	}

	return DecisionRecord{
		DecisionID:        "DEC-" + uuid.NewString(),
		RequestID:         request.RequestID,
		HumanID:           humanID,
		Decision:          decision,
		Reason:            reason,
		EscalationTarget:  escalationTarget,
		Timestamp:         timestamp,
		EvidenceChainHash: request.EvidenceSummary.ChainHash,
	}, nil
}

// CreateTimeoutDecision produces the system-supplied ABORT decision for a
// request whose wall-clock timeout has elapsed. The caller (not this
// package) is responsible for detecting the timeout; there is no timer
// inside the core.
func CreateTimeoutDecision(request DecisionRequest, timeoutTimestamp string) DecisionRecord {
	return DecisionRecord{
		DecisionID:        "DEC-" + uuid.NewString(),
		RequestID:         request.RequestID,
		HumanID:           "SYSTEM_TIMEOUT",
		Decision:          DecisionAbort,
		Reason:            "TIMEOUT",
		EscalationTarget:  "",
		Timestamp:         timeoutTimestamp,
		EvidenceChainHash: request.EvidenceSummary.ChainHash,
	}
}

// RecordDecision appends record to audit's ledger, extending the hash
// chain. Returns a new DecisionAudit; the caller's prior value is
// untouched.
func RecordDecision(audit DecisionAudit, record DecisionRecord) DecisionAudit {
	priorHash := audit.HeadHash
	record.PriorHash = priorHash
	record.SelfHash = decisionRecordHash(record)

	records := hashchain.AppendRecord(audit.Records, record)

	auditID := audit.AuditID
	if auditID == "" {
		auditID = "AUDIT-" + uuid.NewString()
	}

	return DecisionAudit{
		AuditID:   auditID,
		Records:   records,
		SessionID: audit.SessionID,
		HeadHash:  record.SelfHash,
		Length:    len(records),
	}
}

func decisionRecordHash(r DecisionRecord) string {
	return hashchain.Sum(
		[]byte(r.DecisionID),
		[]byte(r.RequestID),
		[]byte(r.HumanID),
		[]byte(r.Decision),
		[]byte(r.Reason),
		[]byte(r.EscalationTarget),
		[]byte(r.Timestamp),
		[]byte(r.EvidenceChainHash),
		[]byte(r.PriorHash),
	)
}

// ValidateAuditChain recomputes every record's self-hash and checks
// prior_hash linkage plus Length/HeadHash, mirroring observation's
// ValidateChain: the same templated routine, parameterized by this
// package's own hash shape.
func ValidateAuditChain(audit DecisionAudit) bool {
	if len(audit.Records) == 0 {
		return audit.HeadHash == "" && audit.Length == 0
	}
	if audit.Length != len(audit.Records) {
		return false
	}
	if audit.HeadHash != hashchain.HeadHash(audit.Records) {
		return false
	}
	return hashchain.ValidateChain(audit.Records, decisionRecordHash)
}

// ApplyDecision pure-classifies what a recorded decision means given
// current execution state — it never executes anything.
func ApplyDecision(record DecisionRecord, currentState string, retryCount, maxRetries int) DecisionOutcome {
	switch record.Decision {
	case DecisionAbort:
		return OutcomeApplied
	case DecisionContinue:
		if currentState == "HALTED" {
			return OutcomeRejected
		}
		return OutcomeApplied
	case DecisionRetry:
		if retryCount >= maxRetries {
			return OutcomeRejected
		}
		return OutcomeApplied
	case DecisionEscalate:
		if !isBlank(record.EscalationTarget) {
			return OutcomePending
		}
		return OutcomeRejected
	default:
		return OutcomeRejected
	}
}
