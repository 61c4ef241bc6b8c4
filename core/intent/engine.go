package intent

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"veristack/core/hashchain"
	"veristack/dedup"
)

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// DecisionRecordView is the subset of a decision.DecisionRecord this
// package needs. Intent binding depends only on these fields, never on the
// decision package itself, so the two packages cannot form an import
// cycle and this package stays usable against any decision representation
// that can produce this view.
type DecisionRecordView struct {
	DecisionID        string
	HumanID           string
	Decision          string // HumanDecision.name
	EvidenceChainHash string
}

// BindDecision translates a decision into an immutable ExecutionIntent,
// consulting and updating the process-wide binding set so a decision_id
// can never bind twice. decisionRecord == nil is represented by the
// caller passing a nil pointer.
func BindDecision(
	decisionRecord *DecisionRecordView,
	sessionID, executionState, timestamp, createdBy string,
) (BindingResult, *ExecutionIntent) {
	if decisionRecord == nil {
		return BindingInvalidDecision, nil
	}

	if isBlank(decisionRecord.DecisionID) ||
		isBlank(decisionRecord.HumanID) ||
		isBlank(decisionRecord.EvidenceChainHash) ||
		isBlank(sessionID) ||
		isBlank(executionState) ||
		isBlank(timestamp) {
		return BindingMissingField, nil
	}

	if dedup.IntentBindings.Contains(decisionRecord.DecisionID) {
		return BindingDuplicate, nil
	}

	intentID := "INTENT-" + uuid.NewString()
	intentHash := intentHash(
		intentID,
		decisionRecord.DecisionID,
		decisionRecord.Decision,
		decisionRecord.EvidenceChainHash,
		sessionID,
		executionState,
		timestamp,
		createdBy,
	)

	intent := &ExecutionIntent{
		IntentID:          intentID,
		DecisionID:        decisionRecord.DecisionID,
		DecisionType:      decisionRecord.Decision,
		EvidenceChainHash: decisionRecord.EvidenceChainHash,
		SessionID:         sessionID,
		ExecutionState:    executionState,
		CreatedAt:         timestamp,
		CreatedBy:         createdBy,
		IntentHash:        intentHash,
	}

	dedup.IntentBindings.Add(decisionRecord.DecisionID)
	return BindingSuccess, intent
}

func intentHash(intentID, decisionID, decisionType, evidenceChainHash, sessionID, executionState, createdAt, createdBy string) string {
	return hashchain.SumStrings(
		intentID, decisionID, decisionType, evidenceChainHash, sessionID, executionState, createdAt, createdBy,
	)
}

// ValidateIntent reports whether intent was honestly derived from
// decisionRecord: both non-nil, decision_id and decision_type match, and
// the recomputed intent_hash equals the stored one.
func ValidateIntent(intent *ExecutionIntent, decisionRecord *DecisionRecordView) bool {
	if intent == nil || decisionRecord == nil {
		return false
	}
	if intent.DecisionID != decisionRecord.DecisionID {
		return false
	}
	if intent.DecisionType != decisionRecord.Decision {
		return false
	}
	recomputed := intentHash(
		intent.IntentID,
		intent.DecisionID,
		intent.DecisionType,
		intent.EvidenceChainHash,
		intent.SessionID,
		intent.ExecutionState,
		intent.CreatedAt,
		intent.CreatedBy,
	)
	return recomputed == intent.IntentHash
}

// RevokeIntent produces a permanent IntentRevocation. Fails closed if
// revokedBy, reason, or timestamp is blank.
func RevokeIntent(intent *ExecutionIntent, revokedBy, reason, timestamp string) (IntentRevocation, error) {
	if intent == nil {
		return IntentRevocation{}, errors.New("intent required")
	}
	if isBlank(revokedBy) {
		return IntentRevocation{}, errors.New("revoked_by required")
	}
	if isBlank(reason) {
		return IntentRevocation{}, errors.New("revocation_reason required")
	}
	if isBlank(timestamp) {
		return IntentRevocation{}, errors.New("timestamp required")
	}

	revocationID := "REVOKE-" + uuid.NewString()
	return IntentRevocation{
		RevocationID:     revocationID,
		IntentID:         intent.IntentID,
		RevokedBy:        revokedBy,
		RevocationReason: reason,
		RevokedAt:        timestamp,
		RevocationHash:   hashchain.SumStrings(revocationID, intent.IntentID, revokedBy, reason, timestamp),
	}, nil
}

// RecordIntent appends a BINDING or REVOCATION entry to audit's ledger.
// Any other record type fails closed.
func RecordIntent(audit IntentAudit, intentID string, recordType RecordType, timestamp string) (IntentAudit, error) {
	if recordType != RecordBinding && recordType != RecordRevocation {
		return audit, errors.New("record_type must be BINDING or REVOCATION")
	}

	record := IntentAuditRecord{
		RecordID:   "IREC-" + uuid.NewString(),
		IntentID:   intentID,
		RecordType: recordType,
		Timestamp:  timestamp,
		PriorHash:  audit.HeadHash,
	}
	record.SelfHash = intentAuditRecordHash(record)

	records := hashchain.AppendRecord(audit.Records, record)

	auditID := audit.AuditID
	if auditID == "" {
		auditID = "IAUDIT-" + uuid.NewString()
	}

	return IntentAudit{
		AuditID:   auditID,
		Records:   records,
		SessionID: audit.SessionID,
		HeadHash:  record.SelfHash,
		Length:    len(records),
	}, nil
}

func intentAuditRecordHash(r IntentAuditRecord) string {
	return hashchain.Sum(
		[]byte(r.RecordID),
		[]byte(r.IntentID),
		[]byte(r.RecordType),
		[]byte(r.Timestamp),
		[]byte(r.PriorHash),
	)
}

// IsIntentRevoked reports whether audit contains any REVOCATION record for
// intentID.
func IsIntentRevoked(intentID string, audit IntentAudit) bool {
	for _, r := range audit.Records {
		if r.IntentID == intentID && r.RecordType == RecordRevocation {
			return true
		}
	}
	return false
}

// ValidateAuditChain mirrors observation.ValidateChain and
// decision.ValidateAuditChain: same templated routine, this package's own
// hash shape.
func ValidateAuditChain(audit IntentAudit) bool {
	if len(audit.Records) == 0 {
		return audit.HeadHash == "" && audit.Length == 0
	}
	if audit.Length != len(audit.Records) {
		return false
	}
	if audit.HeadHash != hashchain.HeadHash(audit.Records) {
		return false
	}
	return hashchain.ValidateChain(audit.Records, intentAuditRecordHash)
}
