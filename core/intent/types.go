package intent

// -----------------------------------------------------------------------------
// Intent Binding — ONE DECISION, ONE INTENT, FOREVER
//
// This package turns a DecisionRecord into an immutable ExecutionIntent and
// tracks the binding process-wide so the same decision_id can never bind
// twice. It never re-derives what the human chose; it only notarizes it.
// -----------------------------------------------------------------------------

// BindingResult is the closed five-member result taxonomy bind_decision
// returns.
type BindingResult string

const (
	BindingSuccess         BindingResult = "SUCCESS"
	BindingInvalidDecision BindingResult = "INVALID_DECISION"
	BindingMissingField    BindingResult = "MISSING_FIELD"
	BindingDuplicate       BindingResult = "DUPLICATE"
	BindingRejected        BindingResult = "REJECTED"
)

// RecordType is the closed two-member enum naming what an IntentAuditRecord
// represents.
type RecordType string

const (
	RecordBinding    RecordType = "BINDING"
	RecordRevocation RecordType = "REVOCATION"
)

// ExecutionIntent is a decision bound to an intent. Immutable after
// construction; intent_hash is computed once in bind_decision and never
// recomputed in place.
type ExecutionIntent struct {
	IntentID          string
	DecisionID        string
	DecisionType      string // one of decision.HumanDecision, carried as a plain string to avoid a core/decision import cycle risk
	EvidenceChainHash string
	SessionID         string
	ExecutionState    string
	CreatedAt         string
	CreatedBy         string
	IntentHash        string
}

// IntentAuditRecord is one entry in an IntentAudit's hash-chained ledger. It
// is lighter than ExecutionIntent itself: binding and revocation events both
// reduce to "this intent_id, this record_type, this timestamp".
type IntentAuditRecord struct {
	RecordID   string
	IntentID   string
	RecordType RecordType
	Timestamp  string
	PriorHash  string
	SelfHash   string
}

// HashLinks implements hashchain.Link.
func (r IntentAuditRecord) HashLinks() (prior, self string) {
	return r.PriorHash, r.SelfHash
}

// IntentAudit is the hash-chained, append-only ledger of binding and
// revocation events for intents in a session.
type IntentAudit struct {
	AuditID   string
	Records   []IntentAuditRecord
	SessionID string
	HeadHash  string
	Length    int
}

// IntentRevocation is a permanent revocation record. Once one exists for an
// intent_id in an audit, that intent is revoked forever (spec invariant 6).
type IntentRevocation struct {
	RevocationID      string
	IntentID          string
	RevokedBy         string
	RevocationReason  string
	RevokedAt         string
	RevocationHash    string
}
