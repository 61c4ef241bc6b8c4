package decision

// -----------------------------------------------------------------------------
// Decision Solicitation — THE HUMAN IS THE AUTHORITY
//
// This package presents a curated, human-safe evidence summary and records
// exactly one decision from a closed four-member enum. It never decides on
// the human's behalf; timeout is the one case where the system supplies a
// decision, and that decision is frozen to ABORT.
// -----------------------------------------------------------------------------

// HumanDecision is the closed four-member enum of outcomes a human may
// select for a DecisionRequest.
type HumanDecision string

const (
	DecisionContinue  HumanDecision = "CONTINUE"
	DecisionRetry     HumanDecision = "RETRY"
	DecisionAbort     HumanDecision = "ABORT"
	DecisionEscalate  HumanDecision = "ESCALATE"
)

var allHumanDecisions = []HumanDecision{DecisionContinue, DecisionRetry, DecisionAbort, DecisionEscalate}

// AllHumanDecisions returns the closed enum universe, in declaration order.
func AllHumanDecisions() []HumanDecision {
	out := make([]HumanDecision, len(allHumanDecisions))
	copy(out, allHumanDecisions)
	return out
}

func (d HumanDecision) valid() bool {
	for _, c := range allHumanDecisions {
		if c == d {
			return true
		}
	}
	return false
}

// EvidenceVisibility classifies whether a field may appear on an
// EvidenceSummary. Closed two-member enum.
type EvidenceVisibility int

const (
	Hidden EvidenceVisibility = iota
	Visible
)

// fieldVisibility is the static field-name-to-visibility map.
// Any field name absent from this map defaults to Hidden.
var fieldVisibility = map[string]EvidenceVisibility{
	"observation_point": Visible,
	"evidence_type":      Visible,
	"timestamp":          Visible,
	"chain_length":       Visible,
	"execution_state":    Visible,
	"confidence_score":   Visible,
	"chain_hash":         Visible,
	"raw_data":           Hidden,
	"executor_output":    Hidden,
}

// VisibilityOf returns the visibility of a named field, defaulting to
// Hidden for any field this module does not recognize (deny-by-default).
func VisibilityOf(field string) EvidenceVisibility {
	if v, ok := fieldVisibility[field]; ok {
		return v
	}
	return Hidden
}

// EvidenceSummary is the curated, human-safe view of an EvidenceChain.
// It carries EXACTLY these seven fields — raw_data and executor_output are
// structurally absent from this type, not merely hidden at runtime.
type EvidenceSummary struct {
	ObservationPoint string
	EvidenceType     string
	Timestamp        string
	ChainLength      int
	ExecutionState   string
	ConfidenceScore  float64
	ChainHash        string
}

// DecisionRequest is a request for a human decision.
type DecisionRequest struct {
	RequestID        string
	SessionID        string
	EvidenceSummary  EvidenceSummary
	AllowedDecisions []HumanDecision
	CreatedAt        string
	TimeoutAt        string
	TimeoutDecision  HumanDecision // always DecisionAbort
}

// DecisionRecord is one immutable human decision. PriorHash/SelfHash link
// it into the session's DecisionAudit, per the hash-chain discipline every
// ledger in this module shares.
type DecisionRecord struct {
	DecisionID        string
	RequestID         string
	HumanID           string
	Decision          HumanDecision
	Reason            string // optional
	EscalationTarget  string // optional
	Timestamp         string
	EvidenceChainHash string
	PriorHash         string
	SelfHash          string
}

// HashLinks implements hashchain.Link.
func (r DecisionRecord) HashLinks() (prior, self string) {
	return r.PriorHash, r.SelfHash
}

// DecisionAudit is the hash-chained, append-only ledger of decisions for a
// session.
type DecisionAudit struct {
	AuditID   string
	Records   []DecisionRecord
	SessionID string
	HeadHash  string
	Length    int
}

// DecisionOutcome is the closed classification `apply_decision` returns. It
// never executes anything — it only classifies what the decision means
// given current state.
type DecisionOutcome string

const (
	OutcomeApplied  DecisionOutcome = "APPLIED"
	OutcomeRejected DecisionOutcome = "REJECTED"
	OutcomePending  DecisionOutcome = "PENDING"
)
