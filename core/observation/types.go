package observation

// -----------------------------------------------------------------------------
// Evidence — FACTUAL RECORD, NOT INTERPRETATION
//
// An EvidenceRecord represents one observation captured at a named hook in
// the (external) execution loop. Observation never parses raw_data; it is
// propagated as opaque bytes through hashing only.
//
// DESIGN PRINCIPLES:
//
// 1. FACT OVER OPINION — records what happened, not what it means.
// 2. IMMUTABLE AFTER CAPTURE — any mutation invalidates the chain.
// 3. MINIMUM NECESSARY DATA — no raw_data leaves this package unescorted.
// -----------------------------------------------------------------------------

// ObservationPoint is a named hook in the execution loop at which evidence
// may be captured. Closed five-member enum.
type ObservationPoint string

const (
	PointPreDispatch  ObservationPoint = "PRE_DISPATCH"
	PointPostDispatch ObservationPoint = "POST_DISPATCH"
	PointPreEvaluate  ObservationPoint = "PRE_EVALUATE"
	PointPostEvaluate ObservationPoint = "POST_EVALUATE"
	PointHaltEntry    ObservationPoint = "HALT_ENTRY"
)

var allObservationPoints = []ObservationPoint{
	PointPreDispatch, PointPostDispatch, PointPreEvaluate, PointPostEvaluate, PointHaltEntry,
}

// Valid reports whether p is a recognized observation point.
func (p ObservationPoint) Valid() bool {
	for _, c := range allObservationPoints {
		if c == p {
			return true
		}
	}
	return false
}

// EvidenceType categorizes the kind of fact a record carries. Closed
// five-member enum.
type EvidenceType string

const (
	TypeStateTransition  EvidenceType = "STATE_TRANSITION"
	TypeExecutorOutput   EvidenceType = "EXECUTOR_OUTPUT"
	TypeTimestampEvent   EvidenceType = "TIMESTAMP_EVENT"
	TypeResourceSnapshot EvidenceType = "RESOURCE_SNAPSHOT"
	TypeStopCondition    EvidenceType = "STOP_CONDITION"
)

var allEvidenceTypes = []EvidenceType{
	TypeStateTransition, TypeExecutorOutput, TypeTimestampEvent, TypeResourceSnapshot, TypeStopCondition,
}

// Valid reports whether t is a recognized evidence type.
func (t EvidenceType) Valid() bool {
	for _, c := range allEvidenceTypes {
		if c == t {
			return true
		}
	}
	return false
}

// StopCondition is one of ten enumerated reasons a session may be forced
// into the halted state.
type StopCondition string

const (
	StopMissingAuthorization  StopCondition = "MISSING_AUTHORIZATION"
	StopExecutorNotRegistered StopCondition = "EXECUTOR_NOT_REGISTERED"
	StopEnvelopeHashMismatch  StopCondition = "ENVELOPE_HASH_MISMATCH"
	StopContextUninitialized StopCondition = "CONTEXT_UNINITIALIZED"
	StopEvidenceChainBroken  StopCondition = "EVIDENCE_CHAIN_BROKEN"
	StopResourceLimitExceeded StopCondition = "RESOURCE_LIMIT_EXCEEDED"
	StopTimestampInvalid      StopCondition = "TIMESTAMP_INVALID"
	StopPriorExecutionPending StopCondition = "PRIOR_EXECUTION_PENDING"
	StopAmbiguousIntent       StopCondition = "AMBIGUOUS_INTENT"
	StopHumanAbort            StopCondition = "HUMAN_ABORT"
)

// EvidenceRecord is one immutable observation.
type EvidenceRecord struct {
	RecordID         string
	ObservationPoint ObservationPoint
	EvidenceType     EvidenceType
	Timestamp        string
	RawData          []byte
	PriorHash        string
	SelfHash         string
}

// HashLinks implements hashchain.Link.
func (r EvidenceRecord) HashLinks() (prior, self string) {
	return r.PriorHash, r.SelfHash
}

// EvidenceChain is an ordered, hash-linked, append-only sequence of
// EvidenceRecord.
type EvidenceChain struct {
	ChainID  string
	Records  []EvidenceRecord
	HeadHash string
	Length   int
}
