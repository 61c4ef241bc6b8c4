package authorization

// -----------------------------------------------------------------------------
// Authorization — THE LAST GATE BEFORE A PLAN CAN BE BUILT
//
// Mirrors core/intent: same audit-chain shape, same dedup discipline, with
// two strict additional checks (intent hash integrity and intent
// revocation) layered in front of the duplicate-grant check.
// -----------------------------------------------------------------------------

// AuthorizationDecision is the closed two-member result authorize_execution
// returns.
type AuthorizationDecision string

const (
	Allow AuthorizationDecision = "ALLOW"
	Deny  AuthorizationDecision = "DENY"
)

// Status is the closed four-member status an ExecutionAuthorization can
// carry.
type Status string

const (
	StatusAuthorized Status = "AUTHORIZED"
	StatusRejected   Status = "REJECTED"
	StatusRevoked    Status = "REVOKED"
	StatusExpired    Status = "EXPIRED"
)

// RecordType is the closed two-member enum naming what an
// AuthorizationAuditRecord represents.
type RecordType string

const (
	RecordTypeAuthorization RecordType = "AUTHORIZATION"
	RecordRevocation        RecordType = "REVOCATION"
)

// ExecutionAuthorization is the permission artifact this package produces.
// It is never itself a grant to act — it only certifies that a given
// intent passed every gate.
type ExecutionAuthorization struct {
	AuthorizationID string
	IntentID        string
	DecisionID      string
	SessionID       string
	Status          Status
	AuthorizedBy    string
	AuthorizedAt    string
	AuthorizationHash string
}

// AuthorizationAuditRecord is one entry in an AuthorizationAudit's
// hash-chained ledger.
type AuthorizationAuditRecord struct {
	RecordID        string
	AuthorizationID string
	RecordType      RecordType
	Timestamp       string
	PriorHash       string
	SelfHash        string
}

// HashLinks implements hashchain.Link.
func (r AuthorizationAuditRecord) HashLinks() (prior, self string) {
	return r.PriorHash, r.SelfHash
}

// AuthorizationAudit is the hash-chained, append-only ledger of
// authorization and revocation events for a session.
type AuthorizationAudit struct {
	AuditID   string
	Records   []AuthorizationAuditRecord
	SessionID string
	HeadHash  string
	Length    int
}

// AuthorizationRevocation is a permanent revocation record, parallel to
// intent.IntentRevocation.
type AuthorizationRevocation struct {
	RevocationID     string
	AuthorizationID  string
	RevokedBy        string
	RevocationReason string
	RevokedAt        string
	RevocationHash   string
}
