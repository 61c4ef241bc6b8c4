package authorization

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"veristack/core/hashchain"
	"veristack/dedup"
)

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// IntentView is the subset of an intent.ExecutionIntent this package needs.
// Authorization depends only on this view, never on the intent package
// itself, keeping the pipeline stages decoupled at the package level the
// same way intent depends on a DecisionRecordView rather than the decision
// package.
type IntentView struct {
	IntentID          string
	DecisionID        string
	DecisionType      string
	EvidenceChainHash string
	SessionID         string
	ExecutionState    string
	CreatedAt         string
	CreatedBy         string
	IntentHash        string
}

// IntentAuditView is the minimal query surface authorize_execution needs
// over an intent audit: whether a given intent_id has been revoked.
type IntentAuditView interface {
	IsRevoked(intentID string) bool
}

func intentHash(v *IntentView) string {
	return hashchain.SumStrings(
		v.IntentID, v.DecisionID, v.DecisionType, v.EvidenceChainHash,
		v.SessionID, v.ExecutionState, v.CreatedAt, v.CreatedBy,
	)
}

// AuthorizeExecution issues an ExecutionAuthorization for a valid,
// non-revoked intent. The procedure runs in a fixed order: structural
// validity, hash integrity, audit presence, revocation, then duplicate
// grant.
func AuthorizeExecution(intent *IntentView, intentAudit IntentAuditView, authorizedBy, timestamp string) (AuthorizationDecision, *ExecutionAuthorization) {
	if intent == nil ||
		isBlank(intent.IntentID) ||
		isBlank(intent.DecisionID) ||
		isBlank(intent.SessionID) ||
		isBlank(intent.ExecutionState) ||
		isBlank(intent.IntentHash) ||
		isBlank(authorizedBy) ||
		isBlank(timestamp) {
		return Deny, nil
	}

	if intentHash(intent) != intent.IntentHash {
		return Deny, nil
	}

	if intentAudit == nil {
		return Deny, nil
	}

	if intentAudit.IsRevoked(intent.IntentID) {
		return Deny, nil
	}

	if dedup.AuthorizationGrants.Contains(intent.IntentID) {
		return Deny, nil
	}

	authorizationID := "AUTH-" + uuid.NewString()
	auth := &ExecutionAuthorization{
		AuthorizationID: authorizationID,
		IntentID:        intent.IntentID,
		DecisionID:      intent.DecisionID,
		SessionID:       intent.SessionID,
		Status:          StatusAuthorized,
		AuthorizedBy:    authorizedBy,
		AuthorizedAt:    timestamp,
	}
	auth.AuthorizationHash = authorizationHash(auth)

	dedup.AuthorizationGrants.Add(intent.IntentID)
	return Allow, auth
}

func authorizationHash(a *ExecutionAuthorization) string {
	return hashchain.SumStrings(
		a.AuthorizationID, a.IntentID, a.DecisionID, a.SessionID,
		string(a.Status), a.AuthorizedBy, a.AuthorizedAt,
	)
}

// ValidateAuthorization reports whether auth was honestly derived from
// intent: both non-nil, intent_id match, and the recomputed
// authorization_hash equals the stored one.
func ValidateAuthorization(auth *ExecutionAuthorization, intent *IntentView) bool {
	if auth == nil || intent == nil {
		return false
	}
	if auth.IntentID != intent.IntentID {
		return false
	}
	return authorizationHash(auth) == auth.AuthorizationHash
}

// RevokeAuthorization produces a permanent AuthorizationRevocation. Fails
// closed if revokedBy, reason, or timestamp is blank.
func RevokeAuthorization(auth *ExecutionAuthorization, revokedBy, reason, timestamp string) (AuthorizationRevocation, error) {
	if auth == nil {
		return AuthorizationRevocation{}, errors.New("authorization required")
	}
	if isBlank(revokedBy) {
		return AuthorizationRevocation{}, errors.New("revoked_by required")
	}
	if isBlank(reason) {
		return AuthorizationRevocation{}, errors.New("revocation_reason required")
	}
	if isBlank(timestamp) {
		return AuthorizationRevocation{}, errors.New("timestamp required")
	}

	revocationID := "AUTHREV-" + uuid.NewString()
	return AuthorizationRevocation{
		RevocationID:     revocationID,
		AuthorizationID:  auth.AuthorizationID,
		RevokedBy:        revokedBy,
		RevocationReason: reason,
		RevokedAt:        timestamp,
		RevocationHash:   hashchain.SumStrings(revocationID, auth.AuthorizationID, revokedBy, reason, timestamp),
	}, nil
}

// RecordAuthorization appends an AUTHORIZATION or REVOCATION entry to
// audit's ledger. Any other record type fails closed.
func RecordAuthorization(audit AuthorizationAudit, authorizationID string, recordType RecordType, timestamp string) (AuthorizationAudit, error) {
	if recordType != RecordTypeAuthorization && recordType != RecordRevocation {
		return audit, errors.New("record_type must be AUTHORIZATION or REVOCATION")
	}

	record := AuthorizationAuditRecord{
		RecordID:        "AUTHREC-" + uuid.NewString(),
		AuthorizationID: authorizationID,
		RecordType:      recordType,
		Timestamp:       timestamp,
		PriorHash:       audit.HeadHash,
	}
	record.SelfHash = authorizationAuditRecordHash(record)

	records := hashchain.AppendRecord(audit.Records, record)

	auditID := audit.AuditID
	if auditID == "" {
		auditID = "AUTHAUDIT-" + uuid.NewString()
	}

	return AuthorizationAudit{
		AuditID:   auditID,
		Records:   records,
		SessionID: audit.SessionID,
		HeadHash:  record.SelfHash,
		Length:    len(records),
	}, nil
}

func authorizationAuditRecordHash(r AuthorizationAuditRecord) string {
	return hashchain.Sum(
		[]byte(r.RecordID),
		[]byte(r.AuthorizationID),
		[]byte(r.RecordType),
		[]byte(r.Timestamp),
		[]byte(r.PriorHash),
	)
}

// IsAuthorizationRevoked reports whether audit contains any REVOCATION
// record for authorizationID.
func IsAuthorizationRevoked(authorizationID string, audit AuthorizationAudit) bool {
	for _, r := range audit.Records {
		if r.AuthorizationID == authorizationID && r.RecordType == RecordRevocation {
			return true
		}
	}
	return false
}

// IsAuthorizationValid reports whether auth matches intent, carries status
// AUTHORIZED, and neither the intent nor the authorization has been
// revoked.
func IsAuthorizationValid(auth *ExecutionAuthorization, intent *IntentView, intentAudit IntentAuditView, authorizationAudit AuthorizationAudit) bool {
	if auth == nil || intent == nil {
		return false
	}
	if auth.IntentID != intent.IntentID {
		return false
	}
	if auth.Status != StatusAuthorized {
		return false
	}
	if intentAudit != nil && intentAudit.IsRevoked(intent.IntentID) {
		return false
	}
	if IsAuthorizationRevoked(auth.AuthorizationID, authorizationAudit) {
		return false
	}
	return true
}

// GetAuthorizationDecision maps an authorization's status to the binary
// decision downstream stages consume. AUTHORIZED is the only status that
// yields ALLOW; every other status, including a nil authorization,
// yields DENY (deny-by-default).
func GetAuthorizationDecision(auth *ExecutionAuthorization) AuthorizationDecision {
	if auth == nil {
		return Deny
	}
	if auth.Status == StatusAuthorized {
		return Allow
	}
	return Deny
}

// ValidateAuditChain mirrors the same templated routine used by
// observation, decision, and intent, parameterized by this package's own
// hash shape.
func ValidateAuditChain(audit AuthorizationAudit) bool {
	if len(audit.Records) == 0 {
		return audit.HeadHash == "" && audit.Length == 0
	}
	if audit.Length != len(audit.Records) {
		return false
	}
	if audit.HeadHash != hashchain.HeadHash(audit.Records) {
		return false
	}
	return hashchain.ValidateChain(audit.Records, authorizationAuditRecordHash)
}
