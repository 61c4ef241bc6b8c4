// Package hashchain holds the canonical hashing and audit-chain
// verification primitives shared by every pipeline stage.
//
// Every ledger in this module (evidence, decision, intent, authorization)
// follows the same discipline: records are appended, never mutated; each
// record's self-hash is a SHA-256 digest over its own fields plus the
// previous record's self-hash; a chain's head_hash is the last record's
// self-hash. This file is the ONLY place that discipline is implemented.
package hashchain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// sep is the canonical preimage field separator.
const sep = 0x00

// Sum computes the canonical SHA-256 hex digest over parts joined with a
// single 0x00 separator. Callers pass raw bytes — string components must
// already be UTF-8 encoded; opaque payloads (e.g. evidence raw_data) are
// hashed as-is, with no additional encoding layer.
func Sum(parts ...[]byte) string {
	digest := sha256.Sum256(bytes.Join(parts, []byte{sep}))
	return hex.EncodeToString(digest[:])
}

// SumStrings is a convenience wrapper over Sum for all-string preimages.
func SumStrings(parts ...string) string {
	raw := make([][]byte, len(parts))
	for i, p := range parts {
		raw[i] = []byte(p)
	}
	return Sum(raw...)
}

// Link is satisfied by any ledger record exposing its position in a hash
// chain. Method name is deliberately distinct from the record's own
// PriorHash/SelfHash fields — Go does not allow a field and method of the
// same name on one type.
type Link interface {
	HashLinks() (prior, self string)
}

// ValidateChain recomputes every record's self-hash via recompute and
// checks prior_hash linkage. It implements the one algorithm that backs
// every audit chain's validation, used identically by evidence, decision,
// intent, and authorization audits: a missing/altered prior_hash link or a
// mismatched recomputed hash fails the whole chain. An empty chain is
// always valid — callers additionally check length/head_hash against
// their own record slice since those live on the containing Audit/Chain
// value, not on hashchain.Link.
func ValidateChain[R Link](records []R, recompute func(R) string) bool {
	prior := ""
	for _, r := range records {
		p, self := r.HashLinks()
		if p != prior {
			return false
		}
		if recompute(r) != self {
			return false
		}
		prior = self
	}
	return true
}

// HeadHash returns the self-hash of the last record, or "" for an empty
// sequence.
func HeadHash[R Link](records []R) string {
	if len(records) == 0 {
		return ""
	}
	_, self := records[len(records)-1].HashLinks()
	return self
}

// AppendRecord returns a new slice containing records plus r. It never
// reuses records' backing array: a plain `append(records, r)` can alias a
// prior Audit value's backing array when spare capacity exists, silently
// corrupting a value the caller believes is immutable.
func AppendRecord[R any](records []R, r R) []R {
	out := make([]R, len(records)+1)
	copy(out, records)
	out[len(records)] = r
	return out
}
