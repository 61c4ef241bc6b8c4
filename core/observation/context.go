package observation

import (
	"strings"

	"github.com/google/uuid"
)

// ObservationContext is the session descriptor an observer is attached to.
// AttachObserver never fails outright — it fails CLOSED by producing an
// already-halted context instead, so downstream capture calls always have
// a well-formed value to reason about.
type ObservationContext struct {
	SessionID    string
	LoopID       string
	ExecutorID   string
	EnvelopeHash string
	CreatedAt    string
	IsHalted     bool
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// AttachObserver constructs an ObservationContext for a loop/executor pair.
// Any empty or whitespace-only input produces a context with IsHalted =
// true; all other inputs produce IsHalted = false. This function always
// returns a well-formed context — it never fails.
func AttachObserver(loopID, executorID, envelopeHash, timestamp string) ObservationContext {
	halted := isBlank(loopID) || isBlank(executorID) || isBlank(envelopeHash) || isBlank(timestamp)

	return ObservationContext{
		SessionID:    "SESSION-" + uuid.NewString(),
		LoopID:       loopID,
		ExecutorID:   executorID,
		EnvelopeHash: envelopeHash,
		CreatedAt:    timestamp,
		IsHalted:     halted,
	}
}

// StopFlags carries the externally-observed failure states for the nine
// stop conditions that are not structurally derivable from the context
// itself (CONTEXT_UNINITIALIZED is derived from ctx.SessionID). Callers
// (the external execution loop) own computing these booleans; Observation
// only aggregates them into a halt decision.
type StopFlags struct {
	MissingAuthorization  bool
	ExecutorNotRegistered bool
	EnvelopeHashMismatch  bool
	EvidenceChainBroken   bool
	ResourceLimitExceeded bool
	TimestampInvalid      bool
	PriorExecutionPending bool
	AmbiguousIntent       bool
	HumanAbort            bool
}

// CheckStop evaluates one named stop condition against a context and its
// externally-supplied flags. It returns true (HALT) when the context is
// nil, the context is already halted, or the flag parameter corresponding
// to condition indicates the failure state. Unknown conditions default to
// HALT — deny-by-default.
func CheckStop(ctx *ObservationContext, condition StopCondition, flags StopFlags) bool {
	if ctx == nil {
		return true
	}
	if ctx.IsHalted {
		return true
	}

	switch condition {
	case StopMissingAuthorization:
		return flags.MissingAuthorization
	case StopExecutorNotRegistered:
		return flags.ExecutorNotRegistered
	case StopEnvelopeHashMismatch:
		return flags.EnvelopeHashMismatch
	case StopContextUninitialized:
		return isBlank(ctx.SessionID)
	case StopEvidenceChainBroken:
		return flags.EvidenceChainBroken
	case StopResourceLimitExceeded:
		return flags.ResourceLimitExceeded
	case StopTimestampInvalid:
		return flags.TimestampInvalid
	case StopPriorExecutionPending:
		return flags.PriorExecutionPending
	case StopAmbiguousIntent:
		return flags.AmbiguousIntent
	case StopHumanAbort:
		return flags.HumanAbort
	default:
		return true
	}
}
