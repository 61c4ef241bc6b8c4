// Package policy holds the two external policy stubs readiness.DecideReadiness
// consumes as booleans: sandbox_policy_allows and native_policy_accepts.
// Neither evaluator is part of the decision core itself — they model the
// sandbox runtime and the native host policy as black boxes the core only
// ever reads a verdict from.
package policy

// SandboxPolicy reports whether the execution sandbox's own rules permit
// a plan of the given risk level to proceed. It never inspects plan
// contents — only a qualitative risk score already computed upstream.
type SandboxPolicy struct {
	maxAllowedRisk int
}

// NewSandboxPolicy constructs a SandboxPolicy that allows any risk level
// at or below maxAllowedRisk (planning.PlanRiskLevel's integer scale).
func NewSandboxPolicy(maxAllowedRisk int) *SandboxPolicy {
	return &SandboxPolicy{maxAllowedRisk: maxAllowedRisk}
}

// Allows reports whether risk is within the sandbox's configured ceiling.
func (p *SandboxPolicy) Allows(risk int) bool {
	return risk <= p.maxAllowedRisk
}

// NativePolicy models the host-side policy daemon's verdict on whether an
// orchestration intent may proceed. Represented here as a static
// allow/deny flag an operator sets; a production deployment would swap
// this for an actual native policy client without changing the readiness
// contract.
type NativePolicy struct {
	accepts bool
}

// NewNativePolicy constructs a NativePolicy fixed to accepts.
func NewNativePolicy(accepts bool) *NativePolicy {
	return &NativePolicy{accepts: accepts}
}

// Accepts reports the native policy's verdict.
func (p *NativePolicy) Accepts() bool {
	return p.accepts
}
