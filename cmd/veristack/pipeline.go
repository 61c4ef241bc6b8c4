package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"veristack/capability"
	"veristack/core/authorization"
	"veristack/core/decision"
	"veristack/core/instructions"
	"veristack/core/intent"
	"veristack/core/observation"
	"veristack/core/orchestration"
	"veristack/core/planning"
	"veristack/core/policy"
	"veristack/core/readiness"
)

// -----------------------------------------------------------------------------
// PIPELINE COMMAND — DEMONSTRATION DRIVE THROUGH ALL SEVEN STAGES
//
// Each stage is invoked explicitly and in order. Nothing here auto-
// progresses on behalf of a human: the accept-decision step below stands
// in for a human's choice, supplied via --decision instead of read from
// an interactive prompt, because this is a CLI demonstration harness, not
// the human interface itself.
// -----------------------------------------------------------------------------

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Drive a single session through all seven authorization stages",
}

var pipelineRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one session end-to-end and report the resulting instruction envelope",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		humanDecision, _ := cmd.Flags().GetString("decision")
		humanID, _ := cmd.Flags().GetString("human")
		humanPresent, _ := cmd.Flags().GetBool("human-present")

		if err := capability.LoadFromFile(catalogPath); err != nil {
			return fmt.Errorf("load capability catalog: %w", err)
		}

		now := func() string { return time.Now().UTC().Format(time.RFC3339Nano) }

		// 1. Observation
		ctx := observation.AttachObserver("LOOP-1", "EXEC-1", "envelope-hash-0", now())
		if ctx.IsHalted {
			return fmt.Errorf("observation context halted on attach")
		}

		var chain observation.EvidenceChain
		chain = observation.CaptureEvidence(ctx, observation.PointPreDispatch, observation.TypeStateTransition, []byte("session started"), now(), chain)
		if !observation.ValidateChain(chain) {
			return fmt.Errorf("evidence chain failed validation")
		}
		fmt.Printf("[observation] chain_length=%d head_hash=%s\n", chain.Length, chain.HeadHash)

		// 2. Decision
		request := decision.CreateRequest(ctx.SessionID, string(observation.PointPreDispatch), string(observation.TypeStateTransition), now(), chain.Length, "RUNNING", 0.8, chain.HeadHash, now(), now())

		var decisionRecord decision.DecisionRecord
		var err error
		switch humanDecision {
		case "RETRY":
			decisionRecord, err = decision.AcceptDecision(request, decision.DecisionRetry, humanID, "operator requested retry", "", now())
		case "ESCALATE":
			decisionRecord, err = decision.AcceptDecision(request, decision.DecisionEscalate, humanID, "needs review", "on-call-lead", now())
		case "ABORT":
			decisionRecord, err = decision.AcceptDecision(request, decision.DecisionAbort, humanID, "", "", now())
		default:
			decisionRecord, err = decision.AcceptDecision(request, decision.DecisionContinue, humanID, "", "", now())
		}
		if err != nil {
			return fmt.Errorf("accept decision: %w", err)
		}

		var decisionAudit decision.DecisionAudit
		decisionAudit = decision.RecordDecision(decisionAudit, decisionRecord)
		fmt.Printf("[decision] decision=%s outcome=%s\n", decisionRecord.Decision, decision.ApplyDecision(decisionRecord, "RUNNING", 0, 3))

		// 3. Intent binding
		bindingResult, execIntent := intent.BindDecision(&intent.DecisionRecordView{
			DecisionID:        decisionRecord.DecisionID,
			HumanID:           decisionRecord.HumanID,
			Decision:          string(decisionRecord.Decision),
			EvidenceChainHash: decisionRecord.EvidenceChainHash,
		}, ctx.SessionID, "RUNNING", now(), "system")
		if bindingResult != intent.BindingSuccess {
			return fmt.Errorf("intent binding did not succeed: %s", bindingResult)
		}

		var intentAudit intent.IntentAudit
		intentAudit, err = intent.RecordIntent(intentAudit, execIntent.IntentID, intent.RecordBinding, now())
		if err != nil {
			return fmt.Errorf("record intent: %w", err)
		}
		fmt.Printf("[intent] intent_id=%s\n", execIntent.IntentID)

		// 4. Authorization
		authDecision, auth := authorization.AuthorizeExecution(&authorization.IntentView{
			IntentID:          execIntent.IntentID,
			DecisionID:        execIntent.DecisionID,
			DecisionType:      execIntent.DecisionType,
			EvidenceChainHash: execIntent.EvidenceChainHash,
			SessionID:         execIntent.SessionID,
			ExecutionState:    execIntent.ExecutionState,
			CreatedAt:         execIntent.CreatedAt,
			CreatedBy:         execIntent.CreatedBy,
			IntentHash:        execIntent.IntentHash,
		}, intentAuditView{intentAudit}, "system", now())
		if authDecision != authorization.Allow {
			return fmt.Errorf("authorization denied")
		}

		var authAudit authorization.AuthorizationAudit
		authAudit, err = authorization.RecordAuthorization(authAudit, auth.AuthorizationID, authorization.RecordTypeAuthorization, now())
		if err != nil {
			return fmt.Errorf("record authorization: %w", err)
		}
		fmt.Printf("[authorization] authorization_id=%s status=%s\n", auth.AuthorizationID, auth.Status)

		// 5. Planning
		plan := planning.ExecutionPlan{
			PlanID: "PLAN-" + execIntent.IntentID,
			Steps: []planning.ActionPlanStep{
				{StepID: "s1", ActionType: planning.ActionNavigate, RiskLevel: planning.RiskLow},
				{StepID: "s2", ActionType: planning.ActionClick, RiskLevel: planning.RiskLow},
				{StepID: "s3", ActionType: planning.ActionUpload, RiskLevel: planning.RiskHigh},
			},
		}
		planResult := planning.DecidePlanAcceptance(planning.PlanValidationContext{
			Plan:         plan,
			Capabilities: capability.AllowedSet(),
			HumanPresent: humanPresent,
		})
		fmt.Printf("[planning] decision=%s reason=%q\n", planResult.Decision, planResult.Reason)
		if planResult.Decision != planning.PlanAccept {
			return fmt.Errorf("plan not accepted: %s", planResult.Reason)
		}

		// 6. Orchestration & Readiness
		orchIntent := orchestration.BindPlanToIntent(plan, planResult, capability.AllowedSet(), []string{"dom-snapshot", "network-log"}, execIntent.IntentID, now())
		orchIntent = orchestration.SealOrchestrationIntent(orchIntent)
		orchResult := orchestration.DecideOrchestration(orchIntent, orchestration.OrchestrationContext{HumanPresent: humanPresent})
		fmt.Printf("[orchestration] decision=%s reason=%q\n", orchResult.Decision, orchResult.Reason)
		if orchResult.Decision != orchestration.OrchestrationAccept {
			return fmt.Errorf("orchestration rejected: %s", orchResult.Reason)
		}

		sandbox := policy.NewSandboxPolicy(int(planning.RiskHigh))
		native := policy.NewNativePolicy(true)
		readinessResult := readiness.DecideReadiness(readiness.ReadinessContext{
			OrchestrationIntent:        orchIntent,
			CapabilityResultAccepted:   true,
			SandboxPolicyAllows:        sandbox.Allows(int(planning.ValidatePlanRisk(plan))),
			NativePolicyAccepts:        native.Accepts(),
			EvidenceVerificationPassed: true,
			HumanPresent:               humanPresent,
		})
		fmt.Printf("[readiness] decision=%s state=%s reason=%q\n", readinessResult.Decision, readinessResult.State, readinessResult.Reason)
		if readinessResult.Decision != readiness.Allow {
			return fmt.Errorf("not ready: %s", readinessResult.Reason)
		}

		// 7. Instructions
		instrs := instructions.SynthesizeInstructions(orchIntent)
		envelope := instructions.CreateInstructionEnvelope(orchIntent, instrs, chain.HeadHash)
		envelope = instructions.SealInstructionEnvelope(envelope)
		valid := instructions.ValidateInstructionEnvelope(envelope, orchIntent)
		fmt.Printf("[instructions] instruction_count=%d (plan had %d steps) envelope_hash=%s valid=%v\n",
			len(envelope.Instructions), len(plan.Steps), envelope.EnvelopeHash, valid)

		return nil
	},
}

// intentAuditView adapts intent.IntentAudit to authorization.IntentAuditView
// without either package importing the other's concrete types.
type intentAuditView struct {
	audit intent.IntentAudit
}

func (v intentAuditView) IsRevoked(intentID string) bool {
	return intent.IsIntentRevoked(intentID, v.audit)
}

func init() {
	pipelineRunCmd.Flags().String("catalog", "config/capabilities.yaml", "path to the capability catalog YAML file")
	pipelineRunCmd.Flags().String("decision", "CONTINUE", "human decision to simulate: CONTINUE, RETRY, ABORT, ESCALATE")
	pipelineRunCmd.Flags().String("human", "operator-1", "human_id recorded on the decision")
	pipelineRunCmd.Flags().Bool("human-present", true, "whether a human is present to approve HIGH-risk plans")

	pipelineCmd.AddCommand(pipelineRunCmd)
	rootCmd.AddCommand(pipelineCmd)
}
