package domain

import "time"

// Operation names a lifecycle direction.
type Operation string

const (
	OpInstall   Operation = "install"
	OpUninstall Operation = "uninstall"
)

// Step identifies one stage of an orchestration run. Aborted results
// carry the failing step so the CLI can name it.
type Step string

const (
	StepResolve       Step = "resolve locations"
	StepVerify        Step = "verify installed binary"
	StepFetchSource   Step = "fetch working copy"
	StepBuild         Step = "build artifact"
	StepPlaceBinary   Step = "place binary"
	StepProvisionRoot Step = "provision install root"
	StepProfile       Step = "edit shell profile"
	StepProductInit   Step = "product init"
	StepProductReset  Step = "product reset"
	StepRemoveBinary  Step = "remove binary"
	StepRemoveBinDir  Step = "remove bin directory"
	StepRemoveData    Step = "remove data directory"
	StepRemoveRoot    Step = "remove install root"
)

// RunState is the per-run state machine: Start -> Resolving -> Executing
// -> {Succeeded | Aborted}. No retries; each step runs at most once.
type RunState string

const (
	StateStart     RunState = "start"
	StateResolving RunState = "resolving"
	StateExecuting RunState = "executing"
	StateSucceeded RunState = "succeeded"
	StateAborted   RunState = "aborted"
)

// Outcome is the terminal classification of a run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeAborted Outcome = "aborted"
	// OutcomePartial marks a run that completed its mandatory steps but
	// accrued warnings from best-effort ones (e.g. product reset).
	OutcomePartial Outcome = "partial-failure"
)

// Warning records a non-fatal failure of an optional step.
type Warning struct {
	Step Step
	Err  error
}

// LifecycleResult is the terminal outcome of an orchestration run.
// Created once at the end of a run; never mutated afterwards.
type LifecycleResult struct {
	Operation  Operation
	Outcome    Outcome
	Locations  InstallLocations
	FailedStep Step
	Err        error
	Warnings   []Warning
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the run reached a terminal success state,
// with or without warnings.
func (r LifecycleResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess || r.Outcome == OutcomePartial
}
