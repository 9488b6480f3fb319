package stagegate

import "errors"

var (
	// ErrInvalidTransition indicates an advance from a stage that has no
	// simple forward move (gates and terminal stages).
	ErrInvalidTransition = errors.New("invalid stage transition")

	// ErrNotAGateStage indicates a gate decision submitted while the
	// opportunity is not sitting at that gate.
	ErrNotAGateStage = errors.New("opportunity is not at this gate")

	// ErrDeciderRequired indicates a gate decision without a decider name.
	ErrDeciderRequired = errors.New("decider name is required")

	// ErrInvalidDecision indicates an unknown gate or decision value.
	ErrInvalidDecision = errors.New("invalid gate decision")

	// ErrGateRecordNotFound indicates an edit or delete of a gate record id
	// that does not exist on the opportunity.
	ErrGateRecordNotFound = errors.New("gate record not found")
)
