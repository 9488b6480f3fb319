// Package stagegate implements the stage-gate state machine: the legal stage
// sequence, the meaning of go/hold/no-go decisions, and safe reversal. All
// functions here are pure transitions over an in-memory Opportunity; callers
// persist the whole document afterwards.
package stagegate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// DecisionInput is one gate decision as submitted by the user.
type DecisionInput struct {
	Gate     domain.GateID
	Decision domain.Decision
	Decider  string
	Comment  string
}

// Advance moves the opportunity one stage forward without a gate decision.
//
// Gates themselves cannot be advanced past (they need a decision), and the
// terminal stages go_to_market and closed cannot be advanced from. Entering
// detailed_scoring or business_case lazily initializes the corresponding
// section with defaults.
func Advance(o *domain.Opportunity, now time.Time) error {
	idx := domain.StageIndex(o.Stage)
	if idx < 0 {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidTransition, o.Stage)
	}
	if o.Stage.IsGate() {
		return fmt.Errorf("%w: stage %s requires a gate decision", ErrInvalidTransition, o.Stage)
	}
	if o.Stage == domain.StageGoToMarket || o.Stage == domain.StageClosed {
		return fmt.Errorf("%w: stage %s is terminal", ErrInvalidTransition, o.Stage)
	}

	enterStage(o, domain.StageOrder[idx+1], now)
	return nil
}

// Decide submits a go/hold/no-go decision at a gate. A GateRecord with a
// fresh identity and the current timestamp is always appended, whichever
// branch fires; hold logs the decision without a transition. The appended
// record is returned.
func Decide(o *domain.Opportunity, in DecisionInput, now time.Time) (*domain.GateRecord, error) {
	if !in.Gate.Valid() {
		return nil, fmt.Errorf("%w: unknown gate %q", ErrInvalidDecision, in.Gate)
	}
	if !in.Decision.Valid() {
		return nil, fmt.Errorf("%w: unknown decision %q", ErrInvalidDecision, in.Decision)
	}
	if o.Stage != in.Gate.Stage() {
		return nil, fmt.Errorf("%w: opportunity is at %s, gate is %s", ErrNotAGateStage, o.Stage, in.Gate)
	}
	if strings.TrimSpace(in.Decider) == "" {
		return nil, ErrDeciderRequired
	}

	rec := domain.GateRecord{
		ID:        uuid.New().String(),
		Gate:      in.Gate,
		Decision:  in.Decision,
		Comment:   in.Comment,
		Decider:   in.Decider,
		DecidedAt: now,
	}
	o.Gates = append(o.Gates, rec)

	switch in.Decision {
	case domain.DecisionGo:
		enterStage(o, stageAfterGo(in.Gate), now)
	case domain.DecisionNoGo:
		o.Stage = domain.StageClosed
		o.UpdatedAt = now
	case domain.DecisionHold:
		o.UpdatedAt = now
	}

	return &o.Gates[len(o.Gates)-1], nil
}

// Revert moves the opportunity to the immediate predecessor stage and prunes
// gate records whose gate now lies at or beyond the reverted-to stage.
// Reverting from the first stage is a no-op.
func Revert(o *domain.Opportunity, now time.Time) error {
	idx := domain.StageIndex(o.Stage)
	if idx < 0 {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidTransition, o.Stage)
	}
	if idx == 0 {
		return nil
	}

	newStage := domain.StageOrder[idx-1]
	newIdx := idx - 1

	kept := o.Gates[:0]
	for _, g := range o.Gates {
		if domain.StageIndex(g.Gate.Stage()) < newIdx {
			kept = append(kept, g)
		}
	}
	o.Gates = kept
	o.Stage = newStage
	o.UpdatedAt = now
	return nil
}

// EditGate changes the decision, comment and decider of an existing gate
// record in place, preserving its identity and timestamp. The stage is
// deliberately not recomputed; editing history does not replay transitions.
func EditGate(o *domain.Opportunity, id string, decision domain.Decision, decider, comment string, now time.Time) error {
	if !decision.Valid() {
		return fmt.Errorf("%w: unknown decision %q", ErrInvalidDecision, decision)
	}
	if strings.TrimSpace(decider) == "" {
		return ErrDeciderRequired
	}
	i := o.GateByID(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrGateRecordNotFound, id)
	}
	o.Gates[i].Decision = decision
	o.Gates[i].Decider = decider
	o.Gates[i].Comment = comment
	o.UpdatedAt = now
	return nil
}

// DeleteGate removes a gate record by id. As with EditGate the stage is left
// untouched.
func DeleteGate(o *domain.Opportunity, id string, now time.Time) error {
	i := o.GateByID(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrGateRecordNotFound, id)
	}
	o.Gates = append(o.Gates[:i], o.Gates[i+1:]...)
	o.UpdatedAt = now
	return nil
}

// stageAfterGo maps a gate to the stage a "go" decision moves into.
func stageAfterGo(g domain.GateID) domain.Stage {
	switch g {
	case domain.Gate1:
		return domain.StageDetailedScoring
	case domain.Gate2:
		return domain.StageBusinessCase
	default:
		return domain.StageGoToMarket
	}
}

// enterStage sets the new stage and runs the lazy-initialization side
// effects tied to entering certain stages.
func enterStage(o *domain.Opportunity, s domain.Stage, now time.Time) {
	o.Stage = s
	o.UpdatedAt = now

	if s == domain.StageDetailedScoring && o.Detailed == nil {
		o.Detailed = domain.DefaultDetailedScoring()
	}
	if s == domain.StageBusinessCase && o.BusinessCase == nil {
		o.BusinessCase = domain.DefaultBusinessCase()
	}
}
