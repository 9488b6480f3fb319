package domain

type Stage string

const (
	StageIdea            Stage = "idea"
	StageRoughScoring    Stage = "rough_scoring"
	StageGate1           Stage = "gate1"
	StageDetailedScoring Stage = "detailed_scoring"
	StageGate2           Stage = "gate2"
	StageBusinessCase    Stage = "business_case"
	StageGate3           Stage = "gate3"
	StageGoToMarket      Stage = "go_to_market"
	StageClosed          Stage = "closed"
)

// StageOrder is the canonical pipeline sequence. Stage transitions only move
// forward through this order via advance or a gate "go" decision, and backward
// only via an explicit revert.
var StageOrder = []Stage{
	StageIdea,
	StageRoughScoring,
	StageGate1,
	StageDetailedScoring,
	StageGate2,
	StageBusinessCase,
	StageGate3,
	StageGoToMarket,
	StageClosed,
}

// StageIndex returns the position of s in StageOrder, or -1 for unknown stages.
func StageIndex(s Stage) int {
	for i, st := range StageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// IsGate reports whether s is one of the three decision checkpoints.
func (s Stage) IsGate() bool {
	return s == StageGate1 || s == StageGate2 || s == StageGate3
}

// Valid reports whether s is a known pipeline stage.
func (s Stage) Valid() bool {
	return StageIndex(s) >= 0
}

type GateID string

const (
	Gate1 GateID = "gate1"
	Gate2 GateID = "gate2"
	Gate3 GateID = "gate3"
)

// Stage returns the pipeline stage at which this gate is decided.
func (g GateID) Stage() Stage {
	return Stage(g)
}

// Valid reports whether g is a known gate.
func (g GateID) Valid() bool {
	return g == Gate1 || g == Gate2 || g == Gate3
}

type Decision string

const (
	DecisionGo   Decision = "go"
	DecisionHold Decision = "hold"
	DecisionNoGo Decision = "no-go"
)

// Valid reports whether d is a known gate decision.
func (d Decision) Valid() bool {
	return d == DecisionGo || d == DecisionHold || d == DecisionNoGo
}

type BCGQuadrant string

const (
	BCGStar         BCGQuadrant = "star"
	BCGCashCow      BCGQuadrant = "cash_cow"
	BCGQuestionMark BCGQuadrant = "question_mark"
	BCGDog          BCGQuadrant = "dog"
)

type AnsoffQuadrant string

const (
	AnsoffMarketPenetration  AnsoffQuadrant = "market_penetration"
	AnsoffMarketDevelopment  AnsoffQuadrant = "market_development"
	AnsoffProductDevelopment AnsoffQuadrant = "product_development"
	AnsoffDiversification    AnsoffQuadrant = "diversification"
)
