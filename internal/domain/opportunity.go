package domain

import "time"

// GateRecord is one logged go/hold/no-go decision. Records are immutable once
// created except through the explicit edit and delete operations.
type GateRecord struct {
	ID        string    `json:"id"`
	Gate      GateID    `json:"gate"`
	Decision  Decision  `json:"decision"`
	Comment   string    `json:"comment,omitempty"`
	Decider   string    `json:"decider"`
	DecidedAt time.Time `json:"decidedAt"`
}

// Opportunity is one tracked business idea moving through the stage-gate
// pipeline. It is persisted as a whole document; all mutation happens on an
// in-memory copy followed by a full upsert.
type Opportunity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Geography   string `json:"geography,omitempty"`
	Technology  string `json:"technology,omitempty"`
	Owner       string `json:"owner,omitempty"`

	Stage        Stage            `json:"stage"`
	Scoring      Scoring          `json:"scoring"`
	Detailed     *DetailedScoring `json:"detailedScoring,omitempty"`
	BusinessCase *BusinessCase    `json:"businessCase,omitempty"`
	Analysis     Analysis         `json:"analysis"`
	Gates        []GateRecord     `json:"gates"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GateByID returns the index of the gate record with the given id, or -1.
func (o *Opportunity) GateByID(id string) int {
	for i, g := range o.Gates {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// DisplayID truncates the UUID to 8 characters for terminal output.
func (o *Opportunity) DisplayID() string {
	if len(o.ID) >= 8 {
		return o.ID[:8]
	}
	return o.ID
}
