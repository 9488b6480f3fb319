package domain

// SWOT holds the four strategic-analysis lists.
type SWOT struct {
	Strengths     []string `json:"strengths,omitempty"`
	Weaknesses    []string `json:"weaknesses,omitempty"`
	Opportunities []string `json:"opportunities,omitempty"`
	Threats       []string `json:"threats,omitempty"`
}

// Analysis collects the strategic-analysis artifacts attached to an
// opportunity. All fields are optional; empty values mean the analysis has
// not been done yet.
type Analysis struct {
	SWOT   SWOT           `json:"swot"`
	BCG    BCGQuadrant    `json:"bcg,omitempty"`
	Ansoff AnsoffQuadrant `json:"ansoff,omitempty"`
}

// Empty reports whether no analysis artifact has been recorded at all.
func (a Analysis) Empty() bool {
	return a.BCG == "" && a.Ansoff == "" &&
		len(a.SWOT.Strengths) == 0 && len(a.SWOT.Weaknesses) == 0 &&
		len(a.SWOT.Opportunities) == 0 && len(a.SWOT.Threats) == 0
}
