package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PortfolioSchema is the top-level JSON structure for portfolio import and
// export. The same shape is produced by Export, so an exported file can be
// re-imported unchanged.
type PortfolioSchema struct {
	Opportunities []OpportunityImport `json:"opportunities"`
}

// OpportunityImport defines one opportunity in the portfolio file. IDs and
// timestamps are assigned at import time, never carried in the file.
type OpportunityImport struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Geography   string `json:"geography,omitempty"`
	Technology  string `json:"technology,omitempty"`
	Owner       string `json:"owner,omitempty"`

	Stage        string              `json:"stage,omitempty"`
	Scoring      *ScoringImport      `json:"scoring,omitempty"`
	Detailed     *DetailedImport     `json:"detailedScoring,omitempty"`
	BusinessCase *BusinessCaseImport `json:"businessCase,omitempty"`
	Analysis     *AnalysisImport     `json:"analysis,omitempty"`
	Gates        []GateImport        `json:"gates,omitempty"`
}

// CriterionImport is one rough-scoring dimension in the file.
type CriterionImport struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// ScoringImport defines the five-criterion rough scoring in the file.
type ScoringImport struct {
	MarketAttractiveness CriterionImport `json:"marketAttractiveness"`
	StrategicFit         CriterionImport `json:"strategicFit"`
	Feasibility          CriterionImport `json:"feasibility"`
	CommercialViability  CriterionImport `json:"commercialViability"`
	Risk                 CriterionImport `json:"risk"`
}

// DetailedCriterionImport is one detailed-scoring dimension in the file.
type DetailedCriterionImport struct {
	Score         int      `json:"score"`
	Justification string   `json:"justification,omitempty"`
	DataSources   []string `json:"dataSources,omitempty"`
}

// DetailedImport defines the detailed scoring section in the file.
type DetailedImport struct {
	MarketAttractiveness DetailedCriterionImport `json:"marketAttractiveness"`
	StrategicFit         DetailedCriterionImport `json:"strategicFit"`
	Feasibility          DetailedCriterionImport `json:"feasibility"`
	CommercialViability  DetailedCriterionImport `json:"commercialViability"`
	Risk                 DetailedCriterionImport `json:"risk"`
}

// PlanYearImport is one planning year of the business case.
type PlanYearImport struct {
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
}

// BusinessCaseImport defines the business case section in the file. Years
// must cover the full planning horizon in order.
type BusinessCaseImport struct {
	Investment  float64          `json:"investment"`
	Years       []PlanYearImport `json:"years"`
	Assumptions string           `json:"assumptions,omitempty"`
}

// AnalysisImport defines the strategic-analysis section in the file.
type AnalysisImport struct {
	Strengths     []string `json:"strengths,omitempty"`
	Weaknesses    []string `json:"weaknesses,omitempty"`
	Opportunities []string `json:"opportunities,omitempty"`
	Threats       []string `json:"threats,omitempty"`
	BCG           string   `json:"bcg,omitempty"`
	Ansoff        string   `json:"ansoff,omitempty"`
}

// GateImport defines one historical gate decision in the file. DecidedAt uses
// the YYYY-MM-DD date format.
type GateImport struct {
	Gate      string `json:"gate"`
	Decision  string `json:"decision"`
	Decider   string `json:"decider"`
	Comment   string `json:"comment,omitempty"`
	DecidedAt string `json:"decidedAt"`
}

// LoadPortfolio reads and parses a portfolio JSON file.
func LoadPortfolio(path string) (*PortfolioSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema PortfolioSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing portfolio file: %w", err)
	}
	return &schema, nil
}

// SavePortfolio writes a portfolio schema as indented JSON.
func SavePortfolio(path string, schema *PortfolioSchema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
