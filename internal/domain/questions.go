package domain

import "math"

// Question is one entry of the guided scoring questionnaire. Answers use the
// same 1..5 scale as direct criterion entry.
type Question struct {
	ID        string       `json:"id"`
	Criterion CriterionKey `json:"criterion"`
	Text      string       `json:"text"`
}

// QuestionCatalog is the fixed 20-question guided questionnaire, four
// questions per criterion.
var QuestionCatalog = []Question{
	{ID: "ma1", Criterion: MarketAttractiveness, Text: "How large is the addressable market for this idea?"},
	{ID: "ma2", Criterion: MarketAttractiveness, Text: "How strongly is the target market growing?"},
	{ID: "ma3", Criterion: MarketAttractiveness, Text: "How weak is the competitive pressure in this market?"},
	{ID: "ma4", Criterion: MarketAttractiveness, Text: "How urgent is the customer problem this idea solves?"},

	{ID: "sf1", Criterion: StrategicFit, Text: "How well does the idea match the company's strategic direction?"},
	{ID: "sf2", Criterion: StrategicFit, Text: "How much does the idea build on existing competencies?"},
	{ID: "sf3", Criterion: StrategicFit, Text: "How well does the idea fit the existing customer base?"},
	{ID: "sf4", Criterion: StrategicFit, Text: "How strongly would the idea reinforce the brand position?"},

	{ID: "fe1", Criterion: Feasibility, Text: "How mature is the required technology?"},
	{ID: "fe2", Criterion: Feasibility, Text: "How available are the required skills in the team?"},
	{ID: "fe3", Criterion: Feasibility, Text: "How realistic is the implementation timeline?"},
	{ID: "fe4", Criterion: Feasibility, Text: "How manageable are the regulatory requirements?"},

	{ID: "cv1", Criterion: CommercialViability, Text: "How attainable are sustainable margins?"},
	{ID: "cv2", Criterion: CommercialViability, Text: "How clear is the willingness of customers to pay?"},
	{ID: "cv3", Criterion: CommercialViability, Text: "How scalable is the business model?"},
	{ID: "cv4", Criterion: CommercialViability, Text: "How acceptable is the required upfront investment?"},

	{ID: "ri1", Criterion: Risk, Text: "How high is the risk of technology failure?"},
	{ID: "ri2", Criterion: Risk, Text: "How high is the market entry risk?"},
	{ID: "ri3", Criterion: Risk, Text: "How high is the dependency on single partners or suppliers?"},
	{ID: "ri4", Criterion: Risk, Text: "How high is the risk of competitors reacting aggressively?"},
}

// AnswersToScoring reduces questionnaire answers to a full scoring.
//
// For each criterion the answered questions (value >= 1) are averaged and the
// average rounded to the nearest integer, half up. Criteria with no answered
// questions keep their value from base. The result always has all five
// criteria populated. Pure: the same answers map always yields the same
// scoring.
func AnswersToScoring(answers map[string]int, questions []Question, base Scoring) Scoring {
	sums := make(map[CriterionKey]int)
	counts := make(map[CriterionKey]int)
	for _, q := range questions {
		v, ok := answers[q.ID]
		if !ok || v <= 0 {
			continue
		}
		sums[q.Criterion] += v
		counts[q.Criterion]++
	}

	out := base
	for _, k := range CriterionKeys {
		n := counts[k]
		if n == 0 {
			continue
		}
		avg := float64(sums[k]) / float64(n)
		out.ByKey(k).Score = int(math.Round(avg))
	}
	return out
}
