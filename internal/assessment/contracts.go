package assessment

import (
	"fmt"
	"strings"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// Language selects the output language of an assessment.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
)

// Valid reports whether the language is supported.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageGerman
}

// Rating classifies an opportunity by its weighted score.
type Rating string

const (
	RatingVeryPromising Rating = "very_promising"
	RatingPromising     Rating = "promising"
	RatingModerate      Rating = "moderate"
	RatingChallenging   Rating = "challenging"
	RatingCritical      Rating = "critical"
)

// validRatings is the set of known ratings for validation.
var validRatings = map[Rating]bool{
	RatingVeryPromising: true, RatingPromising: true, RatingModerate: true,
	RatingChallenging: true, RatingCritical: true,
}

// RatingForScore maps a weighted score onto a rating band.
func RatingForScore(score float64) Rating {
	switch {
	case score >= 4.5:
		return RatingVeryPromising
	case score >= 3.5:
		return RatingPromising
	case score >= 2.5:
		return RatingModerate
	case score >= 1.5:
		return RatingChallenging
	default:
		return RatingCritical
	}
}

// Request carries everything the assessor needs about one opportunity.
type Request struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Scoring     domain.Scoring `json:"scoring"`
	Answers     map[string]int `json:"answers,omitempty"`
	Language    Language       `json:"language"`
}

// Result is the structured assessment of a single opportunity.
type Result struct {
	Summary       string   `json:"summary"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	NextSteps     []string `json:"next_steps"`
	Pitfalls      []string `json:"pitfalls"`
	OverallRating Rating   `json:"overall_rating"`
	Score         float64  `json:"score"`
}

// ValidateResult checks minimal shape requirements on a model-produced result.
func ValidateResult(r Result) error {
	if strings.TrimSpace(r.Summary) == "" {
		return fmt.Errorf("summary must not be empty")
	}
	if !validRatings[r.OverallRating] {
		return fmt.Errorf("unknown rating %q", r.OverallRating)
	}
	return nil
}
