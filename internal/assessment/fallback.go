package assessment

import (
	"fmt"

	"github.com/marion-inge/bdnavigator/internal/domain"
)

// criterionLabels maps criterion keys to display names per language.
var criterionLabels = map[Language]map[domain.CriterionKey]string{
	LanguageEnglish: {
		domain.MarketAttractiveness: "market attractiveness",
		domain.StrategicFit:         "strategic fit",
		domain.Feasibility:          "feasibility",
		domain.CommercialViability:  "commercial viability",
		domain.Risk:                 "risk",
	},
	LanguageGerman: {
		domain.MarketAttractiveness: "Marktattraktivitaet",
		domain.StrategicFit:         "strategischer Fit",
		domain.Feasibility:          "Machbarkeit",
		domain.CommercialViability:  "kommerzielle Tragfaehigkeit",
		domain.Risk:                 "Risiko",
	},
}

// DeterministicAssess builds an assessment directly from the criterion
// scores without using the LLM. Used when the LLM is disabled.
func DeterministicAssess(req Request, score float64) *Result {
	labels := criterionLabels[LanguageEnglish]
	if req.Language == LanguageGerman {
		labels = criterionLabels[LanguageGerman]
	}

	result := &Result{
		Score:         score,
		OverallRating: RatingForScore(score),
	}

	for _, key := range domain.CriterionKeys {
		c := req.Scoring.ByKey(key)
		if c == nil {
			continue
		}
		label := labels[key]

		// Risk counts the other way round: a low score is a strength.
		favorable := c.Score
		if key == domain.Risk {
			favorable = 6 - c.Score
		}

		switch {
		case favorable >= 4:
			result.Strengths = append(result.Strengths, strengthLine(req.Language, label, c.Score))
		case favorable <= 2:
			result.Weaknesses = append(result.Weaknesses, weaknessLine(req.Language, label, c.Score))
		}
		if key == domain.Risk && c.Score >= 4 {
			result.Pitfalls = append(result.Pitfalls, pitfallLine(req.Language, c.Comment))
		}
	}

	result.Summary = summaryLine(req.Language, req.Title, score, result.OverallRating)
	result.NextSteps = nextSteps(req.Language, result.OverallRating)
	return result
}

func summaryLine(lang Language, title string, score float64, rating Rating) string {
	if lang == LanguageGerman {
		return fmt.Sprintf("%q erreicht einen gewichteten Score von %.1f von 5 und wird als %s eingestuft.",
			title, score, ratingLabelDE(rating))
	}
	return fmt.Sprintf("%q scores %.1f of 5 weighted and is rated %s.",
		title, score, ratingLabelEN(rating))
}

func strengthLine(lang Language, label string, score int) string {
	if lang == LanguageGerman {
		return fmt.Sprintf("Staerke bei %s (Bewertung %d von 5).", label, score)
	}
	return fmt.Sprintf("Strong %s (scored %d of 5).", label, score)
}

func weaknessLine(lang Language, label string, score int) string {
	if lang == LanguageGerman {
		return fmt.Sprintf("Schwaeche bei %s (Bewertung %d von 5).", label, score)
	}
	return fmt.Sprintf("Weak %s (scored %d of 5).", label, score)
}

func pitfallLine(lang Language, comment string) string {
	if comment != "" {
		return comment
	}
	if lang == LanguageGerman {
		return "Hohes Risiko ohne dokumentierte Begruendung; Risikotreiber klaeren."
	}
	return "High risk score without a documented reason; clarify the risk drivers."
}

func nextSteps(lang Language, rating Rating) []string {
	if lang == LanguageGerman {
		switch rating {
		case RatingVeryPromising, RatingPromising:
			return []string{
				"Detailbewertung mit Begruendungen und Datenquellen erstellen.",
				"Gate-Entscheidung mit dem verantwortlichen Gremium vorbereiten.",
			}
		case RatingModerate:
			return []string{
				"Die am schwaechsten bewerteten Kriterien mit zusaetzlichen Daten untermauern.",
				"Bewertung nach der Recherche wiederholen.",
			}
		default:
			return []string{
				"Kritische Schwaechen pruefen, bevor weitere Ressourcen gebunden werden.",
				"Einstellung der Verfolgung als Option bewerten.",
			}
		}
	}
	switch rating {
	case RatingVeryPromising, RatingPromising:
		return []string{
			"Prepare a detailed scoring with justifications and data sources.",
			"Line up the gate decision with the responsible committee.",
		}
	case RatingModerate:
		return []string{
			"Back the weakest-scored criteria with additional data.",
			"Re-score after the research is done.",
		}
	default:
		return []string{
			"Review the critical weaknesses before committing further resources.",
			"Evaluate dropping the opportunity as an option.",
		}
	}
}

func ratingLabelEN(r Rating) string {
	switch r {
	case RatingVeryPromising:
		return "very promising"
	case RatingPromising:
		return "promising"
	case RatingModerate:
		return "moderate"
	case RatingChallenging:
		return "challenging"
	default:
		return "critical"
	}
}

func ratingLabelDE(r Rating) string {
	switch r {
	case RatingVeryPromising:
		return "sehr vielversprechend"
	case RatingPromising:
		return "vielversprechend"
	case RatingModerate:
		return "durchwachsen"
	case RatingChallenging:
		return "herausfordernd"
	default:
		return "kritisch"
	}
}
