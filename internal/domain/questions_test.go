package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionCatalog_FourPerCriterion(t *testing.T) {
	counts := make(map[CriterionKey]int)
	seen := make(map[string]bool)
	for _, q := range QuestionCatalog {
		counts[q.Criterion]++
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
	}
	require.Len(t, QuestionCatalog, 20)
	for _, k := range CriterionKeys {
		assert.Equal(t, 4, counts[k], "criterion %s", k)
	}
}

func TestAnswersToScoring_AveragesAnswered(t *testing.T) {
	answers := map[string]int{
		"ma1": 5, "ma2": 4, // avg 4.5 -> 5 (half up)
		"sf1": 2, "sf2": 3, "sf3": 3, // avg 2.67 -> 3
		"ri1": 5, "ri2": 5, "ri3": 4, "ri4": 4, // avg 4.5 -> 5
	}
	got := AnswersToScoring(answers, QuestionCatalog, DefaultScoring())

	assert.Equal(t, 5, got.MarketAttractiveness.Score)
	assert.Equal(t, 3, got.StrategicFit.Score)
	assert.Equal(t, 5, got.Risk.Score)
}

func TestAnswersToScoring_UnansweredCriterionKeepsBase(t *testing.T) {
	base := scoringWith(1, 2, 3, 4, 5)
	answers := map[string]int{"fe1": 5, "fe2": 5}

	got := AnswersToScoring(answers, QuestionCatalog, base)

	assert.Equal(t, 5, got.Feasibility.Score)
	assert.Equal(t, 1, got.MarketAttractiveness.Score)
	assert.Equal(t, 2, got.StrategicFit.Score)
	assert.Equal(t, 4, got.CommercialViability.Score)
	assert.Equal(t, 5, got.Risk.Score)
}

func TestAnswersToScoring_IgnoresZeroAndNegative(t *testing.T) {
	base := DefaultScoring()
	answers := map[string]int{"ma1": 0, "ma2": -1, "ma3": 4}

	got := AnswersToScoring(answers, QuestionCatalog, base)

	assert.Equal(t, 4, got.MarketAttractiveness.Score, "only the answered question counts")
}

func TestAnswersToScoring_EmptyAnswersReturnsBase(t *testing.T) {
	base := scoringWith(2, 2, 2, 2, 2)
	got := AnswersToScoring(nil, QuestionCatalog, base)
	assert.Equal(t, base, got)
}

func TestAnswersToScoring_Deterministic(t *testing.T) {
	answers := map[string]int{"ma1": 3, "sf1": 4, "fe1": 2, "cv1": 5, "ri1": 1}
	base := DefaultScoring()

	first := AnswersToScoring(answers, QuestionCatalog, base)
	second := AnswersToScoring(answers, QuestionCatalog, base)

	assert.Equal(t, first, second)
}

func TestAnswersToScoring_DoesNotMutateBase(t *testing.T) {
	base := DefaultScoring()
	_ = AnswersToScoring(map[string]int{"ma1": 5}, QuestionCatalog, base)
	assert.Equal(t, 3, base.MarketAttractiveness.Score)
}
