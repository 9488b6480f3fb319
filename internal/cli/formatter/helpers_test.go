package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDate(t *testing.T) {
	past := time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2022", HumanDate(past))

	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Just now", HumanTimestamp(now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestTruncID(t *testing.T) {
	got := TruncID("0123456789abcdef")
	assert.Contains(t, got, "01234567")
	assert.NotContains(t, got, "89abcdef")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "500", FormatMoney(500))
	assert.Equal(t, "120k", FormatMoney(120000))
	assert.Equal(t, "-75k", FormatMoney(-75000))
	assert.Equal(t, "0", FormatMoney(0))
}

func TestScoreBar(t *testing.T) {
	full := ScoreBar(5, 10)
	assert.Contains(t, full, "██████████")
	assert.NotContains(t, full, "░")

	empty := ScoreBar(0, 10)
	assert.Contains(t, empty, "░░░░░░░░░░")

	half := ScoreBar(2.5, 10)
	assert.Contains(t, half, "█████░░░░░")
}
