package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Summary string   `json:"summary"`
	Items   []string `json:"items"`
}

func TestExtractJSON_Plain(t *testing.T) {
	raw := `{"summary":"fine","items":["a","b"]}`
	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "fine", got.Summary)
	assert.Equal(t, []string{"a", "b"}, got.Items)
}

func TestExtractJSON_CodeFences(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"summary\":\"fenced\"}\n```\nHope that helps!"
	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "fenced", got.Summary)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Sure! The assessment is {"summary":"embedded","items":[]} as requested.`
	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "embedded", got.Summary)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"summary":"watch the {braces} here","items":["x"]}`
	got, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "watch the {braces} here", got.Summary)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[testPayload]("no json at all", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Malformed(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"summary": }`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p testPayload) error {
		if p.Summary == "" {
			return fmt.Errorf("summary required")
		}
		return nil
	}
	_, err := ExtractJSON[testPayload](`{"items":["a"]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	got, err := ExtractJSON[testPayload](`{"summary":"ok"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Summary)
}
