package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/llm"
)

// Service produces qualitative assessments of scored opportunities.
type Service interface {
	// Assess generates an assessment for the given opportunity data.
	Assess(ctx context.Context, req Request) (*Result, error)
}

type service struct {
	client  llm.Client
	enabled bool
}

// NewService creates a Service. When enabled is false, or client is nil,
// assessments are built deterministically without the LLM.
func NewService(client llm.Client, enabled bool) Service {
	return &service{client: client, enabled: enabled && client != nil}
}

func (s *service) Assess(ctx context.Context, req Request) (*Result, error) {
	if !req.Language.Valid() {
		req.Language = LanguageEnglish
	}

	score, err := domain.TotalScore(req.Scoring)
	if err != nil {
		return nil, fmt.Errorf("assess: %w", err)
	}

	if !s.enabled {
		return DeterministicAssess(req, score), nil
	}

	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("assess: encode request: %w", err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: systemPromptFor(req.Language),
		UserPrompt:   "Here is the opportunity data:\n\n" + string(payload),
	})
	if err != nil {
		return nil, fmt.Errorf("assess: %w", err)
	}

	result, err := llm.ExtractJSON[Result](resp.Text, ValidateResult)
	if err != nil {
		return nil, fmt.Errorf("assess: %w", err)
	}

	// The rating band is derived from the weighted score, never taken
	// from the model output.
	result.Score = score
	result.OverallRating = RatingForScore(score)
	return &result, nil
}
