package assessment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marion-inge/bdnavigator/internal/domain"
	"github.com/marion-inge/bdnavigator/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOllama serves canned /api/generate responses for service tests.
func fakeOllama(t *testing.T, handler http.HandlerFunc) llm.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	cfg.TimeoutMs = 2000
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func assessRequest() Request {
	scoring := domain.DefaultScoring()
	scoring.MarketAttractiveness = domain.Criterion{Score: 5, Comment: "large addressable market"}
	return Request{
		Title:       "Coating line retrofit",
		Description: "Retrofit offering for existing coating lines.",
		Scoring:     scoring,
		Language:    LanguageEnglish,
	}
}

func TestService_Assess_LLMSuccess(t *testing.T) {
	var gotSystem string
	client := fakeOllama(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			System string `json:"system"`
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotSystem = req.System
		assert.Contains(t, req.Prompt, "Coating line retrofit")

		body := map[string]string{
			"model": "test-model",
			"response": `{"summary":"A strong retrofit play.","strengths":["Large market"],` +
				`"weaknesses":[],"next_steps":["Prepare detailed scoring"],"pitfalls":[],` +
				`"overall_rating":"critical"}`,
		}
		json.NewEncoder(w).Encode(body)
	})

	svc := NewService(client, true)
	req := assessRequest()
	result, err := svc.Assess(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, gotSystem, "BD Navigator")
	assert.Equal(t, "A strong retrofit play.", result.Summary)
	assert.Equal(t, []string{"Large market"}, result.Strengths)

	// Rating comes from the weighted score, not from the model.
	wantScore, err := domain.TotalScore(req.Scoring)
	require.NoError(t, err)
	assert.Equal(t, wantScore, result.Score)
	assert.Equal(t, RatingForScore(wantScore), result.OverallRating)
	assert.NotEqual(t, RatingCritical, result.OverallRating)
}

func TestService_Assess_GermanPrompt(t *testing.T) {
	var gotSystem string
	client := fakeOllama(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			System string `json:"system"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotSystem = req.System
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "test-model",
			"response": `{"summary":"Solide Chance.","overall_rating":"moderate"}`,
		})
	})

	svc := NewService(client, true)
	req := assessRequest()
	req.Language = LanguageGerman
	_, err := svc.Assess(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, gotSystem, "Bewertungs-Engine")
}

func TestService_Assess_LLMFailureSurfacesError(t *testing.T) {
	client := fakeOllama(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	svc := NewService(client, true)
	_, err := svc.Assess(context.Background(), assessRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assess")
}

func TestService_Assess_MalformedOutputSurfacesError(t *testing.T) {
	client := fakeOllama(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "test-model",
			"response": "I cannot produce JSON today.",
		})
	})

	svc := NewService(client, true)
	_, err := svc.Assess(context.Background(), assessRequest())
	require.Error(t, err)
}

func TestService_Assess_DisabledUsesFallback(t *testing.T) {
	svc := NewService(nil, false)
	req := assessRequest()
	result, err := svc.Assess(context.Background(), req)
	require.NoError(t, err)

	wantScore, err := domain.TotalScore(req.Scoring)
	require.NoError(t, err)
	assert.Equal(t, wantScore, result.Score)
	assert.Contains(t, result.Summary, "Coating line retrofit")
	assert.NotEmpty(t, result.NextSteps)
}

func TestService_Assess_NilClientForcesFallback(t *testing.T) {
	// enabled=true with no client must not panic.
	svc := NewService(nil, true)
	result, err := svc.Assess(context.Background(), assessRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Summary)
}

func TestService_Assess_InvalidScoringRejected(t *testing.T) {
	svc := NewService(nil, false)
	req := assessRequest()
	req.Scoring.Feasibility.Score = 9
	_, err := svc.Assess(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidScore)
}

func TestService_Assess_UnknownLanguageDefaultsToEnglish(t *testing.T) {
	svc := NewService(nil, false)
	req := assessRequest()
	req.Language = Language("fr")
	result, err := svc.Assess(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, result.Summary, "weighted")
}
