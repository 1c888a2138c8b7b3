package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervue_backend/internal/services/dto"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.response, g.err
}

func TestGenerateFromModel(t *testing.T) {
	gen := &stubGenerator{response: `[
		{"question": "Explain channels.", "answer": "Typed conduits.", "example": "ch := make(chan int)", "type": "technical"}
	]`}
	svc := NewQuestionService(gen)

	resp := svc.Generate(context.Background(), &dto.GenerateQuestionsRequest{
		Role:    "Backend Engineer",
		Company: "Acme",
	})

	require.NotNil(t, resp)
	assert.Equal(t, "model", resp.Source)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Explain channels.", resp.Questions[0].Question)
	assert.Contains(t, gen.lastPrompt, "Backend Engineer")
	assert.Contains(t, gen.lastPrompt, "at Acme")
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	svc := NewQuestionService(&stubGenerator{err: errors.New("quota exceeded")})

	resp := svc.Generate(context.Background(), &dto.GenerateQuestionsRequest{Role: "QA Engineer"})

	assert.Equal(t, "fallback", resp.Source)
	assert.Len(t, resp.Questions, 5)
}

func TestGenerateFallsBackOnGarbageOutput(t *testing.T) {
	svc := NewQuestionService(&stubGenerator{response: "I'm sorry, I can't produce JSON today."})

	resp := svc.Generate(context.Background(), &dto.GenerateQuestionsRequest{Role: "QA Engineer"})

	assert.Equal(t, "fallback", resp.Source)
	assert.Len(t, resp.Questions, 5)
}

func TestGenerateWithoutGenerator(t *testing.T) {
	svc := NewQuestionService(nil)

	resp := svc.Generate(context.Background(), &dto.GenerateQuestionsRequest{Role: "QA Engineer"})

	assert.Equal(t, "fallback", resp.Source)
	assert.Len(t, resp.Questions, 5)
}
