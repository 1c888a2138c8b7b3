package services

import (
	"context"
	"fmt"
	"time"

	"intervue_backend/internal/ai"
	"intervue_backend/internal/logger"
	"intervue_backend/internal/services/dto"
)

const questionPrompt = `You are an experienced interview coach. Generate exactly 5 preparation questions for a candidate interviewing for the role of "%s"%s.

Question focus: %s.

Return ONLY a JSON array, no markdown, no commentary. Each element must have this exact structure:
[
  {
    "question": "<the interview question>",
    "answer": "<guidance on how to answer it well>",
    "example": "<a concrete example answer>",
    "type": "<technical|behavioral|hr>"
  }
]`

type QuestionService interface {
	// Generate never fails from the caller's point of view: any provider
	// or parse problem degrades to the fixed fallback set.
	Generate(ctx context.Context, req *dto.GenerateQuestionsRequest) *dto.GenerateQuestionsResponse
}

type questionServiceImpl struct {
	generator ai.Generator
}

// NewQuestionService accepts a nil generator; every request then serves
// the fallback set (no API key configured).
func NewQuestionService(generator ai.Generator) QuestionService {
	return &questionServiceImpl{generator: generator}
}

func (s *questionServiceImpl) Generate(ctx context.Context, req *dto.GenerateQuestionsRequest) *dto.GenerateQuestionsResponse {
	fallback := &dto.GenerateQuestionsResponse{
		Questions: ai.FallbackQuestions(),
		Source:    "fallback",
	}

	if s.generator == nil {
		return fallback
	}

	companyPart := ""
	if req.Company != "" {
		companyPart = fmt.Sprintf(" at %s", req.Company)
	}
	focus := req.QuestionType
	if focus == "" || focus == "mixed" {
		focus = "a mix of technical, behavioral and hr questions"
	}
	prompt := fmt.Sprintf(questionPrompt, req.Role, companyPart, focus)

	genCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	raw, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		logger.CtxWithError(ctx, "question generation failed, serving fallback", err,
			"role", req.Role)
		return fallback
	}

	questions, err := ai.ParseQuestions(raw)
	if err != nil {
		logger.CtxWarn(ctx, "unparsable model output, serving fallback",
			"role", req.Role, "raw_len", len(raw))
		return fallback
	}

	return &dto.GenerateQuestionsResponse{
		Questions: questions,
		Source:    "model",
	}
}
