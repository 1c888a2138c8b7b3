package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// Question is one generated preparation item.
type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Example  string `json:"example"`
	Type     string `json:"type"`
}

var ErrUnparsableResponse = errors.New("model response could not be parsed")

// ParseQuestions extracts a question list from raw model output.
// Three tiers: strict JSON-array parse, then code-fence stripping plus
// bracket-delimited substring extraction, then an error the caller maps to
// the fallback set. Callers must never surface the error to end users.
func ParseQuestions(raw string) ([]Question, error) {
	if questions, err := parseStrict(raw); err == nil {
		return questions, nil
	}

	cleaned := stripCodeFences(raw)
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start >= 0 && end > start {
		if questions, err := parseStrict(cleaned[start : end+1]); err == nil {
			return questions, nil
		}
	}

	return nil, ErrUnparsableResponse
}

func parseStrict(s string) ([]Question, error) {
	var questions []Question
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrUnparsableResponse
	}
	for _, q := range questions {
		if q.Question == "" {
			return nil, ErrUnparsableResponse
		}
	}
	return questions, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
