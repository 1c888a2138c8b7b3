package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validArray = `[
	{"question": "What is a goroutine?", "answer": "A lightweight thread.", "example": "go func() {}()", "type": "technical"},
	{"question": "Why this company?", "answer": "Research first.", "example": "I use the product.", "type": "behavioral"}
]`

func TestParseQuestionsStrict(t *testing.T) {
	questions, err := ParseQuestions(validArray)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "What is a goroutine?", questions[0].Question)
	assert.Equal(t, "behavioral", questions[1].Type)
}

func TestParseQuestionsCodeFenced(t *testing.T) {
	fenced := "```json\n" + validArray + "\n```"
	questions, err := ParseQuestions(fenced)
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	bare := "```\n" + validArray + "\n```"
	questions, err = ParseQuestions(bare)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestParseQuestionsSurroundingProse(t *testing.T) {
	chatty := "Sure! Here are your questions:\n" + validArray + "\nGood luck with the interview!"
	questions, err := ParseQuestions(chatty)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestParseQuestionsRejectsGarbage(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"plain prose", "I cannot help with that request."},
		{"empty array", "[]"},
		{"object not array", `{"question": "one?"}`},
		{"missing question field", `[{"answer": "only an answer"}]`},
		{"broken json", `[{"question": "trailing`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			questions, err := ParseQuestions(tc.raw)
			assert.ErrorIs(t, err, ErrUnparsableResponse)
			assert.Nil(t, questions)
		})
	}
}

func TestFallbackQuestions(t *testing.T) {
	questions := FallbackQuestions()
	require.Len(t, questions, 5)
	for i, q := range questions {
		assert.NotEmpty(t, q.Question, "question %d", i)
		assert.NotEmpty(t, q.Answer, "answer %d", i)
		assert.NotEmpty(t, q.Example, "example %d", i)
		assert.NotEmpty(t, q.Type, "type %d", i)
	}
}
