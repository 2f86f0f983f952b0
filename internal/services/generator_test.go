package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTextGenerator struct {
	response string
	err      error
	calls    int
	system   string
	user     string
}

func (s *stubTextGenerator) Generate(_ context.Context, system, user string) (string, error) {
	s.calls++
	s.system = system
	s.user = user
	return s.response, s.err
}

func newTestGenerator(stub *stubTextGenerator) GeneratorService {
	return NewGeneratorService(stub, NewPromptBuilder("Neha", "EvalEase"))
}

func TestGeneratorService_ValidJSON(t *testing.T) {
	stub := &stubTextGenerator{response: `{
		"mandatorySkills": ["Go", "PostgreSQL"],
		"goodToHave": ["Kubernetes"],
		"questionnaire": ["Why Go?", "Describe a migration you ran."]
	}`}

	result, err := newTestGenerator(stub).Generate(context.Background(), "Backend engineer, Go and PostgreSQL")
	require.NoError(t, err)

	assert.Equal(t, SourceAI, result.Source)
	assert.Empty(t, result.Notice)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, result.Content.MandatorySkills)
	assert.Equal(t, []string{"Kubernetes"}, result.Content.GoodToHave)
	assert.Equal(t, []string{"Why Go?", "Describe a migration you ran."}, result.Content.Questions)
	assert.Contains(t, stub.user, "Backend engineer, Go and PostgreSQL")
	assert.Contains(t, stub.system, "JSON")
}

func TestGeneratorService_JSONInsideProse(t *testing.T) {
	stub := &stubTextGenerator{response: "Sure! Here you go:\n```json\n" +
		`{"mandatorySkills":["A"],"goodToHave":["B"],"questionnaire":["Q?"]}` +
		"\n```\nGood luck."}

	result, err := newTestGenerator(stub).Generate(context.Background(), "anything")
	require.NoError(t, err)

	assert.Equal(t, SourceAI, result.Source)
	assert.Equal(t, []string{"Q?"}, result.Content.Questions)
}

func TestGeneratorService_StringQuestionnaire(t *testing.T) {
	stub := &stubTextGenerator{response: `{"mandatorySkills":[],"goodToHave":[],"questionnaire":"1. First?\n2) Second?\n- Third?\n\n"}`}

	result, err := newTestGenerator(stub).Generate(context.Background(), "anything")
	require.NoError(t, err)

	assert.Equal(t, SourceAI, result.Source)
	assert.Equal(t, []string{"First?", "Second?", "Third?"}, result.Content.Questions)
}

func TestGeneratorService_FallsBack(t *testing.T) {
	jd := "React developer for customer portal"
	expected := NewFallbackExtractor().Extract(jd)

	tests := []struct {
		name string
		stub *stubTextGenerator
	}{
		{"request error", &stubTextGenerator{err: errors.New("connection refused")}},
		{"not configured", &stubTextGenerator{err: ErrTextGenNotConfigured}},
		{"no json", &stubTextGenerator{response: "I cannot help with that."}},
		{"broken json", &stubTextGenerator{response: `{"mandatorySkills": [`}},
		{"missing keys", &stubTextGenerator{response: `{"mandatorySkills":["A"]}`}},
		{"null questionnaire", &stubTextGenerator{response: `{"mandatorySkills":[],"goodToHave":[],"questionnaire":null}`}},
		{"wrong questionnaire type", &stubTextGenerator{response: `{"mandatorySkills":[],"goodToHave":[],"questionnaire":42}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newTestGenerator(tt.stub).Generate(context.Background(), jd)
			require.NoError(t, err)

			assert.Equal(t, SourceFallback, result.Source)
			assert.NotEmpty(t, result.Notice)
			assert.Equal(t, expected, result.Content)
		})
	}
}

func TestGeneratorService_BlankJobDescription(t *testing.T) {
	stub := &stubTextGenerator{}

	_, err := newTestGenerator(stub).Generate(context.Background(), "  \n ")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"jobDescription"}, verr.Fields)
	assert.Zero(t, stub.calls)
}
