package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/Anujnegi157/evalease-screens/internal/models"
)

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"

	fallbackNotice = "AI generation is unavailable right now, so skills and questions were suggested from keywords in the job description. Please review them."
)

type GeneratorService interface {
	Generate(ctx context.Context, jobDescription string) (*GenerationResult, error)
}

// GenerationResult is always usable. Source tells whether it came from the
// model or from the keyword fallback, and Notice explains a fallback.
type GenerationResult struct {
	Content models.GeneratedContent
	Source  string
	Notice  string
}

type generatorService struct {
	textGen       TextGenerator
	fallback      *FallbackExtractor
	promptBuilder *PromptBuilder
}

func NewGeneratorService(textGen TextGenerator, promptBuilder *PromptBuilder) GeneratorService {
	return &generatorService{
		textGen:       textGen,
		fallback:      NewFallbackExtractor(),
		promptBuilder: promptBuilder,
	}
}

// rawGeneratedContent mirrors the JSON object the model is asked for.
type rawGeneratedContent struct {
	MandatorySkills *[]string       `json:"mandatorySkills"`
	GoodToHave      *[]string       `json:"goodToHave"`
	Questionnaire   json.RawMessage `json:"questionnaire"`
}

// Generate implements GeneratorService.
func (g *generatorService) Generate(ctx context.Context, jobDescription string) (*GenerationResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ValidationError{Fields: []string{"jobDescription"}, Message: "job description is required"}
	}

	content, err := g.generateWithModel(ctx, jobDescription)
	if err != nil {
		log.Printf("⚠️  %v. Using keyword fallback.\n", err)
		return &GenerationResult{
			Content: g.fallback.Extract(jobDescription),
			Source:  SourceFallback,
			Notice:  fallbackNotice,
		}, nil
	}

	return &GenerationResult{
		Content: *content,
		Source:  SourceAI,
	}, nil
}

func (g *generatorService) generateWithModel(ctx context.Context, jobDescription string) (*models.GeneratedContent, error) {
	response, err := g.textGen.Generate(ctx,
		g.promptBuilder.BuildGenerationSystemPrompt(),
		g.promptBuilder.BuildGenerationPrompt(jobDescription),
	)
	if err != nil {
		return nil, &GenerationFailure{Stage: "request", Err: err}
	}

	log.Printf("✅ Generation response received: %d characters", len(response))

	content, err := parseGeneratedContent(response)
	if err != nil {
		return nil, &GenerationFailure{Stage: "parse", Err: err}
	}

	return content, nil
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseGeneratedContent decodes the model reply directly and, failing that,
// the first {...} span inside it.
func parseGeneratedContent(response string) (*models.GeneratedContent, error) {
	var raw rawGeneratedContent
	if err := json.Unmarshal([]byte(strings.TrimSpace(response)), &raw); err != nil {
		match := jsonObjectPattern.FindString(response)
		if match == "" {
			return nil, fmt.Errorf("no JSON object in response")
		}
		raw = rawGeneratedContent{}
		if err := json.Unmarshal([]byte(match), &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
	}

	questionnaire := strings.TrimSpace(string(raw.Questionnaire))
	if raw.MandatorySkills == nil || raw.GoodToHave == nil || questionnaire == "" || questionnaire == "null" {
		return nil, errors.New("response is missing mandatorySkills, goodToHave or questionnaire")
	}

	questions, err := parseQuestionnaire(raw.Questionnaire)
	if err != nil {
		return nil, err
	}

	return &models.GeneratedContent{
		MandatorySkills: *raw.MandatorySkills,
		GoodToHave:      *raw.GoodToHave,
		Questions:       questions,
	}, nil
}

var listMarker = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s*`)

// parseQuestionnaire accepts a JSON array of questions or a single string
// with one question per line.
func parseQuestionnaire(raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, fmt.Errorf("questionnaire is neither a list nor a string: %w", err)
	}

	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(listMarker.ReplaceAllString(line, ""))
		if line != "" {
			questions = append(questions, line)
		}
	}
	return questions, nil
}
