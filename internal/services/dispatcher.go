package services

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Anujnegi157/evalease-screens/internal/config"
	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
)

type DispatchService interface {
	Dispatch(ctx context.Context, req models.Requisition) (*DispatchResult, error)
}

type DispatchResult struct {
	CallID string
	Status string
}

type dispatchService struct {
	scheduler     SchedulingClient
	promptBuilder *PromptBuilder
	validate      *validator.Validate
	phoneNumberID string
	agent         config.AgentConfig
}

func NewDispatchService(
	scheduler SchedulingClient,
	promptBuilder *PromptBuilder,
	validate *validator.Validate,
	phoneNumberID string,
	agent config.AgentConfig,
) DispatchService {
	return &dispatchService{
		scheduler:     scheduler,
		promptBuilder: promptBuilder,
		validate:      validate,
		phoneNumberID: phoneNumberID,
		agent:         agent,
	}
}

// Dispatch implements DispatchService.
func (d *dispatchService) Dispatch(ctx context.Context, req models.Requisition) (*DispatchResult, error) {
	req = req.Clone()
	req.CandidateName = strings.TrimSpace(req.CandidateName)
	req.CandidatePhone = NormalizePhone(req.CandidatePhone)
	req.JobDescription = strings.TrimSpace(req.JobDescription)

	if err := ValidateStruct(d.validate, req); err != nil {
		return nil, err
	}

	payload := d.BuildCallRequest(req)

	log.Printf("📞 Dispatching screening call for %s with %d questions\n",
		req.CandidateName, len(payload.Assistant.Model.Messages)-1)

	call, err := d.scheduler.CreateCall(ctx, payload)
	if err != nil {
		log.Printf("❌ Failed to dispatch call: %v\n", err)
		return nil, err
	}

	log.Printf("✅ Call %s scheduled (status %s)\n", call.ID, call.Status)
	return &DispatchResult{CallID: call.ID, Status: call.Status}, nil
}

// BuildCallRequest turns a validated requisition into the vendor payload. The
// required introduction and notice-period questions are enforced here again,
// whatever the editor already did.
func (d *dispatchService) BuildCallRequest(req models.Requisition) *VapiCallRequest {
	questions := requisition.EnsureRequiredQuestions(req.Questions, requisition.DefaultRequiredQuestions)

	messages := make([]chatMessage, 0, len(questions)+1)
	messages = append(messages, chatMessage{
		Role: "system",
		Content: d.promptBuilder.BuildSystemInstruction(
			req.CandidateName, req.JobDescription, req.MandatorySkills, req.GoodToHave, questions,
		),
	})
	for _, q := range questions {
		messages = append(messages, chatMessage{Role: "assistant", Content: q})
	}

	firstMessage := strings.TrimSpace(req.FirstMessage)
	if firstMessage == "" {
		firstMessage = d.promptBuilder.BuildFirstMessage(req.CandidateName)
	}

	return &VapiCallRequest{
		PhoneNumberID: d.phoneNumberID,
		Customer: VapiCustomer{
			Number: req.CandidatePhone,
			Name:   req.CandidateName,
		},
		Assistant: VapiAssistant{
			Name:           d.agent.Name,
			FirstMessage:   firstMessage,
			EndCallMessage: d.promptBuilder.BuildClosingMessage(req.CandidateName),
			Model: VapiModel{
				Provider: d.agent.ModelProvider,
				Model:    d.agent.Model,
				Messages: messages,
			},
		},
	}
}

var phoneSeparators = regexp.MustCompile(`[\s\-().]`)

// NormalizePhone strips formatting characters so "+1 (555) 123-4567" becomes
// "+15551234567".
func NormalizePhone(phone string) string {
	return phoneSeparators.ReplaceAllString(strings.TrimSpace(phone), "")
}
