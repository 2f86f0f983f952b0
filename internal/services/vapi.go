package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Anujnegi157/evalease-screens/internal/config"
)

const (
	genericDispatchMessage = "Failed to schedule call. Please try again."
	genericFetchMessage    = "Failed to load call logs."
)

type VapiCustomer struct {
	Number string `json:"number,omitempty"`
	Name   string `json:"name,omitempty"`
}

type VapiModel struct {
	Provider string        `json:"provider"`
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type VapiAssistant struct {
	Name           string    `json:"name"`
	FirstMessage   string    `json:"firstMessage"`
	EndCallMessage string    `json:"endCallMessage"`
	Model          VapiModel `json:"model"`
}

// VapiCallRequest is the body of POST /call.
type VapiCallRequest struct {
	PhoneNumberID string        `json:"phoneNumberId,omitempty"`
	Customer      VapiCustomer  `json:"customer"`
	Assistant     VapiAssistant `json:"assistant"`
}

// VapiCall is the vendor's call object as returned by POST and GET /call.
type VapiCall struct {
	ID          string        `json:"id"`
	Status      string        `json:"status"`
	Customer    *VapiCustomer `json:"customer,omitempty"`
	CreatedAt   *time.Time    `json:"createdAt,omitempty"`
	ScheduledAt *time.Time    `json:"scheduledAt,omitempty"`
	StartedAt   *time.Time    `json:"startedAt,omitempty"`
	EndedAt     *time.Time    `json:"endedAt,omitempty"`
	Duration    *float64      `json:"duration,omitempty"`
	EndedReason string        `json:"endedReason,omitempty"`
}

type SchedulingClient interface {
	CreateCall(ctx context.Context, req *VapiCallRequest) (*VapiCall, error)
	ListCalls(ctx context.Context) ([]VapiCall, error)
}

type vapiClient struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

func NewVapiClient(cfg config.SchedulingConfig) SchedulingClient {
	return &vapiClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
	}
}

// CreateCall implements SchedulingClient.
func (v *vapiClient) CreateCall(ctx context.Context, req *VapiCallRequest) (*VapiCall, error) {
	agent := fiber.Post(v.baseURL + "/call")
	agent.Set(fiber.HeaderAuthorization, "Bearer "+v.apiKey)
	agent.JSON(req)

	code, body, err := doRequest(ctx, agent, v.timeout)
	if err != nil {
		return nil, &DispatchError{Message: genericDispatchMessage, Err: err}
	}

	if !isSuccess(code) {
		msg := vendorMessage(body)
		if msg == "" {
			msg = genericDispatchMessage
		}
		return nil, &DispatchError{StatusCode: code, Message: msg}
	}

	var call VapiCall
	if err := json.Unmarshal(body, &call); err != nil {
		// The vendor accepted the call; an unreadable body must not turn that into a failure.
		return &VapiCall{Status: "queued"}, nil
	}

	return &call, nil
}

// ListCalls implements SchedulingClient.
func (v *vapiClient) ListCalls(ctx context.Context) ([]VapiCall, error) {
	agent := fiber.Get(v.baseURL + "/call")
	agent.Set(fiber.HeaderAuthorization, "Bearer "+v.apiKey)

	code, body, err := doRequest(ctx, agent, v.timeout)
	if err != nil {
		return nil, &FetchError{Message: genericFetchMessage, Err: err}
	}

	if !isSuccess(code) {
		msg := vendorMessage(body)
		if msg == "" {
			msg = genericFetchMessage
		}
		return nil, &FetchError{StatusCode: code, Message: msg}
	}

	var calls []VapiCall
	if err := json.Unmarshal(body, &calls); err != nil {
		return nil, &FetchError{Message: genericFetchMessage, Err: fmt.Errorf("failed to decode calls: %w", err)}
	}

	return calls, nil
}

// vendorMessage pulls the "message" field out of an error body. The vendor
// sends either a string or a list of strings.
func vendorMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Message) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(payload.Message, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var list []string
	if err := json.Unmarshal(payload.Message, &list); err == nil {
		return strings.Join(list, "; ")
	}

	return ""
}
