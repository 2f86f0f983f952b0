package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Anujnegi157/evalease-screens/internal/config"
	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/repositories"
	"github.com/Anujnegi157/evalease-screens/internal/services"
)

type stubTextGenerator struct {
	response string
	err      error
}

func (s *stubTextGenerator) Generate(context.Context, string, string) (string, error) {
	return s.response, s.err
}

type stubScheduler struct {
	requests []*services.VapiCallRequest
	err      error
	calls    []services.VapiCall
	listErr  error
}

func (s *stubScheduler) CreateCall(_ context.Context, req *services.VapiCallRequest) (*services.VapiCall, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return &services.VapiCall{ID: "call-1", Status: "queued"}, nil
}

func (s *stubScheduler) ListCalls(context.Context) ([]services.VapiCall, error) {
	return s.calls, s.listErr
}

type testEnv struct {
	app       *fiber.App
	repo      repositories.RequisitionRepository
	textGen   *stubTextGenerator
	scheduler *stubScheduler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		repo:      repositories.NewRequisitionRepository(),
		textGen:   &stubTextGenerator{},
		scheduler: &stubScheduler{},
	}

	validate := services.NewValidator()
	prompts := services.NewPromptBuilder("Neha", "EvalEase")
	agent := config.AgentConfig{Name: "Neha", ModelProvider: "openai", Model: "gpt-4o", Company: "EvalEase"}

	env.app = fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(env.app.Group("/api/v1"), Handlers{
		Requisition: NewRequisitionHandler(env.repo, validate),
		Generate:    NewGenerateHandler(env.repo, services.NewGeneratorService(env.textGen, prompts), validate),
		Dispatch: NewDispatchHandler(env.repo,
			services.NewDispatchService(env.scheduler, prompts, validate, "pn-1", agent)),
		Upload: NewUploadHandler(env.repo, services.NewStorageService(t.TempDir()),
			services.NewPDFParserService(), 1024),
		Call: NewCallHandler(services.NewCallLogService(env.scheduler), services.NewAnalyticsService()),
	})

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func (e *testEnv) createDraft(t *testing.T, fields map[string]string) *models.Draft {
	t.Helper()

	var payload interface{}
	if fields != nil {
		payload = fields
	}

	status, body := e.do(t, http.MethodPost, "/api/v1/requisitions", payload)
	require.Equal(t, http.StatusCreated, status, string(body))

	var resp models.DraftResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Draft
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}
