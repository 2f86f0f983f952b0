package services

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/Anujnegi157/evalease-screens/internal/models"
)

const (
	unknownCandidateName  = "Unknown"
	unknownCandidatePhone = "No number"
)

// CallSource lists raw vendor call objects.
type CallSource interface {
	ListCalls(ctx context.Context) ([]VapiCall, error)
}

type CallLogService interface {
	FetchAll(ctx context.Context) ([]models.CallRecord, error)
}

type callLogService struct {
	source CallSource
}

func NewCallLogService(source CallSource) CallLogService {
	return &callLogService{source: source}
}

// FetchAll implements CallLogService.
func (s *callLogService) FetchAll(ctx context.Context) ([]models.CallRecord, error) {
	calls, err := s.source.ListCalls(ctx)
	if err != nil {
		log.Printf("❌ Failed to fetch call logs: %v\n", err)
		return nil, err
	}

	records := make([]models.CallRecord, 0, len(calls))
	for _, call := range calls {
		records = append(records, ToCallRecord(call))
	}

	return records, nil
}

// ToCallRecord maps a vendor call to the dashboard's call record.
func ToCallRecord(call VapiCall) models.CallRecord {
	record := models.CallRecord{
		ID:             call.ID,
		CandidateName:  unknownCandidateName,
		CandidatePhone: unknownCandidatePhone,
		Status:         mapCallStatus(call.Status),
	}

	if call.Customer != nil {
		if name := strings.TrimSpace(call.Customer.Name); name != "" {
			record.CandidateName = name
		}
		if number := strings.TrimSpace(call.Customer.Number); number != "" {
			record.CandidatePhone = number
		}
	}

	switch {
	case call.ScheduledAt != nil:
		record.DateTime = *call.ScheduledAt
	case call.CreatedAt != nil:
		record.DateTime = *call.CreatedAt
	case call.StartedAt != nil:
		record.DateTime = *call.StartedAt
	}

	if seconds, ok := callDurationSeconds(call); ok {
		minutes := int(math.Ceil(seconds / 60))
		record.DurationMinutes = &minutes
	}

	if record.Status == models.CallCompleted {
		record.Evaluation = models.PlaceholderEvaluation()
	}

	return record
}

func mapCallStatus(status string) models.CallStatus {
	switch status {
	case "ended":
		return models.CallCompleted
	case "queued":
		return models.CallScheduled
	default:
		return models.CallMissed
	}
}

func callDurationSeconds(call VapiCall) (float64, bool) {
	if call.Duration != nil {
		return *call.Duration, true
	}
	if call.StartedAt != nil && call.EndedAt != nil && call.EndedAt.After(*call.StartedAt) {
		return call.EndedAt.Sub(*call.StartedAt).Seconds(), true
	}
	return 0, false
}

// FilterCalls keeps records matching status ("" or "all" for any) whose
// candidate name contains query case-insensitively or whose phone contains it.
func FilterCalls(records []models.CallRecord, status, query string) []models.CallRecord {
	status = strings.ToLower(strings.TrimSpace(status))
	query = strings.TrimSpace(query)
	lowerQuery := strings.ToLower(query)

	out := make([]models.CallRecord, 0, len(records))
	for _, r := range records {
		if status != "" && status != "all" && string(r.Status) != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.CandidateName), lowerQuery) &&
			!strings.Contains(r.CandidatePhone, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func FindCall(records []models.CallRecord, id string) (models.CallRecord, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return models.CallRecord{}, false
}

// DemoCallSource serves a fixed set of sample calls for development setups
// without a scheduling credential.
type DemoCallSource struct{}

func (DemoCallSource) ListCalls(context.Context) ([]VapiCall, error) {
	at := func(s string) *time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return &t
	}
	seconds := func(v float64) *float64 { return &v }

	return []VapiCall{
		{
			ID:        "demo-1",
			Status:    "ended",
			Customer:  &VapiCustomer{Name: "Michael Johnson", Number: "+15551234567"},
			CreatedAt: at("2023-07-15T10:30:00Z"),
			Duration:  seconds(720),
		},
		{
			ID:        "demo-2",
			Status:    "ended",
			Customer:  &VapiCustomer{Name: "Sarah Wilson", Number: "+15559876543"},
			CreatedAt: at("2023-07-16T14:00:00Z"),
			Duration:  seconds(900),
		},
		{
			ID:        "demo-3",
			Status:    "queued",
			Customer:  &VapiCustomer{Name: "David Chen", Number: "+15554567890"},
			CreatedAt: at("2023-07-18T09:15:00Z"),
		},
		{
			ID:          "demo-4",
			Status:      "failed",
			Customer:    &VapiCustomer{Name: "Emily Rodriguez", Number: "+15552345678"},
			CreatedAt:   at("2023-07-14T11:00:00Z"),
			EndedReason: "customer-did-not-answer",
		},
	}, nil
}
