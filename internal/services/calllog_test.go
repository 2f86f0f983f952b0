package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anujnegi157/evalease-screens/internal/models"
)

func ptrTime(s string) *time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return &t
}

func ptrFloat(v float64) *float64 { return &v }

func TestToCallRecord_EndedCall(t *testing.T) {
	record := ToCallRecord(VapiCall{
		ID:        "a",
		Status:    "ended",
		Duration:  ptrFloat(725),
		Customer:  &VapiCustomer{Name: "Ada", Number: "+15551234567"},
		CreatedAt: ptrTime("2024-03-01T10:00:00Z"),
	})

	assert.Equal(t, models.CallCompleted, record.Status)
	require.NotNil(t, record.DurationMinutes)
	assert.Equal(t, 13, *record.DurationMinutes)
	assert.Equal(t, "Ada", record.CandidateName)
	assert.Equal(t, "+15551234567", record.CandidatePhone)
	assert.Equal(t, *ptrTime("2024-03-01T10:00:00Z"), record.DateTime)
	require.NotNil(t, record.Evaluation)
	assert.True(t, record.Evaluation.IsPlaceholder())
}

func TestToCallRecord_StatusMapping(t *testing.T) {
	tests := map[string]models.CallStatus{
		"ended":       models.CallCompleted,
		"queued":      models.CallScheduled,
		"in-progress": models.CallMissed,
		"failed":      models.CallMissed,
		"":            models.CallMissed,
	}

	for vendor, want := range tests {
		assert.Equal(t, want, ToCallRecord(VapiCall{Status: vendor}).Status, vendor)
	}
}

func TestToCallRecord_MissingData(t *testing.T) {
	record := ToCallRecord(VapiCall{ID: "b", Status: "queued", Customer: &VapiCustomer{Name: "  "}})

	assert.Equal(t, "Unknown", record.CandidateName)
	assert.Equal(t, "No number", record.CandidatePhone)
	assert.Nil(t, record.DurationMinutes)
	assert.Nil(t, record.Evaluation)
	assert.True(t, record.DateTime.IsZero())
}

func TestToCallRecord_DurationFromTimestamps(t *testing.T) {
	record := ToCallRecord(VapiCall{
		Status:      "ended",
		StartedAt:   ptrTime("2024-03-01T10:00:00Z"),
		EndedAt:     ptrTime("2024-03-01T10:04:01Z"),
		ScheduledAt: ptrTime("2024-03-01T09:59:00Z"),
		CreatedAt:   ptrTime("2024-02-28T09:00:00Z"),
	})

	require.NotNil(t, record.DurationMinutes)
	assert.Equal(t, 5, *record.DurationMinutes)
	assert.Equal(t, *ptrTime("2024-03-01T09:59:00Z"), record.DateTime)
}

func TestFilterCalls(t *testing.T) {
	records := []models.CallRecord{
		{ID: "1", CandidateName: "Ada Lovelace", CandidatePhone: "+15551234567", Status: models.CallCompleted},
		{ID: "2", CandidateName: "Grace Hopper", CandidatePhone: "+15559876543", Status: models.CallScheduled},
		{ID: "3", CandidateName: "Alan Turing", CandidatePhone: "+442071234567", Status: models.CallMissed},
	}

	ids := func(rs []models.CallRecord) []string {
		out := []string{}
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterCalls(records, "", "")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterCalls(records, "all", "")))
	assert.Equal(t, []string{"2"}, ids(FilterCalls(records, "Scheduled", "")))
	assert.Equal(t, []string{"1", "3"}, ids(FilterCalls(records, "", "la")))
	assert.Equal(t, []string{"3"}, ids(FilterCalls(records, "", "+44")))
	assert.Equal(t, []string{}, ids(FilterCalls(records, "completed", "grace")))
}

func TestFindCall(t *testing.T) {
	records := []models.CallRecord{{ID: "1"}, {ID: "2"}}

	got, ok := FindCall(records, "2")
	assert.True(t, ok)
	assert.Equal(t, "2", got.ID)

	_, ok = FindCall(records, "3")
	assert.False(t, ok)
}

func TestCallLogService_FetchAll(t *testing.T) {
	svc := NewCallLogService(DemoCallSource{})

	records, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, models.CallCompleted, records[0].Status)
	assert.Equal(t, 12, *records[0].DurationMinutes)
	assert.Equal(t, models.CallScheduled, records[2].Status)
	assert.Equal(t, models.CallMissed, records[3].Status)
}

func TestCallLogService_FetchAllError(t *testing.T) {
	svc := NewCallLogService(&stubScheduler{err: &FetchError{Message: "down"}})

	_, err := svc.FetchAll(context.Background())

	var ferr *FetchError
	assert.True(t, errors.As(err, &ferr))
}
