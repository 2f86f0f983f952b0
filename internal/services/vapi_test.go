package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anujnegi157/evalease-screens/internal/config"
)

func newTestVapiClient(url string) SchedulingClient {
	return NewVapiClient(config.SchedulingConfig{
		BaseURL: url + "/",
		APIKey:  "secret",
		Timeout: 5 * time.Second,
	})
}

func TestVapiClient_CreateCall(t *testing.T) {
	var received VapiCallRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/call", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"call-1","status":"queued"}`))
	}))
	defer server.Close()

	call, err := newTestVapiClient(server.URL).CreateCall(context.Background(), &VapiCallRequest{
		PhoneNumberID: "pn-1",
		Customer:      VapiCustomer{Number: "+15551234567", Name: "Ada"},
	})
	require.NoError(t, err)

	assert.Equal(t, "call-1", call.ID)
	assert.Equal(t, "queued", call.Status)
	assert.Equal(t, "pn-1", received.PhoneNumberID)
	assert.Equal(t, "+15551234567", received.Customer.Number)
}

func TestVapiClient_CreateCallRejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"string message", `{"message":"customer.number must be a valid phone number"}`, "customer.number must be a valid phone number"},
		{"list message", `{"message":["bad number","bad assistant"]}`, "bad number; bad assistant"},
		{"no message", `oops`, genericDispatchMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestVapiClient(server.URL).CreateCall(context.Background(), &VapiCallRequest{})
			require.Error(t, err)

			var derr *DispatchError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, http.StatusBadRequest, derr.StatusCode)
			assert.Equal(t, tt.message, derr.Message)
		})
	}
}

func TestVapiClient_CreateCallUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestVapiClient(url).CreateCall(context.Background(), &VapiCallRequest{})

	var derr *DispatchError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, genericDispatchMessage, derr.Message)
	assert.Zero(t, derr.StatusCode)
}

func TestVapiClient_ListCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"id":"a","status":"ended","duration":725,"customer":{"number":"+15551234567","name":"Ada"},"createdAt":"2024-03-01T10:00:00Z"},
			{"id":"b","status":"queued"}
		]`))
	}))
	defer server.Close()

	calls, err := newTestVapiClient(server.URL).ListCalls(context.Background())
	require.NoError(t, err)
	require.Len(t, calls, 2)

	assert.Equal(t, "a", calls[0].ID)
	require.NotNil(t, calls[0].Duration)
	assert.Equal(t, 725.0, *calls[0].Duration)
	assert.Equal(t, "Ada", calls[0].Customer.Name)
	assert.Nil(t, calls[1].Customer)
}

func TestVapiClient_ListCallsErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid Key"}`))
		}))
		defer server.Close()

		_, err := newTestVapiClient(server.URL).ListCalls(context.Background())

		var ferr *FetchError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, http.StatusUnauthorized, ferr.StatusCode)
		assert.Equal(t, "Invalid Key", ferr.Message)
	})

	t.Run("undecodable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"}`))
		}))
		defer server.Close()

		_, err := newTestVapiClient(server.URL).ListCalls(context.Background())

		var ferr *FetchError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, genericFetchMessage, ferr.Message)
	})
}

func TestVapiClient_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestVapiClient("http://127.0.0.1:1").ListCalls(ctx)

	require.ErrorIs(t, err, context.Canceled)
}
