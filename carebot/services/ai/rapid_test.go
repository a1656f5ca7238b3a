package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testRapidClient(url string) *rapidClient {
	return &rapidClient{
		url:         url,
		host:        "test.example.com",
		key:         "test-key",
		client:      &http.Client{},
		timeout:     2 * time.Second,
		temperature: 0.7,
		maxTokens:   500,
		history:     newContextWindow(6),
	}
}

func TestParseRapidEnvelopeShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"result list", `{"result":["Stay hydrated."],"status":true}`, "Stay hydrated."},
		{"result string", `{"result":"Stay hydrated.","status":true}`, "Stay hydrated."},
		{"openai choices", `{"choices":[{"message":{"role":"assistant","content":"Rest well."}}]}`, "Rest well."},
		{"flat response", `{"response":"Drink fluids."}`, "Drink fluids."},
		{"raw json string", `"Take rest."`, "Take rest."},
		{"bare text", `Take rest.`, "Take rest."},
	}
	for _, c := range cases {
		got, err := parseRapidEnvelope([]byte(c.body))
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestParseRapidEnvelopeErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"error envelope", `{"error":"json format error"}`},
		{"false status", `{"result":["ignored"],"status":false}`},
		{"unrecognized object", `{"data":{"unexpected":true}}`},
		{"empty body", ``},
		{"empty result list", `{"result":[],"status":true}`},
	}
	for _, c := range cases {
		_, err := parseRapidEnvelope([]byte(c.body))
		if err == nil {
			t.Errorf("%s: expected typed error", c.name)
			continue
		}
		if err.Reason != ReasonMalformed {
			t.Errorf("%s: reason = %s, want %s", c.name, err.Reason, ReasonMalformed)
		}
	}
}

func TestRapidStatusClassification(t *testing.T) {
	cases := []struct {
		status int
		want   FailureReason
	}{
		{http.StatusUnauthorized, ReasonAuthFailed},
		{http.StatusForbidden, ReasonForbidden},
		{http.StatusTooManyRequests, ReasonRateLimited},
		{http.StatusInternalServerError, ReasonUpstream},
		{http.StatusBadGateway, ReasonUpstream},
	}
	for _, c := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", c.status)
		}))
		rc := testRapidClient(srv.URL)
		_, err := rc.Answer(context.Background(), "fever and headache", 1, "en-US")
		srv.Close()
		if err == nil {
			t.Fatalf("status %d: expected error", c.status)
		}
		var perr *ProviderError
		if !errors.As(err, &perr) {
			t.Fatalf("status %d: expected *ProviderError, got %T", c.status, err)
		}
		if perr.Reason != c.want {
			t.Errorf("status %d: reason = %s, want %s", c.status, perr.Reason, c.want)
		}
	}
}

func TestRapidTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	rc := testRapidClient(srv.URL)
	rc.timeout = 20 * time.Millisecond
	_, err := rc.Answer(context.Background(), "cough", 1, "en-US")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Reason != ReasonTimeout {
		t.Errorf("expected timeout reason, got %v", err)
	}
}

func TestRapidClearsHistoryOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rc := testRapidClient(srv.URL)
	rc.history.Append(7, "earlier message")
	rc.Answer(context.Background(), "fever", 7, "en-US")
	if got := rc.history.Snapshot(7); len(got) != 0 {
		t.Errorf("history should be cleared on provider error, got %v", got)
	}
}

func TestRapidKeepsHistoryOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":["All good."],"status":true}`))
	}))
	defer srv.Close()

	rc := testRapidClient(srv.URL)
	got, err := rc.Answer(context.Background(), "hello", 7, "en-US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "All good." {
		t.Errorf("got %q", got)
	}
	history := rc.history.Snapshot(7)
	if len(history) != 2 || history[0] != "hello" || history[1] != "All good." {
		t.Errorf("expected query and response in window, got %v", history)
	}
}

func TestRapidErrorNeverEscapesAdapter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := &HealthAssistant{provider: testRapidClient(srv.URL)}
	msg := "I have a fever and headache"
	got, err := a.Answer(context.Background(), msg, 1, "en-US")
	if err != nil {
		t.Fatalf("provider error crossed the adapter boundary: %v", err)
	}
	if strings.TrimSpace(got) == "" {
		t.Fatal("expected non-empty fallback text")
	}
	if got != Respond(msg, "en-US") {
		t.Errorf("expected fallback responder output")
	}
}
