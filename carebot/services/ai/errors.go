package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// FailureReason classifies why a provider call failed. Every reason is
// recovered inside the adapter by the fallback responder; none of them reach
// the session handler.
type FailureReason string

const (
	ReasonUnconfigured FailureReason = "unconfigured"
	ReasonAuthFailed   FailureReason = "auth_failed"
	ReasonForbidden    FailureReason = "forbidden"
	ReasonRateLimited  FailureReason = "rate_limited"
	ReasonTimeout      FailureReason = "timeout"
	ReasonUpstream     FailureReason = "upstream"
	ReasonMalformed    FailureReason = "malformed_response"
)

type ProviderError struct {
	Provider string
	Reason   FailureReason
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func providerErr(provider string, reason FailureReason, err error) *ProviderError {
	return &ProviderError{Provider: provider, Reason: reason, Err: err}
}

// classifyStatus maps an HTTP status from a provider to a failure reason.
func classifyStatus(provider string, status int, body string) *ProviderError {
	err := fmt.Errorf("status %d: %s", status, body)
	switch {
	case status == http.StatusUnauthorized:
		return providerErr(provider, ReasonAuthFailed, err)
	case status == http.StatusForbidden:
		return providerErr(provider, ReasonForbidden, err)
	case status == http.StatusTooManyRequests:
		return providerErr(provider, ReasonRateLimited, err)
	case status >= 500:
		return providerErr(provider, ReasonUpstream, err)
	default:
		return providerErr(provider, ReasonMalformed, err)
	}
}

// classifyTransport maps connection-level errors (no HTTP status available).
func classifyTransport(provider string, err error) *ProviderError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return providerErr(provider, ReasonTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return providerErr(provider, ReasonTimeout, err)
	default:
		return providerErr(provider, ReasonUpstream, err)
	}
}
