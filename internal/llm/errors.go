package llm

import "errors"

var (
	// ErrNoAPIKey indicates no API key has been configured.
	ErrNoAPIKey = errors.New("llm api key not configured")

	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("llm endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the model returned no choices.
	ErrEmptyResponse = errors.New("llm returned empty response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
