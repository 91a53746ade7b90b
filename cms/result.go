package cms

import "strings"

// Result is the uniform envelope returned by every client call.
// Exactly one of (Success and Data set) or (!Success and Error set) holds.
type Result[T any] struct {
	Success bool                   `json:"success"`
	Data    T                      `json:"data"`
	Error   string                 `json:"error,omitempty"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps the empty fallback in a failed envelope. An empty message is
// replaced so the envelope invariant holds.
func Fail[T any](fallback T, msg string) Result[T] {
	if msg == "" {
		msg = "Request failed"
	}
	return Result[T]{Success: false, Data: fallback, Error: msg}
}

// IsNotFound reports whether a failed envelope came from a slug lookup
// that matched nothing, as opposed to an upstream failure.
func (r Result[T]) IsNotFound() bool {
	return !r.Success && strings.HasSuffix(r.Error, " not found")
}
