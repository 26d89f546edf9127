// Package types holds the wire envelopes shared by every GameHub endpoint.
package types

// SuccessEnvelope wraps successful responses as {"data": ...}, the shape the
// storefront clients unwrap.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public face of a pkg/errors code: the machine-readable
// code, a display message, and optional per-field details.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps failures as {"error": {...}}.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
