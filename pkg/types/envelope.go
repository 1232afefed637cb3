// Package types holds the JSON wire contract shared by every storefront endpoint.
package types

// RequestIDHeader carries the correlation id the API assigns to each request. It is echoed
// on every response and repeated in the envelope.
const RequestIDHeader = "X-Storefront-Request-Id"

// Envelope wraps every JSON body. Exactly one of Data and Error is set.
type Envelope struct {
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError is the public part of a failed request. Details are only present for client
// mistakes such as validation failures.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
