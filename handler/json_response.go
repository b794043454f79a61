package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/validkit/pkg/schema"
)

// JSONResponse is the envelope of every JSON body written by this package.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details groups validation
// messages by dotted path; Failures lists every failure in report order.
type ErrorDetail struct {
	Code     string                 `json:"code,omitempty"`
	Message  string                 `json:"message,omitempty"`
	Details  map[string][]string    `json:"details,omitempty"`
	Failures []schema.FailureDetail `json:"failures,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to the envelope.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a 200 response with v as data. An error value is rendered
// as JSONError would render it.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case error:
		info := Classify(val)
		r.status = info.StatusCode
		r.body.Error = info.Detail()
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response with the status chosen by Classify.
func JSONError(err error, opts ...JSONOption) Response {
	info := Classify(err)
	r := &jsonResponse{
		status: info.StatusCode,
		body:   JSONResponse{Error: info.Detail()},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
