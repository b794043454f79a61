package handler

import (
	"io"
	"net/http"
)

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(t.status)
	if t.body == "" {
		return nil
	}
	_, err := io.WriteString(w, t.body)
	return err
}

// Text creates a plain-text response.
func Text(status int, body string) Response {
	return textResponse{status: status, body: body}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates a 204 No Content response.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus creates a body-less response with the given status.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}
