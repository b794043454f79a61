package handler

import "net/http"

// Validator converts a raw record into a validated one.
// *schema.Schema[R, V] implements it.
type Validator[R, V any] interface {
	Validate(raw R) (V, error)
}

// Validate runs s against the bound raw record and calls h with the
// validated record. When validation fails h is not called and the
// *schema.ValidationError reaches the ErrorHandler of Wrap.
func Validate[C Context, R, V any](s Validator[R, V], h HandlerFunc[C, V]) HandlerFunc[C, R] {
	return func(ctx C, raw R) Response {
		v, err := s.Validate(raw)
		if err != nil {
			return Fail(err)
		}
		return h(ctx, v)
	}
}

type failedResponse struct {
	err error
}

func (f failedResponse) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}

// Fail returns a Response that writes nothing and hands err to the
// ErrorHandler of Wrap.
func Fail(err error) Response {
	return failedResponse{err: err}
}
