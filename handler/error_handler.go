package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/binder"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/schema"
)

// ErrorInfo is the classified form of an error returned while serving a request.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	LogLevel   slog.Level
	Validation *schema.ValidationError
}

// Detail converts the classification into the JSON error body.
func (i ErrorInfo) Detail() *ErrorDetail {
	d := &ErrorDetail{Code: i.Code, Message: i.Message}
	if i.Validation != nil {
		d.Details = i.Validation.ByPath()
		d.Failures = i.Validation.Details()
	}
	return d
}

// Text returns the plain-text body for clients that do not accept JSON.
func (i ErrorInfo) Text() string {
	if i.Validation != nil {
		return i.Validation.HumanReadable()
	}
	return i.Message + "\n"
}

// Classify maps err to a status code:
//
//	*schema.ValidationError                                422
//	binder.ErrUnsupportedMediaType, ErrMissingContentType  415
//	binder.ErrBodyTooLarge                                 413
//	binder.ErrFailedToDecode                               400
//	HTTPError                                              its Code
//	anything else                                          500
func Classify(err error) ErrorInfo {
	if verr, ok := schema.AsValidationError(err); ok {
		return ErrorInfo{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       ErrUnprocessableEntity.Key,
			Message:    "validation failed",
			LogLevel:   slog.LevelInfo,
			Validation: verr,
		}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return clientError(ErrUnsupportedMediaType, err)
	case errors.Is(err, binder.ErrBodyTooLarge):
		return clientError(ErrRequestEntityTooLarge, err)
	case errors.Is(err, binder.ErrFailedToDecode):
		return clientError(ErrBadRequest, err)
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info := ErrorInfo{
			StatusCode: httpErr.Code,
			Code:       httpErr.Key,
			Message:    http.StatusText(httpErr.Code),
			LogLevel:   slog.LevelWarn,
		}
		if httpErr.Code >= http.StatusInternalServerError {
			info.LogLevel = slog.LevelError
		}
		return info
	}

	return ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    http.StatusText(http.StatusInternalServerError),
		LogLevel:   slog.LevelError,
	}
}

func clientError(e HTTPError, err error) ErrorInfo {
	return ErrorInfo{
		StatusCode: e.Code,
		Code:       e.Key,
		Message:    err.Error(),
		LogLevel:   slog.LevelWarn,
	}
}

// AcceptsJSON reports whether the Accept header of r admits a JSON body.
// A missing header admits anything.
func AcceptsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	for part := range strings.SplitSeq(accept, ",") {
		mt, _, _ := strings.Cut(part, ";")
		mt = strings.ToLower(strings.TrimSpace(mt))
		if mt == "*/*" || mt == "application/*" || mt == binder.MIMEJSON || strings.HasSuffix(mt, "+json") {
			return true
		}
	}
	return false
}

type errorResponse struct {
	info ErrorInfo
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if AcceptsJSON(r) {
		return jsonResponse{
			status: e.info.StatusCode,
			body:   JSONResponse{Error: e.info.Detail()},
		}.Render(w, r)
	}
	return Text(e.info.StatusCode, e.info.Text()).Render(w, r)
}

// Error creates the response for err: JSON when the client accepts it,
// otherwise plain text with the human readable rendering of validation
// failures.
func Error(err error) Response {
	return errorResponse{info: Classify(err)}
}

// NewErrorHandler returns an ErrorHandler that logs every error at the
// level chosen by Classify and then writes the Error response. Records are
// logged with the request context, so context extractors such as
// requestid.LogExtractor apply.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err)

		attrs := []slog.Attr{
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("handler"),
		}
		if info.Validation != nil {
			attrs = append(attrs, logger.Failures(info.Validation.Len()))
		}
		log.LogAttrs(r.Context(), info.LogLevel, "request error", attrs...)

		if renderErr := (errorResponse{info: info}).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
