package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil err yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr { return slog.String("component", name) }
func Event(name string) slog.Attr     { return slog.String("event", name) }

// Schema records the schema name under "schema".
func Schema(name string) slog.Attr { return slog.String("schema", name) }

// Phase records a validation phase ("pre", "fields", "post") under "phase".
func Phase(name string) slog.Attr { return slog.String("phase", name) }

// Failures records the number of failures in a report under "failures".
func Failures(n int) slog.Attr { return slog.Int("failures", n) }

// Status records an HTTP status code under "status".
func Status(code int) slog.Attr { return slog.Int("status", code) }

// MediaType records a request media type under "media_type".
func MediaType(mt string) slog.Attr { return slog.String("media_type", mt) }

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }
