package binder

import (
	"fmt"
	"io"
	"net/http"
	"reflect"
)

// DefaultMaxBodySize is the request body limit used by Request (1 MB).
const DefaultMaxBodySize int64 = 1 << 20

// Decode decodes data according to contentType into v, which must be a
// non-nil pointer to a struct.
func Decode(data []byte, contentType string, v any) error {
	if err := checkTarget(v); err != nil {
		return err
	}

	mt, err := MediaType(contentType)
	if err != nil {
		return err
	}

	decode, ok := decoders[mt]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
	}

	if err := decode(data, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedToDecode, mt, err)
	}
	return nil
}

// RequestOption configures Request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	maxBodySize int64
}

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) RequestOption {
	return func(c *requestConfig) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

// Request reads the body of r under a size limit and decodes it by the
// request Content-Type.
func Request(r *http.Request, v any, opts ...RequestOption) error {
	cfg := requestConfig{maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := r.Context()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrFailedToDecode, ctx.Err())
	default:
	}

	contentType := r.Header.Get("Content-Type")
	mt, err := MediaType(contentType)
	if err != nil {
		return err
	}
	if !Supported(mt) {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
	}

	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrFailedToDecode)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxBodySize+1))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrFailedToDecode, err)
	}
	if int64(len(body)) > cfg.maxBodySize {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, cfg.maxBodySize)
	}

	return Decode(body, contentType, v)
}

func checkTarget(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}
	return nil
}
