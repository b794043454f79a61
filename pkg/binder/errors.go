package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToDecode       = errors.New("failed to decode request body")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrInvalidTarget        = errors.New("decode target must be a non-nil pointer to struct")
)
