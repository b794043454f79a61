package config

import (
	"errors"

	"github.com/dmitrymomot/validkit/pkg/httpserver"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/schema"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// AppConfig is the configuration of the validkit binary.
type AppConfig struct {
	HTTP       httpserver.Config
	Log        logger.Config
	Validation ValidationConfig
}

// ValidationConfig tunes schema execution and request decoding.
type ValidationConfig struct {
	ParallelFields int   `env:"VALIDATION_PARALLEL_FIELDS" envDefault:"0"`
	MaxBodySize    int64 `env:"VALIDATION_MAX_BODY_SIZE" envDefault:"1048576"`
}

var validationConfigs = schema.NewBuilder[ValidationConfig, ValidationConfig]("validation_config").
	Field("ParallelFields",
		schema.Check("parallel_fields >= 0", validator.NonNegative[int]).
			WithMessage("VALIDATION_PARALLEL_FIELDS must not be negative"),
	).
	Field("MaxBodySize",
		schema.Check("max_body_size > 0", validator.Positive[int64]).
			WithMessage("VALIDATION_MAX_BODY_SIZE must be positive"),
	).
	MustBuild()

// Check validates the settings that have no safe fallback.
func (c AppConfig) Check() error {
	if _, err := validationConfigs.Validate(c.Validation); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
