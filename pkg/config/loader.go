package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache          sync.Map // reflect.Type -> *entry
	defaultEnvOnce sync.Once
)

// Parse fills v from the environment after loading the given dotenv files.
// Variables already set in the process environment win over file values.
func Parse[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return errors.Join(ErrEnvFile, err)
		}
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Load fills v from the environment, parsing each config type only once per
// process. A .env file in the working directory is loaded on first use when
// present.
//
//	var cfg config.AppConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		_ = godotenv.Load()
	})

	e, _ := cache.LoadOrStore(reflect.TypeFor[T](), &entry{})
	ent := e.(*entry)
	ent.once.Do(func() {
		var fresh T
		if err := env.Parse(&fresh); err != nil {
			ent.err = errors.Join(ErrParsingConfig, err)
			return
		}
		ent.value = fresh
	})
	if ent.err != nil {
		return ent.err
	}
	*v = ent.value.(T)
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
