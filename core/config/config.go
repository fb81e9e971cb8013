package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilTarget is returned when Load receives a nil pointer.
var ErrNilTarget = errors.New("config: target must be a non-nil pointer")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (a value of the config type)
	mu         sync.Mutex
)

// Load fills cfg from the environment. The first call for a given type parses
// the environment; later calls copy the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	typ := reflect.TypeFor[T]()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	dotenvOnce.Do(func() {
		// A missing .env file is normal outside development.
		_ = godotenv.Load()
	})

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}

	cache.Store(typ, loaded)
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the environment without touching the cache. Nested
// structs use envPrefix tags as usual.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", reflect.TypeFor[T](), err)
	}
	return nil
}

// Reset drops all cached values. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache.Range(func(k, _ any) bool {
		cache.Delete(k)
		return true
	})
}
