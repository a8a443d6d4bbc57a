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
	mu    sync.Mutex
	cache = make(map[reflect.Type]*entry)

	dotenvOnce sync.Once
)

// Load parses the environment into v. Each struct type is parsed once per
// process; later calls copy the cached value. A failed parse is cached too,
// so fix the environment and call Reset before retrying.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()

	e := lookup(reflect.TypeFor[T]())
	e.once.Do(func() {
		var cfg T
		if err := parse(&cfg, env.Options{}); err != nil {
			e.err = err
			return
		}
		e.value = cfg
	})
	if e.err != nil {
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Parse fills v without touching the cache. Variable names are looked up
// with prefix prepended.
func Parse[T any](v *T, prefix string) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDotenv()
	return parse(v, env.Options{Prefix: prefix})
}

// LoadEnv reads the given .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func lookup(t reflect.Type) *entry {
	mu.Lock()
	defer mu.Unlock()

	e, ok := cache[t]
	if !ok {
		e = &entry{}
		cache[t] = e
	}
	return e
}

func loadDotenv() {
	dotenvOnce.Do(func() {
		// A missing .env file is the normal case outside development.
		_ = godotenv.Load()
	})
}

func parse[T any](v *T, opts env.Options) error {
	if err := env.ParseWithOptions(v, opts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
