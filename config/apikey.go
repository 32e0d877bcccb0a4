package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// ErrAPIKeyNotFound is returned when no resolver in the chain produced a key.
var ErrAPIKeyNotFound = errors.New("GEMINI_API_KEY not found in environment or key file")

// KeyResolver is one strategy for locating the Gemini API key. Resolvers
// return an empty string when they have nothing, and an error only for a
// genuine failure reading a source that exists.
type KeyResolver interface {
	Name() string
	Resolve() (string, error)
}

// EnvKeyResolver reads the key from an environment variable.
type EnvKeyResolver struct {
	Var string
}

func (r EnvKeyResolver) Name() string { return "env:" + r.Var }

func (r EnvKeyResolver) Resolve() (string, error) {
	return strings.TrimSpace(os.Getenv(r.Var)), nil
}

// FileKeyResolver reads the key from a mounted secret file.
type FileKeyResolver struct {
	Path string
}

func (r FileKeyResolver) Name() string { return "file:" + r.Path }

func (r FileKeyResolver) Resolve() (string, error) {
	if r.Path == "" {
		return "", nil
	}
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ResolveAPIKey walks the configured resolver chain and returns the first
// non-empty key. Called once at startup; absence of a key is a hard error,
// not something to rediscover per request.
func (c *Config) ResolveAPIKey() (string, error) {
	resolvers := []KeyResolver{
		EnvKeyResolver{Var: "GEMINI_API_KEY"},
		FileKeyResolver{Path: c.GeminiAPIKeyFile},
	}

	for _, r := range resolvers {
		key, err := r.Resolve()
		if err != nil {
			log.Printf("[Config] API key resolver %s failed: %v", r.Name(), err)
			continue
		}
		if key != "" {
			log.Printf("[Config] Using API key from %s", r.Name())
			return key, nil
		}
	}

	return "", ErrAPIKeyNotFound
}
