// Package translate memoizes calls to an external machine-translation
// endpoint. Failures degrade to pass-through: the caller always gets text
// back, never an error, and a failed lookup is retried on the next call
// because nothing is cached for it.
package translate

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"frostward/pkg/ratelimit"
)

// Backend is the external translation collaborator.
type Backend interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type cacheKey struct {
	text   string
	target string
}

// Translator caches translations per exact (text, target language) pair. The
// cache is unbounded and process-scoped; no normalization is applied, so
// inputs differing only in whitespace are distinct entries.
type Translator struct {
	backend Backend
	limiter *ratelimit.Adaptive

	mu    sync.Mutex
	cache map[cacheKey]string
}

func New(backend Backend) *Translator {
	return &Translator{
		backend: backend,
		limiter: ratelimit.NewAdaptive(4, 1, 10, 1, 0.5),
		cache:   make(map[cacheKey]string),
	}
}

// Translate returns text translated into targetLang, or text unchanged when
// the backend is unavailable. Source language is always auto-detected.
func (t *Translator) Translate(ctx context.Context, text, targetLang string) string {
	key := cacheKey{text: text, target: targetLang}

	t.mu.Lock()
	if cached, ok := t.cache[key]; ok {
		t.mu.Unlock()
		return cached
	}
	t.mu.Unlock()

	if err := t.limiter.Wait(ctx); err != nil {
		return text
	}

	translated, err := t.backend.Translate(ctx, text, "auto", targetLang)
	if err != nil {
		t.limiter.Failure()
		log.Warn().Err(err).Str("target", targetLang).Msg("translation failed, passing original through")
		return text
	}
	t.limiter.Success()

	t.mu.Lock()
	t.cache[key] = translated
	t.mu.Unlock()
	return translated
}

// CacheSize reports the number of memoized entries.
func (t *Translator) CacheSize() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cache)
}
