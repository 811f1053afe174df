package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedBackend struct {
	calls   int
	results []func() (string, error)
}

func (b *scriptedBackend) Translate(_ context.Context, text, _, _ string) (string, error) {
	b.calls++
	if len(b.results) == 0 {
		return "translated:" + text, nil
	}
	fn := b.results[0]
	if len(b.results) > 1 {
		b.results = b.results[1:]
	}
	return fn()
}

func TestTranslateCachesByExactKey(t *testing.T) {
	backend := &scriptedBackend{}
	tr := New(backend)
	ctx := context.Background()

	first := tr.Translate(ctx, "bonjour", "en")
	second := tr.Translate(ctx, "bonjour", "en")

	assert.Equal(t, "translated:bonjour", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, backend.calls, "identical key must hit the collaborator at most once")

	// Whitespace variants are distinct entries.
	tr.Translate(ctx, "bonjour ", "en")
	assert.Equal(t, 2, backend.calls)

	// Same text, different target language: distinct entry.
	tr.Translate(ctx, "bonjour", "de")
	assert.Equal(t, 3, backend.calls)
	assert.Equal(t, 3, tr.CacheSize())
}

func TestTranslateFailureDoesNotPoisonCache(t *testing.T) {
	backend := &scriptedBackend{results: []func() (string, error){
		func() (string, error) { return "", errors.New("timeout") },
		func() (string, error) { return "hello", nil },
	}}
	tr := New(backend)
	ctx := context.Background()

	// First call fails: original text comes back, nothing cached.
	assert.Equal(t, "salut", tr.Translate(ctx, "salut", "en"))
	assert.Equal(t, 0, tr.CacheSize())

	// Retry with the same key reaches the collaborator again and caches.
	assert.Equal(t, "hello", tr.Translate(ctx, "salut", "en"))
	assert.Equal(t, "hello", tr.Translate(ctx, "salut", "en"))
	assert.Equal(t, 2, backend.calls)
}

func TestHTTPBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"translatedText":"hello"}`))
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.URL, time.Second)
	got, err := backend.Translate(context.Background(), "salut", "auto", "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestHTTPBackendNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.URL, time.Second)
	_, err := backend.Translate(context.Background(), "salut", "auto", "en")
	assert.Error(t, err)
}
