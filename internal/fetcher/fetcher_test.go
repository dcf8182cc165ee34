package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, docs map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		doc, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetch(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/owner/repo/main/README.md": "# Hello\n\nWorld\n",
	})
	f := New(Config{BaseURL: server.URL + "/"})

	t.Run("success", func(t *testing.T) {
		text, err := f.Fetch(context.Background(), "owner/repo/main/README.md")
		require.NoError(t, err)
		assert.Equal(t, "# Hello\n\nWorld\n", text)
	})

	t.Run("leading slash in locator", func(t *testing.T) {
		text, err := f.Fetch(context.Background(), "/owner/repo/main/README.md")
		require.NoError(t, err)
		assert.Equal(t, "# Hello\n\nWorld\n", text)
	})

	t.Run("absolute url bypasses base", func(t *testing.T) {
		other := New(Config{BaseURL: "http://unused.invalid/"})
		text, err := other.Fetch(context.Background(), server.URL+"/owner/repo/main/README.md")
		require.NoError(t, err)
		assert.Equal(t, "# Hello\n\nWorld\n", text)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), "owner/repo/main/MISSING.md")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTransport))

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.True(t, strings.HasSuffix(statusErr.URL, "/owner/repo/main/MISSING.md"))
	})

	t.Run("empty locator", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrEmptyLocator)
	})
}

func TestFetch_NoRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := New(Config{BaseURL: server.URL})
	_, err := f.Fetch(context.Background(), "doc.md")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, err.Error(), "503")
}

func TestFetch_SendsUserAgent(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	f := New(Config{BaseURL: server.URL, UserAgent: "test-agent/2.0"})
	_, err := f.Fetch(context.Background(), "doc.md")

	require.NoError(t, err)
	assert.Equal(t, "test-agent/2.0", got)
}

func TestFetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	f := New(Config{BaseURL: baseURL, Timeout: time.Second})
	_, err := f.Fetch(context.Background(), "doc.md")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestFetch_ContextCanceled(t *testing.T) {
	server := newTestServer(t, map[string]string{"/doc.md": "text"})
	f := New(Config{BaseURL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, "doc.md")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
}

func TestFetchAll(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"/a.md":  "# A",
		"/b.rst": "B\n=",
		"/c.tex": "\\section{C}",
	})
	f := New(Config{BaseURL: server.URL, MaxConcurrency: 2})

	t.Run("preserves order", func(t *testing.T) {
		texts, err := f.FetchAll(context.Background(), []string{"c.tex", "a.md", "b.rst"})
		require.NoError(t, err)
		assert.Equal(t, []string{"\\section{C}", "# A", "B\n="}, texts)
	})

	t.Run("first failure fails the batch", func(t *testing.T) {
		_, err := f.FetchAll(context.Background(), []string{"a.md", "missing.md"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.md")

		var statusErr *StatusError
		assert.True(t, errors.As(err, &statusErr))
	})

	t.Run("empty batch", func(t *testing.T) {
		texts, err := f.FetchAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, texts)
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "")
		t.Setenv(EnvTimeout, "")
		t.Setenv(EnvMaxConcurrency, "")

		f, err := NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, f.BaseURL())
		assert.Equal(t, DefaultMaxConcurrency, f.maxConcurrency)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "http://mirror.local/raw/")
		t.Setenv(EnvTimeout, "5s")
		t.Setenv(EnvUserAgent, "custom")
		t.Setenv(EnvMaxConcurrency, "8")

		f, err := NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "http://mirror.local/raw/", f.BaseURL())
		assert.Equal(t, "custom", f.userAgent)
		assert.Equal(t, 8, f.maxConcurrency)
		assert.Equal(t, "http://mirror.local/raw/x/y.md", f.URL("x/y.md"))
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv(EnvTimeout, "soon")
		_, err := NewFromEnv()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid concurrency", func(t *testing.T) {
		t.Setenv(EnvTimeout, "")
		t.Setenv(EnvMaxConcurrency, "-1")
		_, err := NewFromEnv()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
