package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/linkvault"
	lvhttp "github.com/fwojciec/linkvault/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderService_ReadPage(t *testing.T) {
	t.Parallel()

	t.Run("appends encoded target to reader URL", func(t *testing.T) {
		t.Parallel()

		var gotURI string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotURI = r.RequestURI
			_, _ = w.Write([]byte("Title: Example Domain\n\nMarkdown Content:\nThis domain is for use in examples."))
		}))
		defer server.Close()

		svc := lvhttp.NewReaderService(server.URL + "/")

		page, err := svc.ReadPage(context.Background(), "https://example.com/a?q=1&r=2")
		require.NoError(t, err)

		assert.Equal(t, "/https%3A%2F%2Fexample.com%2Fa%3Fq%3D1%26r%3D2", gotURI)
		assert.Equal(t, "https://example.com/a?q=1&r=2", page.URL)
		assert.Equal(t, "Title: Example Domain\n\nMarkdown Content:\nThis domain is for use in examples.", page.Content)
		assert.Empty(t, page.FaviconURL)
	})

	t.Run("returns EUNAVAILABLE when reader fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := lvhttp.NewReaderService(server.URL+"/").ReadPage(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, linkvault.EUNAVAILABLE, linkvault.ErrorCode(err))
	})

	t.Run("rejects invalid target without calling reader", func(t *testing.T) {
		t.Parallel()

		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		_, err := lvhttp.NewReaderService(server.URL+"/").ReadPage(context.Background(), "ftp://example.com")
		require.Error(t, err)
		assert.Equal(t, linkvault.EINVALID, linkvault.ErrorCode(err))
		assert.False(t, called)
	})
}

func TestEncodeURIComponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https%3A%2F%2Fexample.com%2Fpath%3Fa%3D1%26b%3D2", lvhttp.EncodeURIComponent("https://example.com/path?a=1&b=2"))
	assert.Equal(t, "a%20b", lvhttp.EncodeURIComponent("a b"))
	assert.Equal(t,
		"https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FGo_(programming_language)",
		lvhttp.EncodeURIComponent("https://en.wikipedia.org/wiki/Go_(programming_language)"))
	assert.Equal(t, "!'()*-_.~", lvhttp.EncodeURIComponent("!'()*-_.~"))
	assert.Equal(t, "a%2Bb%25", lvhttp.EncodeURIComponent("a+b%"))
}
