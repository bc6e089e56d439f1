package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_InvalidURL(t *testing.T) {
	tests := []string{
		"",
		"not a url",
		"://missing-scheme",
		"relative/path",
	}

	for _, urlStr := range tests {
		t.Run(urlStr, func(t *testing.T) {
			_, err := URL(context.Background(), urlStr, nil)
			var fetchErr *Error
			require.True(t, errors.As(err, &fetchErr))
			assert.Contains(t, fetchErr.Error(), "invalid URL")
		})
	}
}

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Jane Doe</main></body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Jane Doe")
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Error(), "HTTP status 404")
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractMainText_PrefersMainContent(t *testing.T) {
	html := `<html><body>
		<nav>Home | Login</nav>
		<main><h1>Jane Doe</h1><p>Software Engineer</p></main>
		<footer>© 2026</footer>
	</body></html>`

	text, err := ExtractMainText(html, ProfileContentSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Software Engineer")
	assert.NotContains(t, text, "Home | Login")
	assert.NotContains(t, text, "© 2026")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div><p>Jane Doe</p><p>Engineer at Acme</p></div></body></html>`

	text, err := ExtractMainText(html, ProfileContentSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Engineer at Acme")
}

func TestExtractMainText_StripsScriptsAndStyles(t *testing.T) {
	html := `<html><body>
		<script>var tracking = true;</script>
		<style>.hidden { display: none }</style>
		<main>Visible content only</main>
	</body></html>`

	text, err := ExtractMainText(html, ProfileContentSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Visible content only")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "display: none")
}
