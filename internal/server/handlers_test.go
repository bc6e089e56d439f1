package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podume/resume-extractor/internal/config"
	"github.com/podume/resume-extractor/internal/server/ratelimit"
	"github.com/podume/resume-extractor/internal/types"
)

const sampleResumeText = `Jane Smith
jane.smith@email.com | 555-123-4567

SUMMARY
Experienced software engineer with a focus on distributed systems
and developer tooling across a decade of production work.

EXPERIENCE
Senior Software Engineer at TechCorp, 2020-2024, leading the platform team
Software Engineer at StartupCo, 2016-2020, building backend services

EDUCATION
Bachelor of Science in Computer Science, State University, 2016

SKILLS
Go, Python, PostgreSQL, Docker, Kubernetes`

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	return New(opts)
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, Options{Port: 8080})

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestExtractText(t *testing.T) {
	s := newTestServer(t, Options{Port: 8080})

	body, err := json.Marshal(map[string]string{"text": sampleResumeText})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/extract/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(s, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp extractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, "Jane Smith", resp.Result.Structured.Name)
	assert.Equal(t, "jane.smith@email.com", resp.Result.Structured.Contact.Email)
	assert.Equal(t, types.MethodFallback, resp.Result.Metadata.ExtractionMethod)
	assert.Nil(t, resp.ID, "no store configured, no record ID")
}

func TestExtractText_Invalid(t *testing.T) {
	s := newTestServer(t, Options{Port: 8080})

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: "{not json"},
		{name: "missing text", body: "{}"},
		{name: "text too short", body: `{"text": "Hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/extract/text", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := doRequest(s, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func multipartUpload(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestExtract_RejectsWrongFileType(t *testing.T) {
	s := newTestServer(t, Options{Port: 8080})

	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x00}, 200)...)
	buf, contentType := multipartUpload(t, "file", "photo.jpg", jpeg)

	req := httptest.NewRequest(http.MethodPost, "/extract", buf)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "JPEG image")
}

func TestExtract_RejectsCorruptPDF(t *testing.T) {
	s := newTestServer(t, Options{Port: 8080})

	corrupt := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("garbage "), 20)...)
	buf, contentType := multipartUpload(t, "file", "resume.pdf", corrupt)

	req := httptest.NewRequest(http.MethodPost, "/extract", buf)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(s, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestExtract_MissingFileField(t *testing.T) {
	s := newTestServer(t, Options{Port: 8080})

	buf, contentType := multipartUpload(t, "wrong", "resume.pdf", []byte("%PDF-1.7"))
	req := httptest.NewRequest(http.MethodPost, "/extract", buf)
	req.Header.Set("Content-Type", contentType)
	rec := doRequest(s, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordEndpoints_NoStore(t *testing.T) {
	s := newTestServer(t, Options{Port: 8080})

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/extractions", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(s, httptest.NewRequest(http.MethodGet, "/extractions/8a1f6e3c-0000-0000-0000-000000000000", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuth(t *testing.T) {
	jwtCfg := &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}
	s := newTestServer(t, Options{Port: 8080, JWT: jwtCfg})

	t.Run("health is open", func(t *testing.T) {
		rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/extract/text", strings.NewReader(`{"text":"x"}`))
		rec := doRequest(s, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/extract/text", strings.NewReader(`{"text":"x"}`))
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := doRequest(s, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := s.jwtService.GenerateToken(mustUUID(t))
		require.NoError(t, err)

		body, err := json.Marshal(map[string]string{"text": sampleResumeText})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/extract/text", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		rec := doRequest(s, req)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, Options{
		Port: 8080,
		RateLimit: &ratelimit.Config{
			Enabled: true,
			EndpointConfigs: []ratelimit.EndpointConfig{
				{Path: "/extract/text", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
			},
			DefaultLimit:  1000,
			DefaultWindow: time.Minute,
		},
	})

	send := func() int {
		body, _ := json.Marshal(map[string]string{"text": sampleResumeText})
		req := httptest.NewRequest(http.MethodPost, "/extract/text", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return doRequest(s, req).Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}
