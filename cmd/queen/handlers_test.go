package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/advdv/queen"
	"github.com/advdv/queen/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *queen.Server {
	t.Helper()

	public := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(public, "index.html"), []byte("<h1>queen</h1>"), 0o600))

	mux := queen.NewServeMux(queen.WithLogger(queen.NewTestLogger(t)))
	require.NoError(t, mux.Use(plugin.JSON()))
	require.NoError(t, routing(mux, &Handlers{publicDir: public}))
	return mux.Build()
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, tt := range []struct {
		method, path, contentType, body string
		wantCode                        int
		wantBody                        string
	}{
		{"GET", "/", "", "", 200, "<h1>queen</h1>"},
		{"GET", "/users/42", "", "", 200, "Hello user 42"},
		{"GET", "/users/profile", "", "", 200, "user's profile page"},
		{"GET", "/Users/Profile/", "", "", 200, "user's profile page"},
		{"POST", "/json", "application/json", `{"a":1}`, 200, `{"data":{"a":1},"files":null,"message":"ok"}`},
		{"POST", "/json", "application/json", `{a:`, 200, `{"data":{},"files":null,"message":"ok"}`},
		{"POST", "/upload", "", "", 200, `{"data":{},"files":null,"message":"ok"}`},
		{"GET", "/nope", "", "", 404, `{"message":"not found"}`},
	} {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			srv.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestReverseUser(t *testing.T) {
	url, err := newTestServer(t).Reverse("user", "7")
	require.NoError(t, err)
	assert.Equal(t, "/users/7/", url)
}

func TestIndexMissing(t *testing.T) {
	mux := queen.NewServeMux(queen.WithLogger(queen.NewTestLogger(t)))
	require.NoError(t, routing(mux, &Handlers{publicDir: t.TempDir()}))

	rec := httptest.NewRecorder()
	mux.Build().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
