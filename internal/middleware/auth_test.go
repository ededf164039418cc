package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(Principal(r.Context())))
	})
}

func TestAPIKeyAuthAcceptsHeaderKey(t *testing.T) {
	h := APIKeyAuth("secret", "insurhub-admin")(authedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/life", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "insurhub-admin", rec.Body.String())
}

func TestAPIKeyAuthAcceptsBearerToken(t *testing.T) {
	h := APIKeyAuth("secret", "insurhub-admin")(authedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/life", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyAuthRejectsWrongOrMissingKey(t *testing.T) {
	h := APIKeyAuth("secret", "insurhub-admin")(authedEcho(t))

	for _, setup := range []func(*http.Request){
		func(r *http.Request) {},
		func(r *http.Request) { r.Header.Set("X-API-Key", "wrong") },
		func(r *http.Request) { r.Header.Set("Authorization", "Bearer wrong") },
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/life", nil)
		setup(req)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAPIKeyAuthSkipsHealthAndSwagger(t *testing.T) {
	h := APIKeyAuth("secret", "insurhub-admin")(authedEcho(t))

	for _, path := range []string{"/health", "/readyz", "/swagger/doc.json"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.Empty(t, rec.Body.String(), "no principal on open path %s", path)
	}
}

func TestPrincipalEmptyWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, Principal(req.Context()))
}
