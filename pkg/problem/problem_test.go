package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusNotFound, "Not Found", "There is no insurance with this id")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var p Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "about:blank", p.Type)
	assert.Equal(t, "Not Found", p.Title)
	assert.Equal(t, http.StatusNotFound, p.Status)
	assert.Equal(t, "There is no insurance with this id", p.Detail)
	assert.Empty(t, p.Instance)
}

func TestWriteForRecordsInstance(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/life/abc-123", nil)
	rec := httptest.NewRecorder()
	WriteFor(rec, req, http.StatusNotFound, "Not Found", "There is no insurance with this id")

	var p Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "/api/life/abc-123", p.Instance)
}
