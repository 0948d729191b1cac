package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondForbidden(rec, "Pay the bus fees to access seat")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Pay the bus fees to access seat", body.Message)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Count int `json:"count"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count": 3}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, 3, dst.Count)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count": 3, "extra": true}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(req, &dst))
}
