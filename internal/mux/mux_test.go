package mux

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(NewMux("v1.0.0-test"))
	t.Cleanup(ts.Close)
	return ts
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, statusCode, resp.StatusCode)

	if respObj != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(respObj))
	}
}

func TestMux_GetHealth(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/health")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health healthResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "v1.0.0-test", health.Version)
}
