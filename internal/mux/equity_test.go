package mux

import (
	"net/http"
	"strings"
	"testing"

	"holdem-equity/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestMux_PostEquity(t *testing.T) {
	ts := testServer(t)

	var resp equityResponse
	assertPost(t, ts, "/equity", equityRequest{
		Hand:       []string{"as", "ah"},
		Iterations: 100,
		Seed:       42,
	}, &resp, http.StatusOK)

	assert.Equal(t, []string{"AS", "AH"}, resp.Hand)
	assert.Equal(t, 100, resp.Iterations)
	assert.GreaterOrEqual(t, resp.Equity, 0.0)
	assert.LessOrEqual(t, resp.Equity, 1.0)
	assert.NotEmpty(t, resp.Elapsed)

	// same seed, same estimate
	var again equityResponse
	assertPost(t, ts, "/equity", equityRequest{
		Hand:       []string{"AS", "AH"},
		Iterations: 100,
		Seed:       42,
	}, &again, http.StatusOK)
	assert.Equal(t, resp.Equity, again.Equity)
}

func TestMux_PostEquity_DefaultIterations(t *testing.T) {
	ts := testServer(t)

	var resp equityResponse
	assertPost(t, ts, "/equity", equityRequest{
		Hand: []string{"KD", "QC"},
		Seed: 7,
	}, &resp, http.StatusOK)

	assert.Equal(t, 1000, resp.Iterations)
}

func TestMux_PostEquity_BadRequests(t *testing.T) {
	ts := testServer(t)

	tests := []struct {
		name    string
		payload equityRequest
	}{
		{"one card", equityRequest{Hand: []string{"AS"}}},
		{"three cards", equityRequest{Hand: []string{"AS", "KD", "QC"}}},
		{"duplicate card", equityRequest{Hand: []string{"AS", "AS"}}},
		{"malformed token", equityRequest{Hand: []string{"AS", "XX"}}},
		{"negative iterations", equityRequest{Hand: []string{"AS", "KD"}, Iterations: -1}},
		{"too many iterations", equityRequest{Hand: []string{"AS", "KD"}, Iterations: 100001}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var errResp errorResponse
			assertPost(t, ts, "/equity", test.payload, &errResp, http.StatusBadRequest)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestMux_PostEquity_BadContentType(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Post(ts.URL+"/equity", "text/plain", strings.NewReader("hi"))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestParseHand(t *testing.T) {
	a := assert.New(t)

	hand, err := parseHand([]string{"as", "KD"})
	a.NoError(err)
	a.Equal(deck.MustCards("AS,KD"), hand)

	_, err = parseHand([]string{"AS"})
	a.Error(err)

	_, err = parseHand([]string{"AS", "as"})
	a.Error(err)
}
