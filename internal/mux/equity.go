package mux

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"holdem-equity/internal/rng"
	"holdem-equity/pkg/deck"
	"holdem-equity/pkg/mcts"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type equityRequest struct {
	Hand       []string `json:"hand"`
	Iterations int      `json:"iterations"`
	Seed       int64    `json:"seed"`
}

type equityResponse struct {
	Hand       []string `json:"hand"`
	Iterations int      `json:"iterations"`
	Equity     float64  `json:"equity"`
	Elapsed    string   `json:"elapsed"`
}

func (m *Mux) postEquity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload equityRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		hand, err := parseHand(payload.Hand)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		iterations, err := m.parseIterations(payload.Iterations)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		searchID := uuid.New().String()
		log := logrus.WithFields(logrus.Fields{
			"searchId":   searchID,
			"hand":       deck.CardsToString(hand),
			"iterations": iterations,
		})
		log.Info("equity search started")

		start := time.Now()
		equity := mcts.EstimateEquity(hand, iterations, mcts.WithRand(m.newRand(payload.Seed)))
		elapsed := time.Since(start)

		log.WithFields(logrus.Fields{
			"equity":  equity,
			"elapsed": elapsed,
		}).Info("equity search finished")

		writeJSON(w, http.StatusOK, equityResponse{
			Hand:       []string{hand[0].String(), hand[1].String()},
			Iterations: iterations,
			Equity:     equity,
			Elapsed:    elapsed.String(),
		})
	}
}

// parseHand validates and parses exactly two distinct card tokens
func parseHand(tokens []string) ([]deck.Card, error) {
	if len(tokens) != 2 {
		return nil, fmt.Errorf("hand must be exactly 2 cards, got %d", len(tokens))
	}

	hand := make([]deck.Card, 2)
	for i, token := range tokens {
		card, err := deck.ParseCard(token)
		if err != nil {
			return nil, err
		}

		hand[i] = card
	}

	if hand[0].Equal(hand[1]) {
		return nil, errors.New("hand cannot contain the same card twice")
	}

	return hand, nil
}

func (m *Mux) parseIterations(iterations int) (int, error) {
	if iterations == 0 {
		return m.defaultIterations, nil
	}

	if iterations < 0 {
		return 0, errors.New("iterations cannot be negative")
	}

	if iterations > m.maxIterations {
		return 0, fmt.Errorf("iterations cannot be greater than %d", m.maxIterations)
	}

	return iterations, nil
}

// newRand builds the search's random source: the supplied seed if non-zero,
// otherwise a crypto-derived one
func (m *Mux) newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rng.Seed(rng.Crypto{})
	}

	return rand.New(rand.NewSource(seed))
}
