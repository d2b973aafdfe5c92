package mux

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"holdem-equity/pkg/deck"
	"holdem-equity/pkg/mcts"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const progressEvery = 100

type progressFrame struct {
	Done   int     `json:"done"`
	Total  int     `json:"total"`
	Equity float64 `json:"equity"`
	Final  bool    `json:"final"`
}

// getEquityWS streams search progress over a websocket. The client supplies
// hand=AS,KD plus optional iterations and seed query parameters; the server
// pushes a progress frame every hundred iterations, then a final frame and a
// normal close.
func (m *Mux) getEquityWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		hand, err := parseHand(strings.Split(r.FormValue("hand"), ","))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		iterations := m.defaultIterations
		if its := r.FormValue("iterations"); its != "" {
			val, err := strconv.Atoi(its)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}

			if iterations, err = m.parseIterations(val); err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}
		}

		var seed int64
		if s := r.FormValue("seed"); s != "" {
			if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}
		defer conn.Close()

		log := logrus.WithFields(logrus.Fields{
			"searchId": uuid.New().String(),
			"hand":     deck.CardsToString(hand),
		})

		// the search and the progress writes share this goroutine, so frames
		// never interleave
		tree := mcts.New(hand, mcts.WithRand(m.newRand(seed)), mcts.WithProgress(progressEvery, func(n int, estimate float64) {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(progressFrame{Done: n, Total: iterations, Equity: estimate}); err != nil {
				log.WithError(err).Debug("could not write progress frame")
			}
		}))

		equity := tree.Search(iterations)
		log.WithField("equity", equity).Info("websocket equity search finished")

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(progressFrame{Done: iterations, Total: iterations, Equity: equity, Final: true})
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
}
