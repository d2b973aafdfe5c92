package mcts

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"holdem-equity/pkg/deck"
	"holdem-equity/pkg/poker"

	"github.com/sirupsen/logrus"
)

// DefaultIterations is the number of search iterations used when the caller
// has no opinion
const DefaultIterations = 1000

const defaultProgressEvery = 100

// Tree is a single equity search. A tree owns all of its nodes and must not
// be shared between goroutines; run concurrent searches on separate trees.
type Tree struct {
	root          *Node
	playerHand    []deck.Card
	rng           *rand.Rand
	explore       float64
	progressEvery int
	progressFn    ProgressFunc
}

// ProgressFunc receives the number of completed iterations and the running
// equity estimate
type ProgressFunc func(done int, estimate float64)

// Option configures a Tree
type Option func(*Tree)

// WithRand sets the random source used for shuffling and sampling. Seed it
// for reproducible searches.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tree) {
		t.rng = rng
	}
}

// WithProgress registers fn to be called after every {every} iterations.
// The callback runs on the searching goroutine.
func WithProgress(every int, fn ProgressFunc) Option {
	return func(t *Tree) {
		if every <= 0 {
			every = defaultProgressEvery
		}

		t.progressEvery = every
		t.progressFn = fn
	}
}

// New creates a search tree for the given two-card player hand
func New(playerHand []deck.Card, opts ...Option) *Tree {
	if len(playerHand) != 2 {
		panic(fmt.Sprintf("player hand must be exactly 2 cards, got %d", len(playerHand)))
	}

	hand := make([]deck.Card, 2)
	copy(hand, playerHand)

	t := &Tree{
		playerHand: hand,
		explore:    math.Sqrt2,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	root := &Node{
		stage:      StageRoot,
		playerHand: hand,
	}
	root.untried = sampleOpponentHands(t.rng, hand)

	t.root = root
	return t
}

// Root returns the root node for inspection after a search
func (t *Tree) Root() *Node {
	return t.root
}

// Search runs the four-phase loop for the given number of iterations and
// returns the estimated equity in [0,1]
func (t *Tree) Search(iterations int) float64 {
	start := time.Now()

	for i := 0; i < iterations; i++ {
		node := t.root

		// selection: descend while there is nothing left to expand
		for node.fullyExpanded() && len(node.children) > 0 {
			node = node.bestChild(t.explore)
		}

		// expansion: try the most recently sampled action
		if !node.fullyExpanded() {
			if child := node.expand(); child != nil {
				t.sampleUntried(child)
				node = child
			}
		}

		// simulation and backpropagation
		result := t.rollout(node)
		node.backpropagate(result)

		if t.progressFn != nil && (i+1)%t.progressEvery == 0 {
			t.progressFn(i+1, t.Estimate())
		}
	}

	logrus.WithFields(logrus.Fields{
		"hand":       deck.CardsToString(t.playerHand),
		"iterations": iterations,
		"equity":     t.Estimate(),
		"elapsed":    time.Since(start),
	}).Debug("search complete")

	return t.Estimate()
}

// Estimate returns the current win-rate estimate, or 0.0 if the root has
// never been visited
func (t *Tree) Estimate() float64 {
	if t.root.visits == 0 {
		return 0.0
	}

	return t.root.wins / float64(t.root.visits)
}

// sampleUntried fills a freshly expanded node's untried actions for its
// stage. River nodes get nothing: the board is complete.
func (t *Tree) sampleUntried(node *Node) {
	used := make([]deck.Card, 0, len(node.playerHand)+len(node.state))
	used = append(used, node.playerHand...)
	used = append(used, node.state...)

	switch node.stage {
	case StageOpponent:
		node.untried = sampleFlops(t.rng, used)
	case StageFlop:
		node.untried = sampleSingles(t.rng, used)
	case StageTurn:
		node.untried = sampleSingles(t.rng, used)
	}
}

// rollout completes the node's partial deal to a full showdown and scores it:
// 1 for a player win, 0 for a loss, 0.5 for an exact tie
func (t *Tree) rollout(node *Node) float64 {
	d := deck.New()

	seed := t.rng.Int63()
	if seed == 0 {
		seed = 1
	}
	d.Shuffle(seed)

	for _, c := range node.playerHand {
		d.RemoveCard(c)
	}
	for _, c := range node.state {
		d.RemoveCard(c)
	}

	var opponentHand, board []deck.Card
	if len(node.state) >= 2 {
		opponentHand = append(opponentHand, node.state[:2]...)
		board = append(board, node.state[2:]...)
	}

	if len(opponentHand) == 0 {
		opponentHand, _ = d.DealHand(2)
	}

	if need := 5 - len(board); need > 0 {
		drawn, _ := d.DealHand(need)
		board = append(board, drawn...)
	}

	playerRank := poker.Evaluate(append(append([]deck.Card{}, node.playerHand...), board...))
	opponentRank := poker.Evaluate(append(opponentHand, board...))

	switch cmp := playerRank.Compare(opponentRank); {
	case cmp > 0:
		return 1
	case cmp < 0:
		return 0
	default:
		return 0.5
	}
}

// EstimateEquity builds a tree for the hand, searches, and returns the
// estimate. This is the single call boundary most callers want.
func EstimateEquity(playerHand []deck.Card, iterations int, opts ...Option) float64 {
	return New(playerHand, opts...).Search(iterations)
}
