package mcts

import (
	"math"

	"holdem-equity/pkg/deck"
)

// Stage identifies the round of dealing a node has just completed
type Stage int

// stages in deal order
const (
	StageRoot Stage = iota
	StageOpponent
	StageFlop
	StageTurn
	StageRiver
	StageDone
)

// String returns the string representation of a stage
func (s Stage) String() string {
	switch s {
	case StageRoot:
		return "root"
	case StageOpponent:
		return "opponent"
	case StageFlop:
		return "flop"
	case StageTurn:
		return "turn"
	case StageRiver:
		return "river"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Next returns the stage that follows s
func (s Stage) Next() Stage {
	if s >= StageRiver {
		return StageDone
	}

	return s + 1
}

// edge pairs a sampled chance outcome (1-3 cards) with the child node it
// leads to. Children live in an insertion-ordered slice rather than a map so
// a best-child tie always resolves to the earliest-expanded child.
type edge struct {
	action []deck.Card
	node   *Node
}

// Node is one partial chance outcome in the search tree: the opponent's hole
// cards followed by however much of the board this path has fixed.
type Node struct {
	state      []deck.Card
	stage      Stage
	parent     *Node
	children   []edge
	wins       float64
	visits     int
	untried    [][]deck.Card
	playerHand []deck.Card
}

// Wins returns the accumulated rollout results for this node
func (n *Node) Wins() float64 {
	return n.wins
}

// Visits returns the number of backpropagation passes through this node
func (n *Node) Visits() int {
	return n.visits
}

// ucb1 scores this node for selection. total is the sum of visit counts over
// all sibling children.
func (n *Node) ucb1(total int, c float64) float64 {
	return n.wins/float64(n.visits) + c*math.Sqrt(math.Log(float64(total))/float64(n.visits))
}

// fullyExpanded reports whether every sampled action has been tried
func (n *Node) fullyExpanded() bool {
	return len(n.untried) == 0
}

// bestChild selects the child with the highest UCB1 score. Only a strictly
// greater score replaces the running best, so ties keep the first-inserted
// child.
func (n *Node) bestChild(c float64) *Node {
	total := 0
	for _, e := range n.children {
		total += e.node.visits
	}

	bestScore := -1.0
	var best *Node
	for _, e := range n.children {
		if score := e.node.ucb1(total, c); score > bestScore {
			bestScore = score
			best = e.node
		}
	}

	return best
}

// expand pops the most recently sampled untried action and creates the child
// it leads to. Returns nil if there is nothing left to try.
func (n *Node) expand() *Node {
	if len(n.untried) == 0 {
		return nil
	}

	action := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	state := make([]deck.Card, 0, len(n.state)+len(action))
	state = append(state, n.state...)
	state = append(state, action...)

	child := &Node{
		state:      state,
		stage:      n.stage.Next(),
		parent:     n,
		playerHand: n.playerHand,
	}

	n.children = append(n.children, edge{action: action, node: child})
	return child
}

// backpropagate adds the rollout result to this node and to every ancestor up
// to the root. The walk is iterative; parent references are non-owning.
func (n *Node) backpropagate(result float64) {
	for node := n; node != nil; node = node.parent {
		node.visits++
		node.wins += result
	}
}
