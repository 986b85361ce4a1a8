package search

import (
	"math"

	"github.com/rapport-chat/rapport/pkg/models"
)

// node is one candidate plan in the search tree.
type node struct {
	plan      models.ReplyPlan
	breakdown models.ScoreBreakdown
	scored    bool

	visits   int
	valueSum float64

	parent   *node
	children []*node

	// seq is the global insertion order; newer nodes win UCB ties.
	seq int
}

// tree owns the node set and the insertion counter.
type tree struct {
	root    *node
	nextSeq int
}

func newTree(rootPlan models.ReplyPlan) *tree {
	t := &tree{}
	t.root = &node{plan: rootPlan, seq: t.nextSeq}
	t.nextSeq++
	return t
}

func (t *tree) addChild(parent *node, plan models.ReplyPlan) *node {
	child := &node{plan: plan, parent: parent, seq: t.nextSeq}
	t.nextSeq++
	parent.children = append(parent.children, child)
	return child
}

// value is the mean propagated score of the node.
func (n *node) value() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.valueSum / float64(n.visits)
}

// ucb is the upper confidence bound used during selection. Unvisited nodes
// score +Inf so every child is tried once before any is revisited.
func (n *node) ucb(c float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	parentVisits := 1
	if n.parent != nil && n.parent.visits > 0 {
		parentVisits = n.parent.visits
	}
	return n.value() + c*math.Sqrt(math.Log(float64(parentVisits))/float64(n.visits))
}

// selectLeaf walks from the root picking the max-UCB child at each level
// until it reaches a node with no children. Ties go to the most recently
// inserted node, which biases exploration toward fresh candidates.
func (t *tree) selectLeaf(c float64) *node {
	n := t.root
	for len(n.children) > 0 {
		best := n.children[0]
		bestScore := best.ucb(c)
		for _, child := range n.children[1:] {
			score := child.ucb(c)
			if score > bestScore || (score == bestScore && child.seq > best.seq) {
				best, bestScore = child, score
			}
		}
		n = best
	}
	return n
}

// propagate records one evaluation on the node and every ancestor.
func propagate(n *node, value float64) {
	for ; n != nil; n = n.parent {
		n.visits++
		n.valueSum += value
	}
}

// best returns the highest-value scored node in the tree, preferring the
// most recent on ties. An unscored root is returned only when nothing else
// was ever scored.
func (t *tree) best() *node {
	best := t.root
	var walk func(*node)
	walk = func(n *node) {
		if n.scored && (!best.scored ||
			n.value() > best.value() ||
			(n.value() == best.value() && n.seq > best.seq)) {
			best = n
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return best
}
