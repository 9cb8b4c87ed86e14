package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kagedrop/bot/pkg/eval"
)

func nodeWithScore(score float64, seq uint64) *Node {
	return &Node{Score: eval.Score(score), seq: seq}
}

func TestTopKReturnsDescendingScores(t *testing.T) {
	nodes := []*Node{
		nodeWithScore(1, 0),
		nodeWithScore(5, 1),
		nodeWithScore(3, 2),
		nodeWithScore(4, 3),
	}

	top := topK(nodes, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, eval.Score(5), top[0].Score)
	assert.Equal(t, eval.Score(4), top[1].Score)
}

func TestTopKCapsAtLenWhenKExceedsInput(t *testing.T) {
	nodes := []*Node{nodeWithScore(1, 0), nodeWithScore(2, 1)}

	top := topK(nodes, 10)
	assert.Len(t, top, 2)
}

func TestBestReturnsHighestScore(t *testing.T) {
	nodes := []*Node{nodeWithScore(1, 0), nodeWithScore(9, 1), nodeWithScore(4, 2)}
	assert.Equal(t, eval.Score(9), best(nodes).Score)
}

func TestBestReturnsNilOnEmpty(t *testing.T) {
	assert.Nil(t, best(nil))
}
