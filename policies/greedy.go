package policies

import (
	"math/rand"
	"time"

	"github.com/zeu5/tabular-agent/core"
)

// Policy selects the next action for a state given the current value table.
type Policy interface {
	PickAction(table *ValueTable, state string, actions []core.Action) core.Action
}

// EpsilonGreedy explores with probability epsilon by picking uniformly at
// random, otherwise it exploits the action with the highest stored value.
type EpsilonGreedy struct {
	Epsilon float64

	rand *rand.Rand
}

var _ Policy = &EpsilonGreedy{}

func NewEpsilonGreedy(epsilon float64) *EpsilonGreedy {
	return NewEpsilonGreedySeeded(epsilon, time.Now().UnixNano())
}

// NewEpsilonGreedySeeded fixes the random source, used to make runs
// reproducible.
func NewEpsilonGreedySeeded(epsilon float64, seed int64) *EpsilonGreedy {
	return &EpsilonGreedy{
		Epsilon: epsilon,
		rand:    rand.New(rand.NewSource(seed)),
	}
}

func (e *EpsilonGreedy) PickAction(table *ValueTable, state string, actions []core.Action) core.Action {
	if len(actions) == 0 {
		return ""
	}
	if e.rand.Float64() < e.Epsilon {
		return actions[e.rand.Intn(len(actions))]
	}
	action, _ := table.MaxAmong(state, actions)
	return action
}
