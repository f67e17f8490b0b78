package core

import "github.com/zeu5/tabular-agent/util"

// State is a caller supplied context value. The agent only ever sees the
// Hash, two states with the same Hash are the same state.
type State interface {
	// Should be deterministic
	Hash() string
}

// Action is a named choice the agent can make.
type Action string

// StringState is the trivial State, the string is its own key.
type StringState string

var _ State = StringState("")

func (s StringState) Hash() string {
	return string(s)
}

// JSONState wraps any JSON-marshalable value. The key is the sha256 of the
// marshaled form, which is stable under map iteration order.
type JSONState struct {
	Value interface{}
}

var _ State = JSONState{}

func (s JSONState) Hash() string {
	return util.JsonHash(s.Value)
}
