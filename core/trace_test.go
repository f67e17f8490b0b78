package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	trace := NewTrace()
	assert.NotEmpty(t, trace.RunID())
	assert.Equal(t, 0, trace.Len())
	assert.Nil(t, trace.Last())

	trace.AddStep(&Step{State: "s1", Action: "a", Reward: 0.5, Timestamp: time.Now()})
	trace.AddStep(&Step{State: "s2", Action: "b", Reward: 0.3, CumulativeReward: 0.8, Timestamp: time.Now()})

	require.Equal(t, 2, trace.Len())
	assert.Equal(t, "s1", trace.Step(0).State)
	assert.Equal(t, Action("b"), trace.Last().Action)
	assert.Equal(t, 0.8, trace.Last().CumulativeReward)
}

func TestTraceStepsIsACopy(t *testing.T) {
	trace := NewTrace()
	trace.AddStep(&Step{State: "s1"})

	steps := trace.Steps()
	require.Len(t, steps, 1)
	steps[0] = nil
	assert.NotNil(t, trace.Step(0))
}

func TestTraceRunIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewTrace().RunID(), NewTrace().RunID())
}
