package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeu5/tabular-agent/core"
)

func traceWithRewards(rewards ...float64) *core.Trace {
	trace := core.NewTrace()
	cumulative := 0.0
	for _, r := range rewards {
		cumulative += r
		trace.AddStep(&core.Step{State: "s", Action: "a", Reward: r, CumulativeReward: cumulative})
	}
	return trace
}

func TestRewardAnalyzer(t *testing.T) {
	analyzer := NewRewardAnalyzer()
	analyzer.Analyze(traceWithRewards(1, 2))
	analyzer.Analyze(traceWithRewards(3))

	dataset, ok := analyzer.DataSet().(*RewardDataSet)
	require.True(t, ok)
	assert.Equal(t, 3, dataset.Steps)
	assert.InDelta(t, 6.0, dataset.Total, 1e-12)
	assert.InDelta(t, 2.0, dataset.Mean, 1e-12)
	assert.InDelta(t, 1.0, dataset.StdDev, 1e-12)
}

func TestRewardAnalyzerEmpty(t *testing.T) {
	analyzer := NewRewardAnalyzer()

	dataset, ok := analyzer.DataSet().(*RewardDataSet)
	require.True(t, ok)
	assert.Equal(t, 0, dataset.Steps)
	assert.Equal(t, 0.0, dataset.Mean)
}

func TestRewardAnalyzerReset(t *testing.T) {
	analyzer := NewRewardAnalyzer()
	analyzer.Analyze(traceWithRewards(1, 2, 3))
	analyzer.Reset()

	dataset := analyzer.DataSet().(*RewardDataSet)
	assert.Equal(t, 0, dataset.Steps)
}
