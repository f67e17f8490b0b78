package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/zeu5/tabular-agent/core"
	"github.com/zeu5/tabular-agent/util"
)

type RewardDataSet struct {
	Steps  int     `json:"steps"`
	Total  float64 `json:"total"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// RewardAnalyzer accumulates per-step rewards across episode traces and
// summarizes them.
type RewardAnalyzer struct {
	rewards []float64
}

var _ core.Analyzer = &RewardAnalyzer{}

func NewRewardAnalyzer() *RewardAnalyzer {
	return &RewardAnalyzer{
		rewards: make([]float64, 0),
	}
}

func (r *RewardAnalyzer) Analyze(trace *core.Trace) {
	for _, step := range trace.Steps() {
		r.rewards = append(r.rewards, step.Reward)
	}
}

func (r *RewardAnalyzer) DataSet() core.DataSet {
	rewards := util.CopyFloatSlice(r.rewards)
	out := &RewardDataSet{
		Steps: len(rewards),
	}
	if len(rewards) == 0 {
		return out
	}
	for _, reward := range rewards {
		out.Total += reward
	}
	out.Mean = stat.Mean(rewards, nil)
	if len(rewards) > 1 {
		out.StdDev = stat.StdDev(rewards, nil)
	}
	return out
}

func (r *RewardAnalyzer) Reset() {
	r.rewards = make([]float64, 0)
}
