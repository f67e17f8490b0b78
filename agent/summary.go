package agent

import "github.com/zeu5/tabular-agent/core"

// Summary is a point-in-time view of the agent's status.
type Summary struct {
	AgentID          string                  `json:"agent_id"`
	Behaviors        map[core.Action]float64 `json:"behaviors"`
	TotalRewards     float64                 `json:"total_rewards"`
	ExplorationRate  float64                 `json:"exploration_rate"`
	LearningRate     float64                 `json:"learning_rate"`
	ExperienceStates int                     `json:"experience_states"`
}

// Summary reports the agent's identity, behavior weights, cumulative reward,
// policy rates and the number of distinct states seen. Pure read.
func (a *Agent) Summary() Summary {
	behaviors := make(map[core.Action]float64, len(a.behaviors))
	for action, w := range a.behaviors {
		behaviors[action] = w
	}
	return Summary{
		AgentID:          a.id,
		Behaviors:        behaviors,
		TotalRewards:     a.totalReward,
		ExplorationRate:  a.explorationRate,
		LearningRate:     a.learningRate,
		ExperienceStates: a.table.States(),
	}
}
