package agent

import (
	"github.com/zeu5/tabular-agent/observability"
	"github.com/zeu5/tabular-agent/policies"
	"github.com/zeu5/tabular-agent/store"
)

type Config struct {
	// LearningRate scales every value and weight update, expected in (0,1].
	LearningRate float64
	// ExplorationRate is the probability of picking a random action, in [0,1].
	ExplorationRate float64
	// StorePath is where the agent persists its learned state. Ignored when
	// Store is set, persistence is disabled when both are empty.
	StorePath string
	// Store overrides the file store, used by tests.
	Store store.Store
	// Policy overrides the default epsilon-greedy selection.
	Policy policies.Policy
	// Observer receives diagnostics, defaults to a no-op.
	Observer observability.Observer
	// Seed fixes the agent's random source, 0 seeds from the clock.
	Seed int64
	// RewardNoise is the amplitude of the uniform noise added to simulated
	// rewards, 0 disables it.
	RewardNoise float64
}

func DefaultConfig() *Config {
	return &Config{
		LearningRate:    0.1,
		ExplorationRate: 0.2,
		StorePath:       "agent_config.json",
		RewardNoise:     0.1,
	}
}
