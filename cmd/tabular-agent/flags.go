package main

import (
	"github.com/spf13/cobra"
)

type Flags struct {
	AgentID         string  `env:"AGENT_ID"`
	StorePath       string  `env:"AGENT_STORE"`
	SavePath        string  `env:"AGENT_SAVE_PATH"`
	LearningRate    float64 `env:"AGENT_LEARNING_RATE"`
	ExplorationRate float64 `env:"AGENT_EXPLORATION_RATE"`
	Episodes        int     `env:"AGENT_EPISODES"`
	Iterations      int     `env:"AGENT_ITERATIONS"`
	Policy          string  `env:"AGENT_POLICY"`
	Temperature     float64 `env:"AGENT_TEMPERATURE"`
	Seed            int64   `env:"AGENT_SEED"`
	Debug           bool    `env:"AGENT_DEBUG"`
}

func DefaultFlags() *Flags {
	return &Flags{
		AgentID:         "demo_agent_001",
		StorePath:       "demo_agent_001.json",
		SavePath:        "results",
		LearningRate:    0.1,
		ExplorationRate: 0.2,
		Episodes:        1,
		Iterations:      0,
		Policy:          "greedy",
		Temperature:     1,
		Seed:            0,
		Debug:           false,
	}
}

// AddFlags registers the command line flags with env-resolved defaults, so
// a flag overrides its environment variable.
func AddFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.AgentID, "agent-id", flags.AgentID, "Agent identity")
	cmd.PersistentFlags().StringVar(&flags.StorePath, "store", flags.StorePath, "Path of the persisted agent state")
	cmd.PersistentFlags().StringVar(&flags.SavePath, "save-path", flags.SavePath, "Path to save run results")
	cmd.PersistentFlags().Float64Var(&flags.LearningRate, "learning-rate", flags.LearningRate, "Learning rate")
	cmd.PersistentFlags().Float64Var(&flags.ExplorationRate, "exploration-rate", flags.ExplorationRate, "Exploration rate")
	cmd.PersistentFlags().IntVar(&flags.Episodes, "episodes", flags.Episodes, "Number of episodes")
	cmd.PersistentFlags().IntVar(&flags.Iterations, "iterations", flags.Iterations, "Number of synthesized states per episode, 0 uses the demo sequence")
	cmd.PersistentFlags().StringVar(&flags.Policy, "policy", flags.Policy, "Action selection policy (greedy|softmax)")
	cmd.PersistentFlags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Softmax temperature")
	cmd.PersistentFlags().Int64Var(&flags.Seed, "seed", flags.Seed, "Random seed, 0 seeds from the clock")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", flags.Debug, "Enable debug logging")
}
