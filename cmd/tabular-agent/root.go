package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/caarlos0/env/v11"
	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"

	"github.com/zeu5/tabular-agent/agent"
	"github.com/zeu5/tabular-agent/analysis"
	"github.com/zeu5/tabular-agent/core"
	"github.com/zeu5/tabular-agent/observability"
	"github.com/zeu5/tabular-agent/policies"
	"github.com/zeu5/tabular-agent/util"
)

// demoBehaviors mirrors the original demo driver, higher weight means a
// higher simulated reward.
func demoBehaviors() map[core.Action]float64 {
	return map[core.Action]float64{
		"stake_tokens":  0.5,
		"claim_rewards": 0.3,
		"analyze_data":  0.2,
		"idle":          0.1,
	}
}

func demoStates() []core.State {
	return []core.State{
		core.StringState("user_login"),
		core.StringState("wallet_connected"),
		core.StringState("low_balance"),
		core.StringState("high_activity"),
		core.StringState("transaction_failed"),
	}
}

func RootCommand() *cobra.Command {
	flags := DefaultFlags()
	cmd := &cobra.Command{
		Use:   "tabular-agent",
		Short: "Run a tabular RL agent demo over a state sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(flags)
		},
	}
	if err := env.Parse(flags); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing environment: %v\n", err)
	}
	AddFlags(cmd, flags)
	return cmd
}

func runDemo(flags *Flags) error {
	level := slog.LevelInfo
	if flags.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := &agent.Config{
		LearningRate:    flags.LearningRate,
		ExplorationRate: flags.ExplorationRate,
		StorePath:       flags.StorePath,
		Observer:        observability.NewSlogObserver(logger),
		Seed:            flags.Seed,
		RewardNoise:     0.1,
	}
	switch flags.Policy {
	case "greedy":
	case "softmax":
		cfg.Policy = policies.NewSoftmax(flags.Temperature)
	default:
		return fmt.Errorf("unknown policy: %s", flags.Policy)
	}

	ag := agent.New(flags.AgentID, demoBehaviors(), cfg)

	var states []core.State
	if flags.Iterations == 0 {
		states = demoStates()
	}

	analyzer := analysis.NewRewardAnalyzer()
	writer := uilive.New()
	writer.Start()
	for episode := 0; episode < flags.Episodes; episode++ {
		trace := ag.Evolve(states, flags.Iterations)
		analyzer.Analyze(trace)
		fmt.Fprintf(
			writer,
			"Episode %d/%d, Steps: %d, Total reward: %.2f\n",
			episode+1, flags.Episodes, trace.Len(), ag.Summary().TotalRewards,
		)
	}
	writer.Stop()

	summary := ag.Summary()
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("Agent summary:\n%s\n", out)

	if flags.SavePath != "" {
		util.SaveJson(path.Join(flags.SavePath, "summary.json"), summary)
		util.SaveJson(path.Join(flags.SavePath, "rewards.json"), analyzer.DataSet())
	}
	return nil
}
