// Package agent implements a tabular reinforcement learning agent. It keeps
// a value estimate per (state, action) pair, selects actions epsilon-greedy,
// updates estimates from observed rewards and persists its learned state.
//
// No public operation returns an error, internal failures are downgraded to
// observer events and a safe fallback so a long running loop never crashes.
// The agent is single caller, concurrent use requires external
// serialization.
package agent

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/zeu5/tabular-agent/core"
	"github.com/zeu5/tabular-agent/observability"
	"github.com/zeu5/tabular-agent/policies"
	"github.com/zeu5/tabular-agent/store"
)

// internal error kinds, caught at the public method boundary
var (
	errNoState          = errors.New("no current state set")
	errIdentityMismatch = errors.New("persisted identity does not match")
)

const defaultIterations = 10

type Agent struct {
	id        string
	behaviors map[core.Action]float64
	// the valid action set, fixed at construction
	actions []core.Action
	table   *policies.ValueTable

	learningRate    float64
	explorationRate float64
	totalReward     float64

	currentState string
	hasState     bool

	noise    float64
	rand     *rand.Rand
	policy   policies.Policy
	store    store.Store
	observer observability.Observer
}

// New constructs an agent with the given identity and initial behavior
// weights. The keys of behaviors are the action set for the agent's
// lifetime. If a record for the same identity exists at the configured
// store it overwrites behaviors, value table and cumulative reward.
// Construction always succeeds.
func New(id string, behaviors map[core.Action]float64, cfg *Config) *Agent {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	actions := make([]core.Action, 0, len(behaviors))
	behaviorsCopy := make(map[core.Action]float64, len(behaviors))
	for a, w := range behaviors {
		actions = append(actions, a)
		behaviorsCopy[a] = w
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	st := cfg.Store
	if st == nil && cfg.StorePath != "" {
		st = store.NewFileStore(cfg.StorePath)
	}

	policy := cfg.Policy
	if policy == nil {
		policy = policies.NewEpsilonGreedySeeded(cfg.ExplorationRate, seed)
	}

	observer := cfg.Observer
	if observer == nil {
		observer = observability.NoOpObserver{}
	}

	a := &Agent{
		id:              id,
		behaviors:       behaviorsCopy,
		actions:         actions,
		table:           policies.NewValueTable(),
		learningRate:    cfg.LearningRate,
		explorationRate: cfg.ExplorationRate,
		noise:           cfg.RewardNoise,
		rand:            rand.New(rand.NewSource(seed)),
		policy:          policy,
		store:           st,
		observer:        observer,
	}
	a.emit(observability.LevelInfo, EventInit, map[string]interface{}{
		"behaviors": len(actions),
	})
	a.Load()
	return a
}

// ID returns the agent's immutable identity.
func (a *Agent) ID() string {
	return a.id
}

// SetState records the observed state as current and ensures a value table
// row exists for it.
func (a *Agent) SetState(state core.State) {
	a.currentState = state.Hash()
	a.hasState = true
	a.table.EnsureRow(a.currentState, a.actions)
	a.emit(observability.LevelDebug, EventState, map[string]interface{}{
		"state": a.currentState,
	})
}

// ChooseAction picks the next action epsilon-greedy for the current state.
// With no current state set it falls back to a uniformly random action.
func (a *Agent) ChooseAction() core.Action {
	action, err := a.chooseAction()
	if err != nil {
		a.emit(observability.LevelWarn, EventChoose, map[string]interface{}{
			"error": err.Error(),
		})
		return a.randomAction()
	}
	a.emit(observability.LevelDebug, EventChoose, map[string]interface{}{
		"action": action,
	})
	return action
}

func (a *Agent) chooseAction() (core.Action, error) {
	if !a.hasState {
		return "", errNoState
	}
	return a.policy.PickAction(a.table, a.currentState, a.actions), nil
}

func (a *Agent) randomAction() core.Action {
	if len(a.actions) == 0 {
		return ""
	}
	return a.actions[a.rand.Intn(len(a.actions))]
}

// PerformAction simulates executing the action and returns the reward, the
// behavior weight plus uniform noise. An unknown action has weight 0. In
// production use the caller executes the action for real and feeds the
// observed reward to UpdateLearning instead.
func (a *Agent) PerformAction(action core.Action) float64 {
	reward := a.behaviors[action]
	if a.noise > 0 {
		reward += a.rand.Float64()*2*a.noise - a.noise
	}
	a.emit(observability.LevelInfo, EventPerform, map[string]interface{}{
		"action": action,
		"reward": reward,
	})
	return reward
}

// UpdateLearning folds the observed reward into the current state's value
// estimate for the action and into the action's behavior weight. A no-op
// when no current state is set.
func (a *Agent) UpdateLearning(action core.Action, reward float64) {
	if err := a.updateLearning(action, reward); err != nil {
		a.emit(observability.LevelWarn, EventUpdate, map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (a *Agent) updateLearning(action core.Action, reward float64) error {
	if !a.hasState {
		return errNoState
	}

	old := a.table.Get(a.currentState, action)
	newValue := old + a.learningRate*(reward-old)
	a.table.Set(a.currentState, action, newValue)

	// The behavior weight accumulates additively and is never normalized,
	// weights can grow without bound over many updates.
	a.behaviors[action] = a.behaviors[action] + a.learningRate*reward
	a.totalReward += reward

	a.emit(observability.LevelDebug, EventUpdate, map[string]interface{}{
		"action": action,
		"value":  newValue,
	})
	return nil
}

// Evolve runs the decision cycle over the given state sequence, or over
// iterations synthesized placeholder states when the sequence is empty, and
// returns the episode trace. The learned state is saved best-effort at the
// end.
func (a *Agent) Evolve(states []core.State, iterations int) *core.Trace {
	if len(states) == 0 {
		if iterations <= 0 {
			iterations = defaultIterations
		}
		states = make([]core.State, iterations)
		for i := range states {
			states[i] = core.StringState(fmt.Sprintf("state_%d", i))
		}
	}

	trace := core.NewTrace()
	for _, state := range states {
		a.SetState(state)
		action := a.ChooseAction()
		reward := a.PerformAction(action)
		a.UpdateLearning(action, reward)

		trace.AddStep(&core.Step{
			State:            state.Hash(),
			Action:           action,
			Reward:           reward,
			CumulativeReward: a.totalReward,
			Timestamp:        time.Now(),
		})
		a.emit(observability.LevelInfo, EventEvolveStep, map[string]interface{}{
			"run":    trace.RunID(),
			"state":  state.Hash(),
			"action": action,
			"reward": reward,
		})
	}
	a.Save()
	return trace
}
