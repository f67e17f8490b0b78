package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Step records one decision cycle of an episode.
type Step struct {
	State            string    `json:"state"`
	Action           Action    `json:"action"`
	Reward           float64   `json:"reward"`
	CumulativeReward float64   `json:"total_rewards"`
	Timestamp        time.Time `json:"timestamp"`
}

// Trace is the ordered history of one episode.
type Trace struct {
	mtx   *sync.Mutex
	runID string
	steps []*Step
}

func NewTrace() *Trace {
	return &Trace{
		mtx:   &sync.Mutex{},
		runID: uuid.NewString(),
		steps: make([]*Step, 0),
	}
}

// RunID identifies the episode that produced this trace.
func (t *Trace) RunID() string {
	return t.runID
}

func (t *Trace) AddStep(s *Step) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.steps = append(t.steps, s)
}

func (t *Trace) Step(i int) *Step {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.steps[i]
}

func (t *Trace) Len() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return len(t.steps)
}

func (t *Trace) Last() *Step {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if len(t.steps) == 0 {
		return nil
	}
	return t.steps[len(t.steps)-1]
}

// Steps returns a copy of the step slice.
func (t *Trace) Steps() []*Step {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	out := make([]*Step, len(t.steps))
	copy(out, t.steps)
	return out
}
