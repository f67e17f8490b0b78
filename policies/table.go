package policies

import (
	"math"

	"github.com/zeu5/tabular-agent/core"
)

// ValueTable holds the learned per-state per-action value estimates. It is
// the agent's entire model. Rows are created lazily and never removed.
//
// The table is not safe for concurrent use, callers are expected to
// serialize access.
type ValueTable struct {
	rows map[string]map[core.Action]float64
}

func NewValueTable() *ValueTable {
	return &ValueTable{
		rows: make(map[string]map[core.Action]float64),
	}
}

// EnsureRow creates the row for state with every action at 0 if it does not
// exist already. Idempotent.
func (v *ValueTable) EnsureRow(state string, actions []core.Action) {
	if _, ok := v.rows[state]; ok {
		return
	}
	row := make(map[core.Action]float64, len(actions))
	for _, a := range actions {
		row[a] = 0
	}
	v.rows[state] = row
}

// Row returns a copy of the row for state. If the state has never been seen
// a fresh row with every action at 0 is returned, the stored table is not
// modified.
func (v *ValueTable) Row(state string, actions []core.Action) map[core.Action]float64 {
	out := make(map[core.Action]float64, len(actions))
	if row, ok := v.rows[state]; ok {
		for a, val := range row {
			out[a] = val
		}
		return out
	}
	for _, a := range actions {
		out[a] = 0
	}
	return out
}

// Get returns the stored value for the pair, or 0 if absent. Reading never
// mutates the table.
func (v *ValueTable) Get(state string, action core.Action) float64 {
	if row, ok := v.rows[state]; ok {
		return row[action]
	}
	return 0
}

// Set overwrites the value for the pair. The row is expected to exist
// already, a missing row is created to hold the single entry.
func (v *ValueTable) Set(state string, action core.Action, val float64) {
	if _, ok := v.rows[state]; !ok {
		v.rows[state] = make(map[core.Action]float64)
	}
	v.rows[state][action] = val
}

// MaxAmong returns an action achieving the maximum stored value for state
// among the given actions, missing entries count as 0. The order among ties
// is unspecified.
func (v *ValueTable) MaxAmong(state string, actions []core.Action) (core.Action, float64) {
	if len(actions) == 0 {
		return "", 0
	}
	row := v.rows[state]
	maxAction := actions[0]
	maxVal := math.Inf(-1)
	for _, a := range actions {
		val := row[a]
		if val > maxVal {
			maxAction = a
			maxVal = val
		}
	}
	return maxAction, maxVal
}

func (v *ValueTable) HasState(state string) bool {
	_, ok := v.rows[state]
	return ok
}

// States is the number of distinct states seen so far.
func (v *ValueTable) States() int {
	return len(v.rows)
}

// Snapshot returns a deep copy of the table contents, keyed the way the
// table is persisted.
func (v *ValueTable) Snapshot() map[string]map[core.Action]float64 {
	out := make(map[string]map[core.Action]float64, len(v.rows))
	for state, row := range v.rows {
		rowCopy := make(map[core.Action]float64, len(row))
		for a, val := range row {
			rowCopy[a] = val
		}
		out[state] = rowCopy
	}
	return out
}

// Restore replaces the table contents with the given rows, deep copying.
func (v *ValueTable) Restore(rows map[string]map[core.Action]float64) {
	v.rows = make(map[string]map[core.Action]float64, len(rows))
	for state, row := range rows {
		rowCopy := make(map[core.Action]float64, len(row))
		for a, val := range row {
			rowCopy[a] = val
		}
		v.rows[state] = rowCopy
	}
}
