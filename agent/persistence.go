package agent

import (
	"errors"
	"time"

	"github.com/zeu5/tabular-agent/core"
	"github.com/zeu5/tabular-agent/observability"
	"github.com/zeu5/tabular-agent/store"
)

// Load overwrites behaviors, value table and cumulative reward from the
// persisted record if one exists for the same identity. Policy rates are
// never overwritten. A missing record, an identity mismatch or any I/O or
// decode failure keeps the constructor defaults, Load never fails.
func (a *Agent) Load() {
	if a.store == nil {
		return
	}
	if err := a.load(); err != nil {
		level := observability.LevelError
		if errors.Is(err, store.ErrNotFound) {
			level = observability.LevelInfo
		} else if errors.Is(err, errIdentityMismatch) {
			level = observability.LevelWarn
		}
		a.emit(level, EventLoad, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	a.emit(observability.LevelInfo, EventLoad, map[string]interface{}{
		"states": a.table.States(),
	})
}

func (a *Agent) load() error {
	record, err := a.store.Load()
	if err != nil {
		return err
	}
	if record.AgentID != a.id {
		return errIdentityMismatch
	}

	if record.Behaviors != nil {
		behaviors := make(map[core.Action]float64, len(record.Behaviors))
		for action, w := range record.Behaviors {
			behaviors[action] = w
		}
		a.behaviors = behaviors
	}
	if record.Experience != nil {
		a.table.Restore(record.Experience)
	}
	a.totalReward = record.TotalRewards
	return nil
}

// Save writes the agent's learned state to the store, fully overwriting any
// prior record. Best-effort, a failure is logged and swallowed.
func (a *Agent) Save() {
	if a.store == nil {
		return
	}

	behaviors := make(map[core.Action]float64, len(a.behaviors))
	for action, w := range a.behaviors {
		behaviors[action] = w
	}
	record := &store.Record{
		AgentID:      a.id,
		Behaviors:    behaviors,
		Experience:   a.table.Snapshot(),
		TotalRewards: a.totalReward,
		Timestamp:    time.Now(),
	}

	if err := a.store.Save(record); err != nil {
		a.emit(observability.LevelError, EventSave, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	a.emit(observability.LevelInfo, EventSave, map[string]interface{}{
		"states": a.table.States(),
	})
}
