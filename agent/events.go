package agent

import (
	"context"
	"time"

	"github.com/zeu5/tabular-agent/observability"
)

const (
	EventInit       observability.EventType = "agent.init"
	EventLoad       observability.EventType = "agent.load"
	EventSave       observability.EventType = "agent.save"
	EventState      observability.EventType = "agent.state"
	EventChoose     observability.EventType = "agent.choose"
	EventPerform    observability.EventType = "agent.perform"
	EventUpdate     observability.EventType = "agent.update"
	EventEvolveStep observability.EventType = "agent.evolve.step"
)

func (a *Agent) emit(level observability.Level, typ observability.EventType, data map[string]interface{}) {
	a.observer.OnEvent(context.Background(), observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    a.id,
		Data:      data,
	})
}
