// Package observability routes agent diagnostics to an injectable observer
// instead of a process wide logger. The agent never fails on an observer,
// every event is fire and forget.
package observability

import (
	"context"
	"log/slog"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EventType identifies the kind of event, e.g. "agent.save" or
// "agent.choose".
type EventType string

// Event is one diagnostic emitted by the agent.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]interface{}
}

// Observer receives agent events for logging or metrics.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
