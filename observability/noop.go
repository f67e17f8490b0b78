package observability

import "context"

// NoOpObserver discards all events.
type NoOpObserver struct{}

var _ Observer = NoOpObserver{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
