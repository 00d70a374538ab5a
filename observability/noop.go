package observability

import "context"

// NoOpObserver descarta todos os eventos.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
