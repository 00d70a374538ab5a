package observability

import "context"

// Fanout entrega cada evento a todos os observers, na ordem.
type Fanout []Observer

func (f Fanout) OnEvent(ctx context.Context, event Event) {
	for _, obs := range f {
		obs.OnEvent(ctx, event)
	}
}

// Tee combina observers em um só. nil é ignorado; sem nenhum observer
// retorna NoOpObserver e com um só retorna ele mesmo.
func Tee(observers ...Observer) Observer {
	var f Fanout
	for _, obs := range observers {
		if obs != nil {
			f = append(f, obs)
		}
	}
	switch len(f) {
	case 0:
		return NoOpObserver{}
	case 1:
		return f[0]
	}
	return f
}
