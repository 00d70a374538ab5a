package observability

import (
	"context"
	"log/slog"
	"sort"
)

// SlogObserver emite eventos para um slog.Logger. O tipo do evento vira a
// mensagem e as chaves de Data viram atributos (em ordem alfabética, para a
// saída ser estável).
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver cria um SlogObserver. Com logger nil usa slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	keys := make([]string, 0, len(event.Data))
	for k := range event.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(event.Data)+2)
	attrs = append(attrs, slog.Int64("tick", event.Tick), slog.String("source", event.Source))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Data[k]))
	}

	o.logger.LogAttrs(ctx, event.Level.SlogLevel(), string(event.Type), attrs...)
}
