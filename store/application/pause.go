package application

import (
	"context"
	"time"
)

// PauseFunc simula o custo de tempo de uma ação. Deve retornar ctx.Err() se o
// ctx encerrar antes de d passar.
type PauseFunc func(ctx context.Context, d time.Duration) error

// Sleep é a PauseFunc padrão: espera d ou até o ctx encerrar.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
