package store

import (
	"context"
	"time"

	"thrift-store/observability"
	"thrift-store/store/application"
)

// Assistant é o ator produtor: a cada tick roda o StockingService e, depois
// de RestFrequency ticks de trabalho, faz uma pausa de RestDuration ticks.
type Assistant struct {
	actor

	stocking      application.StockingService
	tick          time.Duration
	restFrequency int
	restDuration  int
	pause         application.PauseFunc

	ticksSinceLastBreak int
}

func (a *Assistant) Name() string { return a.name }

// Run executa até o ctx encerrar. Cancelamento é parada ordenada e retorna nil.
func (a *Assistant) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if a.restFrequency > 0 && a.ticksSinceLastBreak >= a.restFrequency {
			if err := a.takeBreak(ctx); err != nil {
				return stopped(err)
			}
			a.ticksSinceLastBreak = 0
		} else {
			if _, err := a.stocking.Run(ctx, a.name); err != nil {
				return stopped(err)
			}
			a.ticksSinceLastBreak++
		}

		if err := a.pause(ctx, a.tick); err != nil {
			return stopped(err)
		}
	}
}

func (a *Assistant) takeBreak(ctx context.Context) error {
	a.emit(ctx, observability.EventBreakBegin, observability.LevelInfo, nil)
	if err := a.pause(ctx, time.Duration(a.restDuration)*a.tick); err != nil {
		return err
	}
	a.emit(ctx, observability.EventBreakFinish, observability.LevelInfo, nil)
	return nil
}
