package application

import (
	"context"
	"errors"
	"time"

	"thrift-store/store/domain"
)

// ShoppingService concentra o protocolo de espera do cliente por um item:
// registra interesse, espera a seção ter estoque, retira uma unidade e
// remove o interesse.
type ShoppingService struct {
	Shelves domain.Shelves
	// Patience limita a espera.
	// - Se `Patience <= 0`, espera indefinidamente (até ctx cancelar).
	// - Se `Patience > 0`, desiste depois desse tempo com domain.ErrPatienceExceeded.
	Patience time.Duration
}

// Buy retorna quanto tempo o cliente esperou. O interesse registrado é
// removido em qualquer saída, inclusive cancelamento.
//
// Não há ordem entre clientes esperando na mesma seção: quem reobtiver o
// lock primeiro depois do Broadcast leva o item.
func (s ShoppingService) Buy(ctx context.Context, section domain.Section) (time.Duration, error) {
	if s.Shelves == nil {
		return 0, nil
	}

	s.Shelves.IncreaseInterest(section)
	defer s.Shelves.DecreaseInterest(section)

	waitCtx := ctx
	if s.Patience > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.Patience)
		defer cancel()
	}

	start := time.Now()
	err := s.Shelves.Take(waitCtx, section)
	waited := time.Since(start)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return waited, domain.ErrPatienceExceeded
		}
		return waited, err
	}
	return waited, nil
}
