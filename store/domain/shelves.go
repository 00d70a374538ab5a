package domain

import "context"

// DeliveryArea é a caixa de entregas compartilhada.
//
// A semântica é de multiconjunto: Drain remove e retorna tudo que estava
// pendente, sem garantia de ordem em relação a Receive.
type DeliveryArea interface {
	ReceiveDelivery(items []Item)
	DrainDeliveries() []Item
}

// Shelves representa o estoque por seção, visto por quem estoca e por quem compra.
//
// Toda operação é atômica em relação à sua seção. Nenhuma implementação pode
// segurar o lock de duas seções ao mesmo tempo.
type Shelves interface {
	// StockUpTo coloca até n itens na seção sem passar da capacidade máxima e
	// retorna quantos foram colocados. Acorda todos os que esperam na seção
	// quando coloca ao menos um.
	StockUpTo(s Section, n int) int

	// Take bloqueia até a seção ter estoque e retira uma unidade, na mesma
	// seção crítica. Retorna ctx.Err() se o ctx encerrar antes.
	Take(ctx context.Context, s Section) error

	IncreaseInterest(s Section)
	DecreaseInterest(s Section)

	// PrioritizedSections retorna todas as seções em ordem decrescente de
	// interesse; empates ficam em ordem de índice.
	PrioritizedSections() []Section
}

// Store junta a área de entregas e as prateleiras.
type Store interface {
	DeliveryArea
	Shelves
}
