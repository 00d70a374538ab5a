// Package application contém os casos de uso da loja: a distribuição de uma
// entrega entre as seções (StockingService) e o protocolo de espera do
// cliente por um item (ShoppingService).
//
// Ele depende apenas de domain (e do pipeline de observability) e não conhece
// locks, Redis ou goroutines.
package application
