// Package store monta a simulação de uma loja de usados com estoque
// compartilhado entre assistentes (que estocam) e clientes (que compram).
//
// Visão geral (camadas):
//
//   - domain: seções, itens e contratos (sem locks, sem Redis)
//   - application: casos de uso (distribuição da entrega por viagens, espera do cliente)
//   - infra: implementações concretas (estoque com lock+cond por seção, estatísticas em memória/Redis)
//   - store (este pacote): atores (Assistant, Customer, DeliveryFeeder) + wiring da Simulation
//
// Fluxo:
//
//  1. DeliveryFeeder coloca itens na caixa de entregas
//  2. Assistant esvazia a caixa e estoca as seções em viagens limitadas pela capacidade de carga
//  3. Customer registra interesse numa seção e espera até conseguir levar um item
//  4. A Simulation para todos os atores quando o ctx é cancelado
//
// Variáveis de ambiente do binário (cmd/thriftstore) controlam os parâmetros,
// como TICK_DURATION, ASSISTANTS, CUSTOMERS e SECTION_MAX_CAPACITY.
package store
