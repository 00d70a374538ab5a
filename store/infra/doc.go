// Package infra contém implementações concretas dos contratos de domain.
//
// Inclui:
//   - Inventory: estoque em memória com um mutex e uma sync.Cond por seção,
//     interesse atômico e a caixa de entregas com lock próprio
//   - MemoryStatsStore: estatísticas em memória (testes e exemplo)
//   - RedisStatsStore: estatísticas em Redis (go-redis)
package infra
