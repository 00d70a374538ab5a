// Package domain define os tipos e contratos do domínio da loja (seções, itens,
// estoque, entregas e estatísticas).
//
// Este pacote não depende de implementações concretas nem de detalhes de
// infraestrutura (locks, Redis, relógio). A intenção é permitir testes de
// unidade puros das regras de estocagem e compra.
package domain
