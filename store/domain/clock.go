package domain

// Clock fornece o tick lógico corrente da simulação.
// É injetado nos componentes que precisam carimbar eventos; não há contador global.
type Clock interface {
	Tick() int64
}
