package store

import (
	"errors"
	"time"

	"thrift-store/store/domain"
)

// Config reúne os parâmetros da simulação. Durações de ações são expressas
// em ticks; Tick define quanto vale um tick em tempo real.
type Config struct {
	Sections []string
	Tick     time.Duration

	Assistants int
	Customers  int

	// CarryCapacity é o máximo de itens por viagem de um assistente.
	CarryCapacity int
	// SectionMaxCapacity é o teto de estoque de cada seção.
	SectionMaxCapacity int

	StockingBaseTicks  int
	RestFrequencyTicks int
	RestDurationTicks  int

	// DeliveryEveryTicks é o intervalo entre entregas; DeliverySize é o
	// número de itens de cada uma.
	DeliveryEveryTicks int
	DeliverySize       int

	CustomerThinkTicks int
	// CustomerPatience <= 0 significa esperar indefinidamente.
	CustomerPatience time.Duration
}

// DefaultConfig retorna os valores usados pelo binário quando nenhuma
// variável de ambiente é informada.
func DefaultConfig() Config {
	return Config{
		Sections:           append([]string(nil), domain.DefaultSections...),
		Tick:               100 * time.Millisecond,
		Assistants:         5,
		Customers:          5,
		CarryCapacity:      10,
		SectionMaxCapacity: 10,
		StockingBaseTicks:  10,
		RestFrequencyTicks: 200,
		RestDurationTicks:  150,
		DeliveryEveryTicks: 100,
		DeliverySize:       10,
		CustomerThinkTicks: 20,
	}
}

// Validate rejeita configurações que quebrariam os invariantes do estoque.
func (c Config) Validate() error {
	switch {
	case c.Tick <= 0:
		return errors.New("tick must be > 0")
	case c.Assistants < 0:
		return errors.New("assistants must be >= 0")
	case c.Customers < 0:
		return errors.New("customers must be >= 0")
	case c.CarryCapacity <= 0:
		return errors.New("carry capacity must be > 0")
	case c.SectionMaxCapacity <= 0:
		return errors.New("section max capacity must be > 0")
	case c.StockingBaseTicks < 0:
		return errors.New("stocking base ticks must be >= 0")
	case c.RestFrequencyTicks < 0 || c.RestDurationTicks < 0:
		return errors.New("rest ticks must be >= 0")
	case c.DeliveryEveryTicks <= 0:
		return errors.New("delivery interval must be > 0")
	case c.DeliverySize <= 0:
		return errors.New("delivery size must be > 0")
	case c.CustomerThinkTicks < 0:
		return errors.New("customer think ticks must be >= 0")
	}
	return nil
}
