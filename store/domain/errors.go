package domain

import "errors"

var (
	// ErrUnknownSection é retornado quando um nome ou índice não pertence ao catálogo.
	ErrUnknownSection = errors.New("store: unknown section")

	ErrDuplicateSection = errors.New("store: duplicate section")

	ErrEmptyCatalog = errors.New("store: catalog has no sections")

	// ErrSectionEmpty é retornado por TakeItem quando a seção não tem estoque.
	// Quem usa Take (espera + retirada atômica) nunca vê esse erro.
	ErrSectionEmpty = errors.New("store: section is empty")

	// ErrInvalidQuantity é retornado para quantidades negativas.
	ErrInvalidQuantity = errors.New("store: invalid quantity")

	// ErrPatienceExceeded é retornado quando o cliente desiste de esperar.
	ErrPatienceExceeded = errors.New("store: customer patience exceeded")
)

// SectionError associa um erro ao nome da seção envolvida.
type SectionError struct {
	Name string
	Err  error
}

func (e *SectionError) Error() string { return e.Err.Error() + ": " + e.Name }

func (e *SectionError) Unwrap() error { return e.Err }
