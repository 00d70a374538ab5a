package domain

import (
	"strings"
)

// Section identifica uma seção do catálogo. É um índice no Catalog, o que
// permite que a infra guarde o estado por seção em um slice de tamanho fixo.
type Section int

// DefaultSections é o catálogo padrão da loja.
var DefaultSections = []string{
	"electronics",
	"clothing",
	"furniture",
	"toys",
	"sporting goods",
	"books",
}

// Catalog é o conjunto fixo de seções conhecido na inicialização.
// É imutável depois de criado.
type Catalog struct {
	names []string
	index map[string]Section
}

// NewCatalog cria um catálogo a partir dos nomes informados.
// Nomes vazios são ignorados e duplicados são rejeitados.
func NewCatalog(names ...string) (*Catalog, error) {
	c := &Catalog{index: make(map[string]Section, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := c.index[n]; dup {
			return nil, &SectionError{Name: n, Err: ErrDuplicateSection}
		}
		c.index[n] = Section(len(c.names))
		c.names = append(c.names, n)
	}
	if len(c.names) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// MustCatalog é como NewCatalog mas entra em pânico em caso de erro.
// Útil para catálogos fixos em testes e exemplos.
func MustCatalog(names ...string) *Catalog {
	c, err := NewCatalog(names...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.names) }

// Sections retorna todas as seções em ordem de índice.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.names))
	for i := range c.names {
		out[i] = Section(i)
	}
	return out
}

func (c *Catalog) Valid(s Section) bool {
	return s >= 0 && int(s) < len(c.names)
}

// Name retorna o nome da seção, ou "" se ela não pertence ao catálogo.
func (c *Catalog) Name(s Section) string {
	if !c.Valid(s) {
		return ""
	}
	return c.names[s]
}

func (c *Catalog) Parse(name string) (Section, error) {
	s, ok := c.index[strings.TrimSpace(name)]
	if !ok {
		return -1, &SectionError{Name: name, Err: ErrUnknownSection}
	}
	return s, nil
}

// Item é uma unidade entregue, marcada com exatamente uma seção.
type Item struct {
	ID      string
	Section Section
}

// CountBySection agrupa os itens por seção.
func CountBySection(items []Item) map[Section]int {
	out := make(map[Section]int)
	for _, it := range items {
		out[it.Section]++
	}
	return out
}
