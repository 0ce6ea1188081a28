package achieving

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-achievement-api/internal/domain"
	"github.com/vfg2006/sales-achievement-api/internal/reconciliation"
	"gopkg.in/yaml.v3"
)

type directoryFile struct {
	Salespeople []struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		Brand   string `yaml:"brand"`
		Section string `yaml:"section"`
	} `yaml:"salespeople"`
}

// StaticDirectory é um cadastro de vendedores fixo, carregado de YAML
type StaticDirectory struct {
	byName map[string]*domain.Salesperson
}

// LoadDirectory lê um arquivo no formato:
//
//	salespeople:
//	  - name: Anil Kumar
//	    brand: VIDEUM
//	    section: TV
//
// Sem id, o nome canônico é usado como identificador. Marca vazia significa vendedor sem marca própria.
func LoadDirectory(r io.Reader) (*StaticDirectory, error) {
	var file directoryFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "erro ao decodificar cadastro de vendedores")
	}

	directory := &StaticDirectory{byName: make(map[string]*domain.Salesperson)}

	for i, entry := range file.Salespeople {
		name := reconciliation.CanonicalName(entry.Name)
		if name == "" {
			return nil, errors.Wrapf(ErrSalespersonNameRequired, "entrada %d", i+1)
		}

		salesperson := &domain.Salesperson{
			ID:      entry.ID,
			Name:    name,
			Section: entry.Section,
		}
		if salesperson.ID == "" {
			salesperson.ID = name
		}
		if brand := strings.TrimSpace(entry.Brand); brand != "" {
			salesperson.Brand = &brand
		}

		directory.byName[name] = salesperson
	}

	return directory, nil
}

// GetByName retorna nil quando o vendedor não está cadastrado
func (d *StaticDirectory) GetByName(name string) (*domain.Salesperson, error) {
	return d.byName[reconciliation.CanonicalName(name)], nil
}

func (d *StaticDirectory) Len() int {
	return len(d.byName)
}
