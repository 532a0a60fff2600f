package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

type packDoc struct {
	Rules []packRule `yaml:"rules"`
}

type packRule struct {
	Category string `yaml:"category"`
	Label    string `yaml:"label"`
	Pattern  string `yaml:"pattern"`
}

// LoadPack lê um arquivo YAML de regras adicionais e devolve um catálogo
// pronto para Merge. A severidade continua derivada da categoria; regras de
// injection/command ganham (?i) como as embutidas.
func LoadPack(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ler rule pack: %w", err)
	}

	var doc packDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decodificar rule pack: %w", err)
	}

	c := &Catalog{}
	for i, r := range doc.Rules {
		if r.Label == "" || r.Pattern == "" {
			return nil, fmt.Errorf("regra %d: label e pattern são obrigatórios", i)
		}
		switch Category(r.Category) {
		case CategoryInjection, CategoryCommand:
			re, err := regexp.Compile(`(?i)` + r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("regra %d (%s): %w", i, r.Label, err)
			}
			if Category(r.Category) == CategoryInjection {
				c.Injection = append(c.Injection, Rule{CategoryInjection, r.Label, re})
			} else {
				c.Commands = append(c.Commands, Rule{CategoryCommand, r.Label, re})
			}
		case CategorySecret:
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("regra %d (%s): %w", i, r.Label, err)
			}
			c.Secrets = append(c.Secrets, Rule{CategorySecret, r.Label, re})
		default:
			return nil, fmt.Errorf("regra %d: categoria desconhecida %q", i, r.Category)
		}
	}
	return c, nil
}
