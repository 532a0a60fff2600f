package scanner

import (
	"strings"

	"github.com/backwind1233/taskguard/internal/model"
	"github.com/backwind1233/taskguard/internal/rules"
)

const (
	maxMatchLen  = 100
	maxSecretLen = 50
)

// Engine aplica o catálogo de regras a um corpo de texto. Sem I/O: recebe
// conteúdo já lido e devolve findings em ordem determinística (categoria →
// regra → linha → matches da esquerda para a direita).
type Engine struct {
	catalog *rules.Catalog
}

func NewEngine(catalog *rules.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

func (e *Engine) ScanText(content, source string) []model.Finding {
	var findings []model.Finding
	lines := strings.Split(content, "\n")

	// Prompt injection (critical); linha com cara de placeholder é ignorada
	for _, r := range e.catalog.Injection {
		for i, line := range lines {
			for _, m := range r.Pattern.FindAllString(line, -1) {
				if rules.ShouldSkip(line) {
					continue
				}
				findings = append(findings, model.Finding{
					Severity:    model.SevCritical,
					RuleID:      model.RulePromptInjection,
					RuleName:    "Prompt Injection: " + r.Label,
					Description: "Detected potential prompt injection attempt",
					File:        source,
					Line:        i + 1,
					Match:       truncate(m, maxMatchLen),
				})
			}
		}
	}

	// Comandos perigosos (high); nunca suprimidos
	for _, r := range e.catalog.Commands {
		for i, line := range lines {
			for _, m := range r.Pattern.FindAllString(line, -1) {
				findings = append(findings, model.Finding{
					Severity:    model.SevHigh,
					RuleID:      model.RuleDangerousCmd,
					RuleName:    "Dangerous Command: " + r.Label,
					Description: "Detected potentially dangerous command",
					File:        source,
					Line:        i + 1,
					Match:       truncate(m, maxMatchLen),
				})
			}
		}
	}

	// Segredos (high); o match vai truncado com reticências para não vazar
	// a credencial inteira no relatório
	for _, r := range e.catalog.Secrets {
		for i, line := range lines {
			for _, m := range r.Pattern.FindAllString(line, -1) {
				if rules.ShouldSkip(line) {
					continue
				}
				findings = append(findings, model.Finding{
					Severity:    model.SevHigh,
					RuleID:      model.RuleSecretDetected,
					RuleName:    "Secret: " + r.Label,
					Description: "Detected potential hardcoded credential",
					File:        source,
					Line:        i + 1,
					Match:       truncate(m, maxSecretLen) + "...",
				})
			}
		}
	}

	return findings
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
