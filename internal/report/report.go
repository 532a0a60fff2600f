package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/backwind1233/taskguard/internal/model"
)

// Summary é a visão derivada dos findings acumulados: buckets por severidade
// preservando a ordem de inserção.
type Summary struct {
	Critical []model.Finding
	High     []model.Finding
	Medium   []model.Finding
	Low      []model.Finding
	Total    int
}

func Summarize(findings []model.Finding) Summary {
	var s Summary
	for _, f := range findings {
		switch f.Severity {
		case model.SevCritical:
			s.Critical = append(s.Critical, f)
		case model.SevHigh:
			s.High = append(s.High, f)
		case model.SevMedium:
			s.Medium = append(s.Medium, f)
		default:
			s.Low = append(s.Low, f)
		}
	}
	s.Total = len(findings)
	return s
}

// Passed indica o contrato de gate: falha com qualquer critical ou high.
func (s Summary) Passed() bool {
	return len(s.Critical) == 0 && len(s.High) == 0
}

// RenderMarkdown gera o relatório humano: tabela de contagem, veredito,
// nota do classificador e seções de detalhe por severidade.
func RenderMarkdown(s Summary, classifierAvailable bool) string {
	var b strings.Builder

	b.WriteString("# 🛡️ Task Security Scan Report\n\n")
	b.WriteString("## Summary\n\n")
	b.WriteString("| Severity | Count |\n")
	b.WriteString("|----------|-------|\n")
	fmt.Fprintf(&b, "| 🔴 Critical | %d |\n", len(s.Critical))
	fmt.Fprintf(&b, "| 🟠 High | %d |\n", len(s.High))
	fmt.Fprintf(&b, "| 🟡 Medium | %d |\n", len(s.Medium))
	fmt.Fprintf(&b, "| 🟢 Low | %d |\n", len(s.Low))
	fmt.Fprintf(&b, "| **Total** | **%d** |\n\n", s.Total)

	switch {
	case !s.Passed():
		b.WriteString("> ❌ **FAILED**: Critical or high severity issues found\n\n")
	case len(s.Medium) > 0:
		b.WriteString("> ⚠️ **WARNING**: Medium severity issues found\n\n")
	default:
		b.WriteString("> ✅ **PASSED**: No significant security issues found\n\n")
	}

	if classifierAvailable {
		b.WriteString("> 🛡️ External classifier: **Active**\n")
	} else {
		b.WriteString("> 🛡️ External classifier: *Not installed (pattern-based rules only)*\n")
	}

	sections := []struct {
		label    string
		findings []model.Finding
	}{
		{"🔴 Critical", s.Critical},
		{"🟠 High", s.High},
		{"🟡 Medium", s.Medium},
		{"🟢 Low", s.Low},
	}
	for _, sec := range sections {
		if len(sec.findings) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s Issues\n\n", sec.label)
		for _, f := range sec.findings {
			fmt.Fprintf(&b, "### %s: %s\n", f.RuleID, f.RuleName)
			fmt.Fprintf(&b, "- **File:** %s:%d\n", f.File, f.Line)
			fmt.Fprintf(&b, "- **Description:** %s\n", f.Description)
			fmt.Fprintf(&b, "- **Match:** `%s`\n\n", f.Match)
		}
	}

	return b.String()
}

type jsonReport struct {
	Passed              bool            `json:"passed"`
	ClassifierAvailable bool            `json:"classifier_available"`
	Summary             jsonSummary     `json:"summary"`
	Findings            []model.Finding `json:"findings"`
}

type jsonSummary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}

// RenderJSON gera o relatório máquina. A lista de findings sai na ordem de
// inserção da sessão, não bucketizada.
func RenderJSON(s Summary, findings []model.Finding, classifierAvailable bool) (string, error) {
	doc := jsonReport{
		Passed:              s.Passed(),
		ClassifierAvailable: classifierAvailable,
		Summary: jsonSummary{
			Critical: len(s.Critical),
			High:     len(s.High),
			Medium:   len(s.Medium),
			Low:      len(s.Low),
			Total:    s.Total,
		},
		Findings: findings,
	}
	if doc.Findings == nil {
		doc.Findings = []model.Finding{}
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("gerar relatório JSON: %w", err)
	}
	return string(b), nil
}
