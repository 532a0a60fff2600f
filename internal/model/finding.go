package model

type Severity string

const (
	SevCritical Severity = "critical"
	SevHigh     Severity = "high"
	SevMedium   Severity = "medium"
	SevLow      Severity = "low"
)

// IDs de regra expostos nos relatórios e no gate de CI
const (
	RulePromptInjection    = "PROMPT_INJECTION"
	RuleDangerousCmd       = "DANGEROUS_CMD"
	RuleSecretDetected     = "SECRET_DETECTED"
	RuleExternalClassifier = "EXTERNAL_CLASSIFIER"
)

type Finding struct {
	Severity    Severity `json:"severity"`    // derivada da categoria da regra
	RuleID      string   `json:"rule_id"`     // PROMPT_INJECTION | DANGEROUS_CMD | SECRET_DETECTED | EXTERNAL_CLASSIFIER
	RuleName    string   `json:"rule_name"`   // categoria + label da regra
	Description string   `json:"description"` // descrição curta
	File        string   `json:"file"`        // caminho do arquivo escaneado
	Line        int      `json:"line"`        // 1-based (1 quando desconhecido)
	Match       string   `json:"match"`       // trecho que disparou a regra, truncado
}
