package rules

import (
	"regexp"
)

type Category string

const (
	CategoryInjection Category = "injection"
	CategoryCommand   Category = "command"
	CategorySecret    Category = "secret"
)

type Rule struct {
	Category Category
	Label    string
	Pattern  *regexp.Regexp
}

// ruleDef é a forma compacta usada nas tabelas abaixo; cada entrada vira
// uma Rule compilada em Default().
type ruleDef struct {
	pattern string
	label   string
}

// Padrões de prompt injection (severidade critical)
var injectionDefs = []ruleDef{
	{`ignore\s+(all\s+)?(previous|above|prior)\s+(instructions?|prompts?|rules?)`, "Instruction override"},
	{`disregard\s+(all\s+)?(previous|above|prior)`, "Instruction disregard"},
	{`forget\s+(all\s+)?(previous|above|prior|everything)`, "Memory wipe attempt"},
	{`you\s+are\s+now\s+(a|an|the)`, "Role reassignment"},
	{`pretend\s+(you\s+are|to\s+be)`, "Role pretending"},
	{`act\s+as\s+(if|a|an|the)`, "Role acting"},
	{`from\s+now\s+on,?\s+you`, "Temporal role change"},
	{`new\s+instructions?:`, "New instruction injection"},
	{`system\s*:\s*`, "System prompt injection"},
	{`<\|?system\|?>`, "System tag injection"},
	{`\[INST\]|\[/INST\]`, "Instruction tag injection"},
	{`###\s*(Human|Assistant|System):`, "Role marker injection"},
	{`do\s+not\s+follow\s+(the\s+)?(above|previous)`, "Negative instruction"},
	{`override\s+(all\s+)?(safety|restrictions?|rules?)`, "Safety override"},
	{`jailbreak|\bDAN\b|do\s+anything\s+now`, "Jailbreak attempt"},
	{`developer\s+mode|god\s+mode|admin\s+mode`, "Privilege escalation"},
}

// Padrões de comando perigoso (severidade high)
var commandDefs = []ruleDef{
	{`rm\s+-rf\s+/`, "Recursive delete root"},
	{`mkfs\s+`, "Filesystem format"},
	{`dd\s+if=.+of=/dev/`, "Direct disk write"},
	{`chmod\s+777\s+/`, "Dangerous permission change"},
	{`curl.+\|\s*(sh|bash)`, "Remote code execution"},
	{`wget.+\|\s*(sh|bash)`, "Remote code execution"},
	{`eval\s*\(`, "Dynamic code execution"},
	{`exec\s*\(`, "Process execution"},
}

// Padrões de segredo (severidade high). A character class do valor exclui
// caracteres típicos de placeholder ($, chaves, colchetes, <); segredos
// legítimos contendo esses caracteres são falsos negativos conhecidos.
var secretDefs = []ruleDef{
	{`(?i)(password|passwd|pwd)\s*[=:]\s*["'][^"'$\{\}\[\]<]+["']`, "Hardcoded password"},
	{`(?i)(api[_-]?key|apikey)\s*[=:]\s*["'][^"'$\{\}\[\]<]+["']`, "Hardcoded API key"},
	{`(?i)(secret|token)\s*[=:]\s*["'][^"'$\{\}\[\]<]+["']`, "Hardcoded secret"},
	{`(?i)bearer\s+[a-zA-Z0-9_\-.]{20,}`, "Bearer token"},
	{`-----BEGIN\s+(RSA\s+)?PRIVATE\s+KEY-----`, "Private key"},
	{`ghp_[a-zA-Z0-9]{36}`, "GitHub PAT"},
	{`sk-[a-zA-Z0-9]{48}`, "OpenAI API key"},
}

// Catalog agrupa as regras ativas por categoria. A ordem das listas define a
// ordem dos findings por arquivo.
type Catalog struct {
	Injection []Rule
	Commands  []Rule
	Secrets   []Rule
}

// Default compila o catálogo embutido. Injection e command casam sem
// case-sensitivity; os padrões de secret carregam as próprias flags.
func Default() *Catalog {
	c := &Catalog{}
	for _, d := range injectionDefs {
		c.Injection = append(c.Injection, Rule{CategoryInjection, d.label, regexp.MustCompile(`(?i)` + d.pattern)})
	}
	for _, d := range commandDefs {
		c.Commands = append(c.Commands, Rule{CategoryCommand, d.label, regexp.MustCompile(`(?i)` + d.pattern)})
	}
	for _, d := range secretDefs {
		c.Secrets = append(c.Secrets, Rule{CategorySecret, d.label, regexp.MustCompile(d.pattern)})
	}
	return c
}

// Merge anexa as regras de outro catálogo ao final de cada categoria.
func (c *Catalog) Merge(other *Catalog) {
	c.Injection = append(c.Injection, other.Injection...)
	c.Commands = append(c.Commands, other.Commands...)
	c.Secrets = append(c.Secrets, other.Secrets...)
}

func (c *Catalog) Len() int {
	return len(c.Injection) + len(c.Commands) + len(c.Secrets)
}

// All devolve as regras na ordem de avaliação: injection, command, secret.
func (c *Catalog) All() []Rule {
	out := make([]Rule, 0, c.Len())
	out = append(out, c.Injection...)
	out = append(out, c.Commands...)
	out = append(out, c.Secrets...)
	return out
}
