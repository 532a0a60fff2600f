package rules

import "regexp"

// Indicadores de placeholder: um match de injection ou secret cuja linha
// contém um desses padrões é descartado. Comandos perigosos nunca passam
// por aqui (um comando destrutivo é perigoso mesmo dentro de exemplo).
var skipDefs = []string{
	`<your-`,
	`\$\{`,
	`\$[A-Z_]+`, // variáveis de ambiente tipo $AWS_ACCESS_KEY
	`your-.*-here`,
	`example`,
	`placeholder`,
	`xxx+`,
	`\*\*\*`,
	`AWS_ACCESS_KEY`, // nomes comuns de placeholder cloud
	`AWS_SECRET`,
	`AZURE_`,
	`my-bucket`,
	`my-container`,
}

var skipPatterns = compileSkipPatterns()

func compileSkipPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(skipDefs))
	for _, d := range skipDefs {
		out = append(out, regexp.MustCompile(`(?i)`+d))
	}
	return out
}

// ShouldSkip informa se o texto parece placeholder/exemplo e não conteúdo real.
func ShouldSkip(text string) bool {
	for _, p := range skipPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
