package classifier

import (
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/backwind1233/taskguard/internal/config"
	"github.com/backwind1233/taskguard/internal/model"
	"go.uber.org/zap"
)

// Violation é o registro que o validador externo escreve no stdout:
// {"violations":[{"validator":"...","message":"...","value":"..."}]}
type Violation struct {
	Validator string `json:"validator"`
	Message   string `json:"message"`
	Value     string `json:"value"`
}

type classifierOutput struct {
	Violations []Violation `json:"violations"`
}

// runner isola a execução de processos para permitir stub em teste.
type runner interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, name string, args []string, stdin io.Reader) ([]byte, error)
}

type osRunner struct{}

func (osRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (osRunner) Run(ctx context.Context, name string, args []string, stdin io.Reader) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	return cmd.Output()
}

// Adapter embrulha o classificador externo opcional. O binário é resolvido
// uma única vez na criação; quando ausente, Classify vira no-op.
type Adapter struct {
	path    string
	args    []string
	timeout time.Duration
	runner  runner
	log     *zap.SugaredLogger
}

func New(cfg config.ClassifierConfig, log *zap.SugaredLogger) *Adapter {
	return newWithRunner(cfg, log, osRunner{})
}

func newWithRunner(cfg config.ClassifierConfig, log *zap.SugaredLogger, r runner) *Adapter {
	a := &Adapter{args: cfg.Args, timeout: cfg.Timeout, runner: r, log: log}
	if a.timeout <= 0 {
		a.timeout = 30 * time.Second
	}
	if !cfg.Enabled {
		return a
	}
	path, err := r.LookPath(cfg.Command)
	if err != nil {
		log.Debugf("Classificador externo não encontrado no PATH: %s", cfg.Command)
		return a
	}
	a.path = path
	return a
}

func (a *Adapter) Available() bool {
	return a.path != ""
}

// Classify roda o validador externo sobre o conteúdo e converte cada
// violação em um finding critical. Qualquer falha (spawn, timeout, saída
// inválida) vira warning no log e zero findings; nunca derruba o scan.
func (a *Adapter) Classify(content, source string) []model.Finding {
	if a.path == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	out, runErr := a.runner.Run(ctx, a.path, a.args, strings.NewReader(content))

	// exit != 0 com saída parseável ainda vale: o validador sai com erro
	// quando encontra violações
	var doc classifierOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		if runErr != nil {
			a.log.Warnw("Classificador externo falhou", "arquivo", source, "erro", runErr)
		} else {
			a.log.Warnw("Saída inválida do classificador externo", "arquivo", source, "erro", err)
		}
		return nil
	}

	findings := make([]model.Finding, 0, len(doc.Violations))
	for _, v := range doc.Violations {
		name := v.Validator
		if name == "" {
			name = "Unknown"
		}
		msg := v.Message
		if msg == "" {
			msg = "Validation failed"
		}
		findings = append(findings, model.Finding{
			Severity:    model.SevCritical,
			RuleID:      model.RuleExternalClassifier,
			RuleName:    "External Classifier: " + name,
			Description: msg,
			File:        source,
			Line:        1,
			Match:       truncate(v.Value, 100),
		})
	}
	return findings
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
