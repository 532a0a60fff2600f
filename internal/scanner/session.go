package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/backwind1233/taskguard/internal/classifier"
	"github.com/backwind1233/taskguard/internal/model"
	"github.com/backwind1233/taskguard/internal/tasks"
	"go.uber.org/zap"
)

const maxReadBytes = 4 << 20

// Session acumula os findings de uma execução do scanner. Falhas de leitura
// e do classificador viram warning e skip; a sessão sempre segue até o fim.
type Session struct {
	engine   *Engine
	clf      *classifier.Adapter
	log      *zap.SugaredLogger
	findings []model.Finding
}

func NewSession(engine *Engine, clf *classifier.Adapter, log *zap.SugaredLogger) *Session {
	return &Session{engine: engine, clf: clf, log: log}
}

func (s *Session) Findings() []model.Finding {
	return s.findings
}

// ScanContent roda o engine e o classificador externo sobre um corpo de
// texto já lido.
func (s *Session) ScanContent(content, source string) {
	s.findings = append(s.findings, s.engine.ScanText(content, source)...)
	if s.clf != nil && s.clf.Available() {
		s.findings = append(s.findings, s.clf.Classify(content, source)...)
	}
}

// ScanFile lê e escaneia um arquivo; conteúdo ilegível ou binário é pulado.
func (s *Session) ScanFile(path string) {
	content, err := readText(path)
	if err != nil {
		s.log.Warnw("Erro ao ler arquivo, ignorando", "arquivo", path, "erro", err)
		return
	}
	s.ScanContent(content, path)
}

// ScanTasks percorre as pastas de task sob <root>/tasks. Com names vazio,
// escaneia todas; nomes inexistentes viram warning.
func (s *Session) ScanTasks(root string, names []string) error {
	var dirs []string
	if len(names) > 0 {
		found, missing := tasks.Select(root, names)
		for _, m := range missing {
			s.log.Warnf("Pasta de task não encontrada: %s", m)
		}
		dirs = found
	} else {
		var err error
		dirs, err = tasks.Folders(root)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				s.log.Warnf("Diretório de tasks não encontrado: %s", filepath.Join(root, "tasks"))
				return nil
			}
			return err
		}
	}

	for _, dir := range dirs {
		files, err := tasks.Files(dir)
		if err != nil {
			s.log.Warnw("Erro ao listar pasta de task, ignorando", "pasta", dir, "erro", err)
			continue
		}
		for _, f := range files {
			s.ScanFile(f)
		}
	}
	return nil
}

func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, maxReadBytes))
	if err != nil {
		return "", err
	}
	if !isLikelyText(buf) {
		return "", fmt.Errorf("conteúdo binário ou não-UTF-8")
	}
	return string(buf), nil
}

func isLikelyText(b []byte) bool {
	if bytes.IndexByte(b, 0x00) >= 0 {
		return false
	}
	return utf8.Valid(b)
}
