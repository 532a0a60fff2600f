package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// TaskFile é o arquivo descritor esperado em cada pasta de task.
const TaskFile = "task.md"

// Folders lista as pastas de task imediatas sob <root>/tasks, em ordem
// lexical para relatórios reproduzíveis.
func Folders(root string) ([]string, error) {
	dir := filepath.Join(root, "tasks")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// Select resolve nomes de pasta sob <root>/tasks. Nomes inexistentes voltam
// em missing; a seleção preserva a ordem pedida na linha de comando.
func Select(root string, names []string) (found, missing []string) {
	dir := filepath.Join(root, "tasks")
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			missing = append(missing, name)
			continue
		}
		found = append(found, path)
	}
	return found, missing
}

// Files lista os arquivos regulares de uma pasta de task: task.md primeiro,
// depois os demais em ordem lexical.
func Files(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", folder, err)
	}

	hasTask := false
	var rest []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if e.Name() == TaskFile {
			hasTask = true
			continue
		}
		rest = append(rest, filepath.Join(folder, e.Name()))
	}
	sort.Strings(rest)

	if hasTask {
		return append([]string{filepath.Join(folder, TaskFile)}, rest...), nil
	}
	return rest, nil
}
