package sarif

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/backwind1233/taskguard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	findings := []model.Finding{
		{Severity: model.SevHigh, RuleID: model.RuleSecretDetected, RuleName: "Secret: Hardcoded password", Description: "Detected potential hardcoded credential", File: "tasks/b/task.md", Line: 7, Match: "password = ..."},
		{Severity: model.SevCritical, RuleID: model.RulePromptInjection, RuleName: "Prompt Injection: Instruction override", Description: "Detected potential prompt injection attempt", File: "tasks/a/task.md", Line: 2, Match: "ignore previous"},
		{Severity: model.SevLow, RuleID: "X", RuleName: "X: y", Description: "d", File: "", Line: 0, Match: ""},
	}

	outPath := filepath.Join(t.TempDir(), "out", "scan.sarif")
	require.NoError(t, Export(findings, outPath, "taskguard", "0.1.0"))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var log Log
	require.NoError(t, json.Unmarshal(data, &log))

	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	assert.Equal(t, "taskguard", log.Runs[0].Tool.Driver.Name)

	results := log.Runs[0].Results
	require.Len(t, results, 3)

	// ordenado por arquivo/linha/regra; arquivo vazio vira UNKNOWN e linha 1
	assert.Equal(t, "X", results[0].RuleID)
	assert.Equal(t, "UNKNOWN", results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 1, results[0].Locations[0].PhysicalLocation.Region.StartLine)
	assert.Equal(t, "note", results[0].Level)

	assert.Equal(t, model.RulePromptInjection, results[1].RuleID)
	assert.Equal(t, "tasks/a/task.md", results[1].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, "error", results[1].Level)

	assert.Equal(t, model.RuleSecretDetected, results[2].RuleID)
	assert.Equal(t, "error", results[2].Level)
}

func TestExportDoesNotMutateInput(t *testing.T) {
	findings := []model.Finding{
		{Severity: model.SevHigh, RuleID: "B", File: "b.md", Line: 1},
		{Severity: model.SevHigh, RuleID: "A", File: "a.md", Line: 1},
	}
	outPath := filepath.Join(t.TempDir(), "scan.sarif")
	require.NoError(t, Export(findings, outPath, "taskguard", "0.1.0"))

	// a ordem de inserção original é preservada para os relatórios
	assert.Equal(t, "B", findings[0].RuleID)
}

func TestSortFindings(t *testing.T) {
	fs := []model.Finding{
		{File: "b.md", Line: 2, RuleID: "Z"},
		{File: "a.md", Line: 9, RuleID: "Z"},
		{File: "a.md", Line: 9, RuleID: "A"},
		{File: "a.md", Line: 1, RuleID: "Z"},
	}
	SortFindings(fs)

	assert.Equal(t, model.Finding{File: "a.md", Line: 1, RuleID: "Z"}, fs[0])
	assert.Equal(t, model.Finding{File: "a.md", Line: 9, RuleID: "A"}, fs[1])
	assert.Equal(t, model.Finding{File: "a.md", Line: 9, RuleID: "Z"}, fs[2])
	assert.Equal(t, model.Finding{File: "b.md", Line: 2, RuleID: "Z"}, fs[3])
}

func TestSevToLevel(t *testing.T) {
	assert.Equal(t, "error", sevToLevel(model.SevCritical))
	assert.Equal(t, "error", sevToLevel(model.SevHigh))
	assert.Equal(t, "warning", sevToLevel(model.SevMedium))
	assert.Equal(t, "note", sevToLevel(model.SevLow))
}
