package exporter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongkongkiwi/alltheskills/pkg/providers"
	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

func TestScaffoldClaudeSkill(t *testing.T) {
	dir := t.TempDir()

	target, err := Scaffold(dir, "Git Helper", "Helps with git", types.SourceTypeClaude)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "git-helper"), target)
	assert.FileExists(t, filepath.Join(target, "claude.json"))
	assert.FileExists(t, filepath.Join(target, "SKILL.md"))
	assert.FileExists(t, filepath.Join(target, "README.md"))

	// The scaffold must parse back through the matching provider.
	detect := providers.NewDetectorWithEnv(map[string]string{"CLAUDE_SKILLS_DIR": dir}, "", "")
	provider := providers.NewClaudeProvider(detect)
	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Git Helper", skills[0].Name)
	assert.Equal(t, "Helps with git", skills[0].Description)
	assert.Equal(t, "0.1.0", skills[0].Version)
}

func TestScaffoldRefusesExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "taken"), 0o755))

	_, err := Scaffold(dir, "Taken", "", types.SourceTypeClaude)
	require.Error(t, err)
	assert.True(t, skillerrors.Is(err, skillerrors.KindInstall))
}

func TestExportToClineLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exported")
	skill := types.Skill{
		ID:          "reviewer",
		Name:        "Reviewer",
		Description: "Reviews code",
		Version:     "1.0.0",
	}

	require.NoError(t, Export(skill, "Always check error handling.", types.SourceTypeCline, dir))

	body, err := os.ReadFile(filepath.Join(dir, "custom-instructions.md"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "# Reviewer")
	assert.Contains(t, string(body), "Always check error handling.")
	assert.FileExists(t, filepath.Join(dir, "cline.json"))
}

func TestExportToCloudflareLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "worker")
	skill := types.Skill{ID: "edge-cache", Name: "Edge Cache", Description: "Caches at the edge"}

	require.NoError(t, Export(skill, "", types.SourceTypeCloudflare, dir))

	wrangler, err := os.ReadFile(filepath.Join(dir, "wrangler.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(wrangler), `name = "edge-cache"`)
	assert.Contains(t, string(wrangler), `main = "worker.js"`)
	assert.FileExists(t, filepath.Join(dir, "worker.js"))
}

func TestExportToKiloLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kilo")
	skill := types.Skill{
		ID:          "linter",
		Name:        "Linter",
		Description: "Lints things",
		Version:     "2.0.0",
		Metadata:    types.SkillMetadata{Tags: []string{"lint", "go"}},
	}

	require.NoError(t, Export(skill, "", types.SourceTypeKiloCode, dir))

	manifest, err := os.ReadFile(filepath.Join(dir, "kilo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "name: Linter")
	assert.Contains(t, string(manifest), "version: 2.0.0")
	assert.Contains(t, string(manifest), "- lint")
}

func TestExportUnsupportedTarget(t *testing.T) {
	err := Export(types.Skill{Name: "x"}, "", types.SourceTypeGitHub, t.TempDir())
	require.Error(t, err)
	assert.True(t, skillerrors.Is(err, skillerrors.KindUnsupportedFormat))
}

func TestExportFillsDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "defaults")
	require.NoError(t, Export(types.Skill{Name: "Bare Skill"}, "", types.SourceTypeClaude, dir))

	manifest, err := os.ReadFile(filepath.Join(dir, "claude.json"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"version": "0.1.0"`)

	skillFile, err := os.ReadFile(filepath.Join(dir, "SKILL.md"))
	require.NoError(t, err)
	assert.Contains(t, string(skillFile), "name: bare-skill")
}

func TestSupportedTargets(t *testing.T) {
	targets := SupportedTargets()
	assert.Contains(t, targets, types.SourceTypeClaude)
	assert.Contains(t, targets, types.SourceTypeCloudflare)
	assert.NotContains(t, targets, types.SourceTypeGitHub)
}
