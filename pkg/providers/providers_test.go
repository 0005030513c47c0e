package providers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

func writeSkill(t *testing.T, root, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for file, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
	}
	return dir
}

func claudeFixture(t *testing.T) (*ClaudeProvider, string) {
	t.Helper()
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"CLAUDE_SKILLS_DIR": root}, "", "")
	return NewClaudeProvider(detect), root
}

func TestClaudeListSkillsFromJSON(t *testing.T) {
	provider, root := claudeFixture(t)
	writeSkill(t, root, "git-helper", map[string]string{
		"claude.json": `{
			"name": "Git Helper",
			"description": "Helps with git",
			"version": "1.2.0",
			"author": "Acme",
			"tags": ["git"],
			"dependencies": ["base", {"name": "extra", "optional": true}]
		}`,
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)

	skill := skills[0]
	assert.Equal(t, "git-helper", skill.ID)
	assert.Equal(t, "Git Helper", skill.Name)
	assert.Equal(t, "Helps with git", skill.Description)
	assert.Equal(t, "1.2.0", skill.Version)
	assert.Equal(t, "Acme", skill.Metadata.Author)
	assert.Equal(t, types.SourceTypeClaude, skill.SourceType)
	assert.Equal(t, types.FormatClaudeSkill, skill.Format)
	require.Len(t, skill.Metadata.Dependencies, 2)
	assert.Equal(t, "base", skill.Metadata.Dependencies[0].Name)
	assert.True(t, skill.Metadata.Dependencies[1].Optional)
}

func TestClaudeListSkillsFromFrontmatter(t *testing.T) {
	provider, root := claudeFixture(t)
	writeSkill(t, root, "reviewer", map[string]string{
		"SKILL.md": `---
name: code-reviewer
description: Reviews pull requests
---

# Code Reviewer
`,
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "code-reviewer", skills[0].Name)
	assert.Equal(t, "Reviews pull requests", skills[0].Description)
}

func TestClaudeListSkillsMissingDir(t *testing.T) {
	detect := NewDetectorWithEnv(nil, t.TempDir(), "")
	provider := NewClaudeProvider(detect)

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestClaudeListSkipsUnrecognizedAndMalformed(t *testing.T) {
	provider, root := claudeFixture(t)
	// No recognized manifest: silently skipped.
	writeSkill(t, root, "not-a-skill", map[string]string{"notes.txt": "hello"})
	// Malformed manifest: reported and skipped, not fatal.
	writeSkill(t, root, "broken", map[string]string{"claude.json": "{broken"})
	writeSkill(t, root, "good", map[string]string{"claude.json": `{"name": "Good"}`})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Good", skills[0].Name)
}

func TestClaudeReadSkillFallbackChain(t *testing.T) {
	provider, root := claudeFixture(t)
	dir := writeSkill(t, root, "doc-skill", map[string]string{
		"claude.json": `{"name": "Doc Skill"}`,
		"README.md":   "readme content",
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)

	content, err := provider.ReadSkill(context.Background(), skills[0])
	require.NoError(t, err)
	assert.Equal(t, "readme content", content)

	// SKILL.md outranks README.md once present.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("skill content"), 0o644))
	content, err = provider.ReadSkill(context.Background(), skills[0])
	require.NoError(t, err)
	assert.Equal(t, "skill content", content)
}

func TestReadSkillNotFound(t *testing.T) {
	provider, _ := claudeFixture(t)
	skill := types.Skill{Name: "ghost", Path: t.TempDir()}

	_, err := provider.ReadSkill(context.Background(), skill)
	require.Error(t, err)
	assert.True(t, skillerrors.Is(err, skillerrors.KindNotFound))
}

func TestInstallLocalRoundTrip(t *testing.T) {
	provider, root := claudeFixture(t)
	src := writeSkill(t, root, "src-skill", map[string]string{
		"claude.json": `{"name": "Src Skill", "version": "0.1.0"}`,
	})

	target := filepath.Join(t.TempDir(), "installed")
	skill, err := provider.Install(context.Background(), types.LocalSource(src), target)
	require.NoError(t, err)
	assert.Equal(t, "Src Skill", skill.Name)
	assert.Equal(t, target, skill.Path)
	assert.FileExists(t, filepath.Join(target, "claude.json"))
}

func TestInstallRejectsWrongSourceKind(t *testing.T) {
	provider, _ := claudeFixture(t)

	_, err := provider.Install(context.Background(),
		types.GitHubSource("acme", "skills", "", ""), t.TempDir())
	require.Error(t, err)
	assert.True(t, skillerrors.Is(err, skillerrors.KindInstall))
}

func TestKiloProviderYAMLManifest(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"KILO_SKILLS_DIR": root}, "", "")
	provider := NewKiloProvider(detect)

	writeSkill(t, root, "linter", map[string]string{
		"kilo.yaml": "name: YAML Linter\ndescription: Lints YAML files\nversion: 2.0.0\nlanguage: go\ntags:\n  - lint\n",
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "YAML Linter", skills[0].Name)
	assert.Equal(t, "2.0.0", skills[0].Version)
	assert.Equal(t, types.FormatKiloSkill, skills[0].Format)
	assert.Contains(t, skills[0].Metadata.Tags, "lint")
	assert.Contains(t, skills[0].Metadata.Tags, "go")
}

func TestCloudflareWranglerManifest(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"CLOUDFLARE_SKILLS_DIR": root}, "", "")
	provider := NewCloudflareProvider(detect)

	writeSkill(t, root, "edge-worker", map[string]string{
		"wrangler.toml": "name = \"edge-worker\"\ndescription = \"Runs at the edge\"\nmain = \"worker.js\"\n",
	})
	writeSkill(t, root, "bare-worker", map[string]string{
		"worker.ts": "export default {}",
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 2)

	byID := map[string]types.Skill{}
	for _, s := range skills {
		byID[s.ID] = s
	}
	require.Contains(t, byID, "edge-worker")
	assert.Equal(t, "Runs at the edge", byID["edge-worker"].Description)
	assert.Contains(t, byID["edge-worker"].Metadata.Requirements, "main: worker.js")
	require.Contains(t, byID, "bare-worker")
	assert.Equal(t, types.FormatCloudflareWorker, byID["bare-worker"].Format)
}

func TestCursorLooseRulesFiles(t *testing.T) {
	root := t.TempDir()
	cwd := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"CURSOR_RULES_DIR": root}, "", cwd)
	provider := NewCursorProvider(detect)

	require.NoError(t, os.WriteFile(filepath.Join(root, "go-style.md"), []byte("# Go Style\nUse gofmt."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, ".cursorrules"), []byte("# Project Rules"), 0o644))

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, "go-style", skills[0].Name)
	assert.Equal(t, types.FormatCursorRules, skills[0].Format)
	assert.Equal(t, "cursorrules", skills[1].Name)
}

func TestCursorMalformedManifestOmitted(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"CURSOR_RULES_DIR": root}, "", "")
	provider := NewCursorProvider(detect)

	writeSkill(t, root, "broken", map[string]string{
		"cursor.json": "{not json",
	})
	writeSkill(t, root, "good", map[string]string{
		"cursor.json": `{"name": "good", "description": "Valid rules"}`,
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "good", skills[0].Name)
}

func TestMoltbotFrontmatterSkill(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"MOLTBOT_SKILLS_DIR": root}, "", "")
	provider := NewMoltbotProvider(detect)

	writeSkill(t, root, "greeter", map[string]string{
		"SKILL.md": "---\nname: greeter\ndescription: Greets users\n---\n\n# Greeter\n",
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "greeter", skills[0].Name)
	assert.Equal(t, types.FormatMoltbotSkill, skills[0].Format)
}

func TestRooModesFallback(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"ROO_SKILLS_DIR": root}, "", "")
	provider := NewRooProvider(detect)

	writeSkill(t, root, "architect-mode", map[string]string{
		".roomodes": `{"customModes": [{"slug": "architect"}]}`,
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "architect-mode", skills[0].Name)
	assert.Equal(t, "Roo Code mode configuration", skills[0].Description)
	assert.Equal(t, types.FormatRooSkill, skills[0].Format)
}

func TestCodexModelAndTools(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"CODEX_SKILLS_DIR": root}, "", "")
	provider := NewCodexProvider(detect)

	writeSkill(t, root, "refactorer", map[string]string{
		"codex.json": `{
			"name": "Refactorer",
			"model": "o4-mini",
			"tools": ["shell", "apply_patch"]
		}`,
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Contains(t, skills[0].Metadata.Requirements, "model: o4-mini")
	assert.Contains(t, skills[0].Metadata.Requirements, "shell")
	assert.Contains(t, skills[0].Metadata.Requirements, "apply_patch")
}

func TestVercelExplicitID(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"VERCEL_SKILLS_DIR": root}, "", "")
	provider := NewVercelProvider(detect)

	writeSkill(t, root, "chat-ui", map[string]string{
		"skill.json": `{"id": "vercel-chat-ui", "name": "Chat UI"}`,
	})
	// No markdown fallback: a bare directory yields nothing.
	writeSkill(t, root, "just-docs", map[string]string{"README.md": "# Docs"})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "vercel-chat-ui", skills[0].ID)
	assert.Equal(t, "Chat UI", skills[0].Name)
}

func TestClineCustomInstructions(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"CLINE_SKILLS_DIR": root}, "", "")
	provider := NewClineProvider(detect)

	writeSkill(t, root, "test-writer", map[string]string{
		"custom-instructions.md": "# Test Writer\n\nWrite table driven tests.",
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "test-writer", skills[0].Name)
	assert.Equal(t, "Test Writer", skills[0].Description)
	assert.Contains(t, skills[0].Metadata.Tags, "custom-instructions")
}

func TestOpenClawSkillJSON(t *testing.T) {
	root := t.TempDir()
	detect := NewDetectorWithEnv(map[string]string{"OPENCLAW_SKILLS_DIR": root}, "", "")
	provider := NewOpenClawProvider(detect)

	writeSkill(t, root, "scraper", map[string]string{
		"skill.json": `{"name": "Scraper", "version": "3.1.0"}`,
	})

	skills, err := provider.ListSkills(context.Background(), types.SourceConfig{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Scraper", skills[0].Name)
	assert.Equal(t, types.FormatOpenClawSkill, skills[0].Format)
}

func TestCanHandleRouting(t *testing.T) {
	detect := NewDetectorWithEnv(nil, "", "")

	claude := NewClaudeProvider(detect)
	assert.True(t, claude.CanHandle(types.LocalSource("/home/user/.claude/skills/x")))
	assert.False(t, claude.CanHandle(types.LocalSource("/home/user/.cline/skills/x")))
	assert.False(t, claude.CanHandle(types.GitHubSource("a", "b", "", "")))

	github := NewGitHubProvider()
	assert.True(t, github.CanHandle(types.GitHubSource("a", "b", "", "")))
	assert.False(t, github.CanHandle(types.LocalSource("/anything")))

	local := NewLocalProvider(detect)
	assert.True(t, local.CanHandle(types.LocalSource("/anything")))
}

func TestDefaultProvidersRegistry(t *testing.T) {
	providers := DefaultProviders(NewDetectorWithEnv(nil, "", ""))
	require.Len(t, providers, 12)

	seen := map[types.SourceType]bool{}
	for _, p := range providers {
		assert.NotEmpty(t, p.Name())
		assert.False(t, seen[p.SourceType()], "duplicate source type %s", p.SourceType())
		seen[p.SourceType()] = true
	}
}

func TestGitHubInstallRejectsLocalSource(t *testing.T) {
	provider := NewGitHubProvider()
	_, err := provider.Install(context.Background(), types.LocalSource("/x"), t.TempDir())
	require.Error(t, err)
	assert.True(t, skillerrors.Is(err, skillerrors.KindInstall))
}
