package providers

import (
	"os"
	"path/filepath"
)

// Detector resolves each platform's skills directory: an environment
// variable override wins unconditionally, otherwise the first fallback path
// that exists under the home directory is used. It carries an explicit
// environment snapshot instead of reading ambient globals so tests can
// substitute fake environments.
type Detector struct {
	lookupEnv func(key string) (string, bool)
	home      string
	workDir   string
}

// NewDetector builds a detector backed by the real process environment.
func NewDetector() *Detector {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()
	return &Detector{lookupEnv: os.LookupEnv, home: home, workDir: cwd}
}

// NewDetectorWithEnv builds a detector over a fixed environment snapshot.
func NewDetectorWithEnv(env map[string]string, home, workDir string) *Detector {
	return &Detector{
		lookupEnv: func(key string) (string, bool) {
			val, ok := env[key]
			return val, ok
		},
		home:    home,
		workDir: workDir,
	}
}

// WorkDir returns the working directory used for project-scoped lookups.
func (d *Detector) WorkDir() string {
	return d.workDir
}

// detect checks the env keys in order, then the home-relative fallbacks.
// An env override is returned without an existence check; fallbacks must
// exist on disk.
func (d *Detector) detect(envKeys []string, fallbacks ...string) (string, bool) {
	for _, key := range envKeys {
		if val, ok := d.lookupEnv(key); ok && val != "" {
			return val, true
		}
	}

	if d.home == "" {
		return "", false
	}

	for _, fallback := range fallbacks {
		path := filepath.Join(d.home, fallback)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

// ClaudeSkillsDir resolves the Claude Code skills directory.
func (d *Detector) ClaudeSkillsDir() (string, bool) {
	return d.detect([]string{"CLAUDE_SKILLS_DIR"}, ".claude/skills", ".claude/plugins/skills")
}

// ClineSkillsDir resolves the Cline skills directory.
func (d *Detector) ClineSkillsDir() (string, bool) {
	return d.detect([]string{"CLINE_SKILLS_DIR"}, ".cline/skills")
}

// CursorRulesDir resolves the Cursor global rules directory.
func (d *Detector) CursorRulesDir() (string, bool) {
	return d.detect([]string{"CURSOR_RULES_DIR"}, ".cursor/rules", ".cursor")
}

// OpenClawSkillsDir resolves the OpenClaw skills directory.
func (d *Detector) OpenClawSkillsDir() (string, bool) {
	return d.detect([]string{"OPENCLAW_SKILLS_DIR"}, ".openclaw/skills")
}

// RooSkillsDir resolves the Roo Code skills directory.
func (d *Detector) RooSkillsDir() (string, bool) {
	return d.detect([]string{"ROO_SKILLS_DIR"}, ".roo/skills")
}

// CodexSkillsDir resolves the OpenAI Codex skills directory.
func (d *Detector) CodexSkillsDir() (string, bool) {
	return d.detect([]string{"CODEX_SKILLS_DIR"}, ".codex/skills")
}

// KiloSkillsDir resolves the Kilo Code skills directory.
func (d *Detector) KiloSkillsDir() (string, bool) {
	return d.detect([]string{"KILO_SKILLS_DIR"}, ".kilo/skills")
}

// MoltbotSkillsDir resolves the Moltbot skills directory, honoring the
// legacy ClawdBot environment variable and path.
func (d *Detector) MoltbotSkillsDir() (string, bool) {
	return d.detect(
		[]string{"MOLTBOT_SKILLS_DIR", "CLAWDBOT_SKILLS_DIR"},
		".moltbot/skills", ".clawdbot/skills",
	)
}

// VercelSkillsDir resolves the Vercel AI SDK skills directory.
func (d *Detector) VercelSkillsDir() (string, bool) {
	return d.detect([]string{"VERCEL_SKILLS_DIR"}, ".vercel/ai/skills", ".ai/skills")
}

// CloudflareSkillsDir resolves the Cloudflare Workers AI skills directory.
func (d *Detector) CloudflareSkillsDir() (string, bool) {
	return d.detect([]string{"CLOUDFLARE_SKILLS_DIR"}, ".cloudflare/workers/skills", ".workers-ai/skills")
}

// LocalSkillsDir resolves the directory scanned by the local provider: an
// explicit override, else the working directory.
func (d *Detector) LocalSkillsDir() (string, bool) {
	if val, ok := d.lookupEnv("ALLTHESKILLS_LOCAL_DIR"); ok && val != "" {
		return val, true
	}
	if d.workDir == "" {
		return "", false
	}
	return d.workDir, true
}
