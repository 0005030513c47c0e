// Package types defines the normalized skill entity model shared by every
// provider. A Skill is an immutable value record describing one installable
// AI assistant configuration bundle, regardless of which platform's manifest
// dialect it was parsed from.
package types

import (
	"strings"
	"time"
)

// SourceType identifies which platform ecosystem a skill belongs to.
// The known constants form a closed set; any other non-empty string is
// treated as a custom source type.
type SourceType string

const (
	SourceTypeClaude     SourceType = "claude"
	SourceTypeCline      SourceType = "cline"
	SourceTypeCursor     SourceType = "cursor"
	SourceTypeOpenClaw   SourceType = "openclaw"
	SourceTypeRooCode    SourceType = "roo"
	SourceTypeCodex      SourceType = "codex"
	SourceTypeKiloCode   SourceType = "kilo"
	SourceTypeMoltbot    SourceType = "moltbot"
	SourceTypeVercel     SourceType = "vercel"
	SourceTypeCloudflare SourceType = "cloudflare"
	SourceTypeGitHub     SourceType = "github"
	SourceTypeLocal      SourceType = "local"
)

// CustomSourceType returns a SourceType for platforms outside the known set.
func CustomSourceType(name string) SourceType {
	return SourceType(name)
}

// IsKnown reports whether the source type is one of the built-in platforms.
func (s SourceType) IsKnown() bool {
	switch s {
	case SourceTypeClaude, SourceTypeCline, SourceTypeCursor, SourceTypeOpenClaw,
		SourceTypeRooCode, SourceTypeCodex, SourceTypeKiloCode, SourceTypeMoltbot,
		SourceTypeVercel, SourceTypeCloudflare, SourceTypeGitHub, SourceTypeLocal:
		return true
	}
	return false
}

// SkillFormat identifies which manifest dialect a skill was parsed from.
type SkillFormat string

const (
	FormatClaudeSkill      SkillFormat = "claude-skill"
	FormatClaudePlugin     SkillFormat = "claude-plugin"
	FormatClineSkill       SkillFormat = "cline-skill"
	FormatCursorRules      SkillFormat = "cursor-rules"
	FormatOpenClawSkill    SkillFormat = "openclaw-skill"
	FormatRooSkill         SkillFormat = "roo-skill"
	FormatCodexSkill       SkillFormat = "codex-skill"
	FormatKiloSkill        SkillFormat = "kilo-skill"
	FormatMoltbotSkill     SkillFormat = "moltbot-skill"
	FormatVercelSkill      SkillFormat = "vercel-skill"
	FormatCloudflareWorker SkillFormat = "cloudflare-worker"
	FormatGenericMarkdown  SkillFormat = "markdown"
	FormatGenericJSON      SkillFormat = "json"
	FormatUnknown          SkillFormat = "unknown"
)

// Skill is the unit of discovery. Providers construct Skill records fresh on
// every listing; Path references the files on disk but the record holds no
// lock over them.
type Skill struct {
	ID          string        `json:"id" toml:"id"`
	Name        string        `json:"name" toml:"name"`
	Description string        `json:"description" toml:"description"`
	Version     string        `json:"version,omitempty" toml:"version,omitempty"`
	Source      SkillSource   `json:"source" toml:"source"`
	SourceType  SourceType    `json:"source_type" toml:"source_type"`
	Path        string        `json:"path" toml:"path"`
	InstalledAt time.Time     `json:"installed_at" toml:"installed_at"`
	Metadata    SkillMetadata `json:"metadata" toml:"metadata"`
	Format      SkillFormat   `json:"format" toml:"format"`
}

// SkillMetadata carries optional descriptive fields. Absent manifest fields
// stay at their zero values; partial metadata is always acceptable.
type SkillMetadata struct {
	Author       string            `json:"author,omitempty" toml:"author,omitempty"`
	Tags         []string          `json:"tags,omitempty" toml:"tags,omitempty"`
	Homepage     string            `json:"homepage,omitempty" toml:"homepage,omitempty"`
	Repository   string            `json:"repository,omitempty" toml:"repository,omitempty"`
	License      string            `json:"license,omitempty" toml:"license,omitempty"`
	Readme       string            `json:"readme,omitempty" toml:"readme,omitempty"`
	Requirements []string          `json:"requirements,omitempty" toml:"requirements,omitempty"`
	Dependencies []SkillDependency `json:"dependencies,omitempty" toml:"dependencies,omitempty"`
}

// SkillDependency declares a dependency on another skill.
type SkillDependency struct {
	Name       string `json:"name" toml:"name"`
	VersionReq string `json:"version_req,omitempty" toml:"version_req,omitempty"`
	Source     string `json:"source,omitempty" toml:"source,omitempty"`
	Optional   bool   `json:"optional,omitempty" toml:"optional,omitempty"`
}

// SkillID derives the stable lowercase-hyphenated identifier from a display
// name. Consumers rely on it for lookup-by-id and deduplication.
func SkillID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
