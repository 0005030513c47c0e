package types

// SourceKind discriminates the SkillSource union.
type SourceKind string

const (
	// SourceKindLocal is a skill living on the local filesystem.
	SourceKindLocal SourceKind = "local"
	// SourceKindGitHub is a skill fetched from a GitHub repository.
	SourceKindGitHub SourceKind = "github"
	// SourceKindRemote is a skill fetched from an arbitrary URL.
	SourceKindRemote SourceKind = "remote"
)

// SkillSource describes where a skill physically lives and how to re-fetch
// it. Only the fields for the active Kind are populated.
type SkillSource struct {
	Kind SourceKind `json:"kind" toml:"kind"`

	// Local
	Path string `json:"path,omitempty" toml:"path,omitempty"`

	// GitHub
	Owner  string `json:"owner,omitempty" toml:"owner,omitempty"`
	Repo   string `json:"repo,omitempty" toml:"repo,omitempty"`
	Subdir string `json:"subdir,omitempty" toml:"subdir,omitempty"`
	Branch string `json:"branch,omitempty" toml:"branch,omitempty"`

	// Remote
	URL     string            `json:"url,omitempty" toml:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty" toml:"headers,omitempty"`
}

// LocalSource constructs a local filesystem source.
func LocalSource(path string) SkillSource {
	return SkillSource{Kind: SourceKindLocal, Path: path}
}

// GitHubSource constructs a GitHub repository source. Subdir and branch may
// be empty.
func GitHubSource(owner, repo, subdir, branch string) SkillSource {
	return SkillSource{Kind: SourceKindGitHub, Owner: owner, Repo: repo, Subdir: subdir, Branch: branch}
}

// RemoteSource constructs a generic remote URL source.
func RemoteSource(url string, headers map[string]string) SkillSource {
	return SkillSource{Kind: SourceKindRemote, URL: url, Headers: headers}
}

// SkillScope is the installation scope of a source.
type SkillScope string

const (
	ScopeGlobal  SkillScope = "global"
	ScopeUser    SkillScope = "user"
	ScopeProject SkillScope = "project"
)

// ParseScope maps a user-supplied scope string to a SkillScope, defaulting
// to user scope for unrecognized input.
func ParseScope(s string) SkillScope {
	switch SkillScope(s) {
	case ScopeGlobal, ScopeUser, ScopeProject:
		return SkillScope(s)
	}
	return ScopeUser
}

// SourceConfig is the resolved configuration handed to a provider for one
// listing call. Enabled, Scope, and Priority are pass-through fields owned
// by the configuration layer; providers do not filter or order by them.
type SourceConfig struct {
	Name       string     `json:"name" toml:"name"`
	SourceType SourceType `json:"source_type" toml:"source_type"`
	Enabled    bool       `json:"enabled" toml:"enabled"`
	Scope      SkillScope `json:"scope" toml:"scope"`
	Priority   int        `json:"priority" toml:"priority"`
}
