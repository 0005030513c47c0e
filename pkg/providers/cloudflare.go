package providers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// CloudflareProvider reads Cloudflare Workers AI skills from
// ~/.cloudflare/workers/skills. A skill is a worker directory described by
// its wrangler.toml, or a bare worker.js/worker.ts script.
type CloudflareProvider struct {
	detect *Detector
}

// wranglerConfig is the subset of wrangler.toml this provider cares about.
type wranglerConfig struct {
	Name              string `toml:"name"`
	Description       string `toml:"description"`
	Main              string `toml:"main"`
	CompatibilityDate string `toml:"compatibility_date"`
}

// NewCloudflareProvider creates a Cloudflare Workers AI skills provider.
func NewCloudflareProvider(detect *Detector) *CloudflareProvider {
	return &CloudflareProvider{detect: detect}
}

func (p *CloudflareProvider) Name() string {
	return "Cloudflare Workers AI"
}

func (p *CloudflareProvider) SourceType() types.SourceType {
	return types.SourceTypeCloudflare
}

func (p *CloudflareProvider) CanHandle(source types.SkillSource) bool {
	return source.Kind == types.SourceKindLocal &&
		(strings.Contains(source.Path, "cloudflare") || strings.Contains(source.Path, "workers"))
}

func (p *CloudflareProvider) ListSkills(ctx context.Context, _ types.SourceConfig) ([]types.Skill, error) {
	root, ok := p.detect.CloudflareSkillsDir()
	if !ok {
		return nil, nil
	}
	return listSkillDirs(ctx, root, p.Name(), p.parseSkillDir)
}

func (p *CloudflareProvider) ReadSkill(_ context.Context, skill types.Skill) (string, error) {
	return readFirstExisting(skill, "README.md", "wrangler.toml", "worker.js", "worker.ts")
}

func (p *CloudflareProvider) Install(_ context.Context, source types.SkillSource, target string) (types.Skill, error) {
	return installLocal(source, target, "Cloudflare", p.parseSkillDir)
}

func (p *CloudflareProvider) parseSkillDir(dir string) (*types.Skill, error) {
	if configPath := filepath.Join(dir, "wrangler.toml"); fileExists(configPath) {
		var cfg wranglerConfig
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return nil, skillerrors.Parse(err, "failed to parse wrangler.toml")
		}

		skill := buildSkill(dir, manifest{
			"name":        cfg.Name,
			"description": cfg.Description,
		}, types.SourceTypeCloudflare, types.FormatCloudflareWorker)
		if cfg.Main != "" {
			skill.Metadata.Requirements = append(skill.Metadata.Requirements, "main: "+cfg.Main)
		}
		return &skill, nil
	}

	for _, worker := range []string{"worker.js", "worker.ts"} {
		if fileExists(filepath.Join(dir, worker)) {
			skill := buildSkill(dir, manifest{"description": "Cloudflare Worker skill"},
				types.SourceTypeCloudflare, types.FormatCloudflareWorker)
			return &skill, nil
		}
	}

	return nil, nil
}
