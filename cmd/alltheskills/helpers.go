package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hongkongkiwi/alltheskills/pkg/config"
	"github.com/hongkongkiwi/alltheskills/pkg/providers"
	"github.com/hongkongkiwi/alltheskills/pkg/reader"
	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// newReader builds a reader over the full default provider registry.
func newReader() *reader.Reader {
	return reader.NewWithProviders(providers.DefaultProviders(providers.NewDetector())...)
}

// providerFor returns the registered provider owning the given source type.
func providerFor(r *reader.Reader, sourceType types.SourceType) (providers.Provider, bool) {
	for _, p := range r.Providers() {
		if p.SourceType() == sourceType {
			return p, true
		}
	}
	return nil, false
}

// findSkill locates a skill by ID or name across all providers. An optional
// source type narrows the lookup when names collide across platforms.
func findSkill(ctx context.Context, r *reader.Reader, nameOrID string, sourceType types.SourceType) (types.Skill, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return types.Skill{}, err
	}

	for _, skill := range all {
		if sourceType != "" && skill.SourceType != sourceType {
			continue
		}
		if skill.ID == nameOrID || skill.Name == nameOrID {
			return skill, nil
		}
	}
	return types.Skill{}, skillerrors.NotFound(nameOrID)
}

// defaultInstallDir resolves where skills without an explicit target land.
func defaultInstallDir() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(cfg.InstallDir) {
		return filepath.Join(cfg.InstallDir, "skills"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", skillerrors.IO(err, "cannot determine home directory")
	}
	return filepath.Join(home, cfg.InstallDir, "skills"), nil
}
