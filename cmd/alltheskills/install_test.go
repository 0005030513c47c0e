package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongkongkiwi/alltheskills/pkg/providers"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

func TestResolveInstallSourceGitHubURL(t *testing.T) {
	source, err := resolveInstallSource("https://github.com/acme/skills/git-helper", "main")
	require.NoError(t, err)
	assert.Equal(t, types.SourceKindGitHub, source.Kind)
	assert.Equal(t, "acme", source.Owner)
	assert.Equal(t, "skills", source.Repo)
	assert.Equal(t, "git-helper", source.Subdir)
	assert.Equal(t, "main", source.Branch)
}

func TestResolveInstallSourceLocalPath(t *testing.T) {
	dir := t.TempDir()
	source, err := resolveInstallSource(dir, "")
	require.NoError(t, err)
	assert.Equal(t, types.SourceKindLocal, source.Kind)
	assert.Equal(t, dir, source.Path)
}

func TestResolveInstallSourceRejectsMissingPath(t *testing.T) {
	_, err := resolveInstallSource("/does/not/exist/anywhere", "")
	require.Error(t, err)
}

func TestInstallName(t *testing.T) {
	assert.Equal(t, "skills", installName(types.GitHubSource("acme", "skills", "", "")))
	assert.Equal(t, "helper", installName(types.GitHubSource("acme", "skills", "tools/helper", "")))
	assert.Equal(t, "my-skill", installName(types.LocalSource("/home/user/my-skill")))
}

func TestRouteInstall(t *testing.T) {
	registry := providers.DefaultProviders(providers.NewDetectorWithEnv(nil, "", ""))

	github := routeInstall(registry, types.GitHubSource("acme", "skills", "", ""))
	require.NotNil(t, github)
	assert.Equal(t, types.SourceTypeGitHub, github.SourceType())

	// Any local path is claimed by at least the local provider.
	local := routeInstall(registry, types.LocalSource("/somewhere/else"))
	require.NotNil(t, local)
}
