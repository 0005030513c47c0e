package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

func skillWithDeps(name, version string, deps ...types.SkillDependency) types.Skill {
	return types.Skill{
		ID:      types.SkillID(name),
		Name:    name,
		Version: version,
		Metadata: types.SkillMetadata{
			Dependencies: deps,
		},
	}
}

func TestResolveNoDependencies(t *testing.T) {
	r := New()
	plan, err := r.ResolveDependencies(skillWithDeps("standalone", "1.0.0"))
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestResolveMissingDependencies(t *testing.T) {
	r := New()
	root := skillWithDeps("root", "1.0.0",
		types.SkillDependency{Name: "base", VersionReq: "^1.0.0"},
		types.SkillDependency{Name: "tools"},
	)

	plan, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "base", plan[0].Name)
	assert.Equal(t, "^1.0.0", plan[0].VersionReq)
	assert.Equal(t, "tools", plan[1].Name)
}

func TestResolveSkipsOptional(t *testing.T) {
	r := New()
	root := skillWithDeps("root", "1.0.0",
		types.SkillDependency{Name: "base", VersionReq: "^1.0.0"},
		types.SkillDependency{Name: "extra", Optional: true},
	)

	plan, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "base", plan[0].Name)
}

func TestResolveSkipsSatisfiedInstalled(t *testing.T) {
	r := NewWithInstalled([]types.Skill{
		skillWithDeps("base", "1.2.0"),
	})
	root := skillWithDeps("root", "1.0.0",
		types.SkillDependency{Name: "base", VersionReq: "^1.0.0"},
		types.SkillDependency{Name: "missing"},
	)

	plan, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "missing", plan[0].Name)
}

func TestResolveSkipsInstalledRegardlessOfVersion(t *testing.T) {
	r := NewWithInstalled([]types.Skill{
		skillWithDeps("base", "1.0.0"),
	})
	root := skillWithDeps("root", "1.0.0",
		types.SkillDependency{Name: "base", VersionReq: ">=2.0.0"},
	)

	// Traversal skips by name alone; staleness is IsSatisfied's concern.
	plan, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	assert.Empty(t, plan)
	assert.False(t, r.IsSatisfied(types.SkillDependency{Name: "base", VersionReq: ">=2.0.0"}))
}

func TestResolveWalksInstalledTransitives(t *testing.T) {
	r := NewWithInstalled([]types.Skill{
		skillWithDeps("base", "1.0.0",
			types.SkillDependency{Name: "transitive"},
		),
	})
	root := skillWithDeps("root", "1.0.0",
		types.SkillDependency{Name: "base"},
	)

	plan, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "transitive", plan[0].Name)
}

func TestResolveDeduplicates(t *testing.T) {
	r := NewWithInstalled([]types.Skill{
		skillWithDeps("base", "1.0.0",
			types.SkillDependency{Name: "shared"},
		),
	})
	root := skillWithDeps("root", "1.0.0",
		types.SkillDependency{Name: "shared"},
		types.SkillDependency{Name: "base"},
	)

	plan, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "shared", plan[0].Name)
}

func TestResolveDetectsCycle(t *testing.T) {
	r := NewWithInstalled([]types.Skill{
		skillWithDeps("b", "1.0.0", types.SkillDependency{Name: "c"}),
		skillWithDeps("c", "1.0.0", types.SkillDependency{Name: "a"}),
		skillWithDeps("a", "1.0.0", types.SkillDependency{Name: "b"}),
	})
	root := skillWithDeps("a", "1.0.0", types.SkillDependency{Name: "b"})

	_, err := r.ResolveDependencies(root)
	require.Error(t, err)
	assert.True(t, skillerrors.Is(err, skillerrors.KindConfig))
	assert.Contains(t, err.Error(), "circular dependency")
}

func TestResolveDiamondIsNotCycle(t *testing.T) {
	r := NewWithInstalled([]types.Skill{
		skillWithDeps("left", "1.0.0", types.SkillDependency{Name: "shared"}),
		skillWithDeps("right", "1.0.0", types.SkillDependency{Name: "shared"}),
		skillWithDeps("shared", "1.0.0"),
	})
	root := skillWithDeps("root", "1.0.0",
		types.SkillDependency{Name: "left"},
		types.SkillDependency{Name: "right"},
	)

	plan, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestResolveIsRepeatable(t *testing.T) {
	r := New()
	root := skillWithDeps("root", "1.0.0",
		types.SkillDependency{Name: "base"},
	)

	first, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	second, err := r.ResolveDependencies(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIsSatisfied(t *testing.T) {
	r := NewWithInstalled([]types.Skill{
		skillWithDeps("base", "1.2.0"),
	})

	assert.True(t, r.IsSatisfied(types.SkillDependency{Name: "base"}))
	assert.True(t, r.IsSatisfied(types.SkillDependency{Name: "base", VersionReq: "^1.0.0"}))
	assert.False(t, r.IsSatisfied(types.SkillDependency{Name: "base", VersionReq: "^2.0.0"}))
	assert.False(t, r.IsSatisfied(types.SkillDependency{Name: "absent"}))
}

func TestIsSatisfiedExactMatchFallback(t *testing.T) {
	r := NewWithInstalled([]types.Skill{
		skillWithDeps("beta", "1.0.0-beta"),
		skillWithDeps("odd", "abc"),
	})

	assert.False(t, r.IsSatisfied(types.SkillDependency{Name: "beta", VersionReq: "1.0.0"}))
	assert.True(t, r.IsSatisfied(types.SkillDependency{Name: "beta", VersionReq: "1.0.0-beta"}))
	assert.False(t, r.IsSatisfied(types.SkillDependency{Name: "odd", VersionReq: "def"}))
	assert.True(t, r.IsSatisfied(types.SkillDependency{Name: "odd", VersionReq: "abc"}))
}

func TestVersionSatisfies(t *testing.T) {
	tests := []struct {
		version string
		req     string
		want    bool
	}{
		{"1.2.0", "", true},
		{"1.2.0", "^1.0.0", true},
		{"1.0.0", "^1.0.0", true},
		{"2.0.0", "^1.0.0", false},
		{"0.9.0", "^1.0.0", false},
		{"1.0.0", ">=1.0.0", true},
		{"1.0.1", ">=1.0.0", true},
		{"0.9.0", ">=1.0.0", false},
		{"1.0.1", ">1.0.0", true},
		{"1.0.0", ">1.0.0", false},
		// Anything unrecognized is an exact string match.
		{"1.2.0", "1.2.0", true},
		{"1.2.0", "1.2", false},
		{"1.2.1", "1.2.0", false},
		{"1.0.0-beta", "1.0.0", false},
		{"1.0.0-beta", "1.0.0-beta", true},
		{"abc", "def", false},
		{"1.2.0", "*", false},
		{"1.2.0", "latest", false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, versionSatisfies(tc.version, tc.req),
			"version %s against %s", tc.version, tc.req)
	}
}

func TestCompareVersions(t *testing.T) {
	assert.Equal(t, 0, compareVersions("1.2.0", "1.2"))
	assert.Equal(t, -1, compareVersions("1.2.0", "1.10.0"))
	assert.Equal(t, 1, compareVersions("2.0.0", "1.99.99"))
	assert.Equal(t, 0, compareVersions("1.2.x", "1.2.0"))
}
