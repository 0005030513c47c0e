// Package resolver computes installation plans for skill dependencies and
// detects dependency cycles.
package resolver

import (
	"strconv"
	"strings"

	"github.com/hongkongkiwi/alltheskills/pkg/skillerrors"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// Resolver walks a skill's dependency graph against the set of installed
// skills. Missing dependencies are returned as an installation plan;
// installed dependencies are skipped by name but walked transitively so
// that cycles hiding behind installed skills still surface. Version
// requirements are checked by IsSatisfied, not during traversal.
//
// A Resolver is not safe for concurrent use.
type Resolver struct {
	installed map[string]types.Skill
	resolving map[string]struct{}
}

// New creates a resolver with no installed skills.
func New() *Resolver {
	return &Resolver{
		installed: make(map[string]types.Skill),
		resolving: make(map[string]struct{}),
	}
}

// NewWithInstalled creates a resolver seeded with the given installed
// skills, keyed by name. Later entries with the same name win.
func NewWithInstalled(skills []types.Skill) *Resolver {
	r := New()
	for _, skill := range skills {
		r.installed[skill.Name] = skill
	}
	return r
}

// AddInstalled records a skill as installed. Plans computed afterwards
// treat it as present.
func (r *Resolver) AddInstalled(skill types.Skill) {
	r.installed[skill.Name] = skill
}

// Installed returns the installed skills known to the resolver.
func (r *Resolver) Installed() []types.Skill {
	skills := make([]types.Skill, 0, len(r.installed))
	for _, skill := range r.installed {
		skills = append(skills, skill)
	}
	return skills
}

// ResolveDependencies returns the dependencies of skill that still need to
// be installed, deduplicated by name. Optional dependencies are never part
// of a plan. A dependency cycle is the only hard failure and is reported as
// a configuration error.
func (r *Resolver) ResolveDependencies(skill types.Skill) ([]types.SkillDependency, error) {
	r.resolving = make(map[string]struct{})
	seen := make(map[string]struct{})

	var plan []types.SkillDependency
	if err := r.resolve(skill, seen, &plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *Resolver) resolve(skill types.Skill, seen map[string]struct{}, plan *[]types.SkillDependency) error {
	r.resolving[skill.Name] = struct{}{}
	defer delete(r.resolving, skill.Name)

	for _, dep := range skill.Metadata.Dependencies {
		if dep.Optional {
			continue
		}
		if _, active := r.resolving[dep.Name]; active {
			return skillerrors.Config("circular dependency detected: %s", dep.Name)
		}

		if installed, ok := r.installed[dep.Name]; ok {
			// Installed, so not part of the plan regardless of version;
			// staleness is IsSatisfied's concern. Its own dependencies may
			// still introduce cycles or missing transitives.
			if err := r.resolve(installed, seen, plan); err != nil {
				return err
			}
			continue
		}

		if _, dup := seen[dep.Name]; dup {
			continue
		}
		seen[dep.Name] = struct{}{}
		*plan = append(*plan, dep)
	}

	return nil
}

// IsSatisfied reports whether an installed skill already satisfies the
// dependency, including its version requirement.
func (r *Resolver) IsSatisfied(dep types.SkillDependency) bool {
	installed, ok := r.installed[dep.Name]
	if !ok {
		return false
	}
	return versionSatisfies(installed.Version, dep.VersionReq)
}

// versionSatisfies checks a version string against a requirement. The
// grammar is deliberately small: an empty requirement matches anything,
// "^X.Y.Z" means same major at or above X.Y.Z, ">=" and ">" compare, and
// any other syntax is an exact string match.
func versionSatisfies(version, req string) bool {
	req = strings.TrimSpace(req)
	switch {
	case req == "":
		return true
	case strings.HasPrefix(req, "^"):
		return caretCompatible(version, strings.TrimPrefix(req, "^"))
	case strings.HasPrefix(req, ">="):
		return compareVersions(version, strings.TrimSpace(strings.TrimPrefix(req, ">="))) >= 0
	case strings.HasPrefix(req, ">"):
		return compareVersions(version, strings.TrimSpace(strings.TrimPrefix(req, ">"))) > 0
	default:
		return version == req
	}
}

// caretCompatible implements the "^" requirement: same major version and
// no older than the base.
func caretCompatible(version, base string) bool {
	if versionComponent(version, 0) != versionComponent(base, 0) {
		return false
	}
	return compareVersions(version, base) >= 0
}

// compareVersions compares dot-separated numeric versions. Missing and
// non-numeric components count as zero, so "1.2" equals "1.2.0" and
// "1.2.x" equals "1.2".
func compareVersions(a, b string) int {
	partsA := strings.Split(a, ".")
	partsB := strings.Split(b, ".")

	n := len(partsA)
	if len(partsB) > n {
		n = len(partsB)
	}

	for i := 0; i < n; i++ {
		numA := numericPart(partsA, i)
		numB := numericPart(partsB, i)
		if numA != numB {
			if numA < numB {
				return -1
			}
			return 1
		}
	}
	return 0
}

func versionComponent(version string, i int) int {
	return numericPart(strings.Split(version, "."), i)
}

func numericPart(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}
