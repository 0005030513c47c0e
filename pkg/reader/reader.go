// Package reader implements the aggregation engine that fans out over all
// registered providers and merges their listings into one entity list.
package reader

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hongkongkiwi/alltheskills/pkg/logger"
	"github.com/hongkongkiwi/alltheskills/pkg/providers"
	"github.com/hongkongkiwi/alltheskills/pkg/types"
)

// maxInFlight bounds how many provider queries run simultaneously. Provider
// listings are directory-read bound, so a small bound overlaps I/O wait
// without piling up filesystem handles.
const maxInFlight = 10

// Reader aggregates skills across an ordered set of providers.
//
// Listing is best effort by design: a failing provider contributes zero
// entities and its error is logged and retained for inspection, but the
// aggregate call itself never fails. Partial availability of sources must
// never block the whole listing.
type Reader struct {
	providers []providers.Provider

	mu       sync.Mutex
	lastErrs error
}

// New creates an empty reader.
func New() *Reader {
	return &Reader{}
}

// NewWithProviders creates a reader pre-registered with the given providers
// in order.
func NewWithProviders(ps ...providers.Provider) *Reader {
	return &Reader{providers: ps}
}

// AddProvider registers a provider. Registration order determines merge
// order in ListAll.
func (r *Reader) AddProvider(p providers.Provider) {
	r.providers = append(r.providers, p)
}

// Providers returns the registered providers in registration order.
func (r *Reader) Providers() []providers.Provider {
	return r.providers
}

// ListAll queries every provider concurrently (at most maxInFlight at a
// time) and returns the merged listing. Results are collected per provider
// and concatenated in registration order, so output is deterministic for a
// fixed registry and filesystem state even though queries complete out of
// order.
//
// The returned error is always nil; per-provider failures are available via
// LastErrors until the next ListAll call.
func (r *Reader) ListAll(ctx context.Context) ([]types.Skill, error) {
	results := make([][]types.Skill, len(r.providers))

	var errMu sync.Mutex
	var errs *multierror.Error

	g := &errgroup.Group{}
	g.SetLimit(maxInFlight)

	for i, p := range r.providers {
		g.Go(func() error {
			config := types.SourceConfig{
				Name:       p.Name(),
				SourceType: p.SourceType(),
				Enabled:    true,
				Scope:      types.ScopeUser,
				Priority:   0,
			}

			skills, err := p.ListSkills(ctx, config)
			if err != nil {
				logger.G(ctx).WithError(err).
					WithField("provider", p.Name()).
					Warn("failed to list skills")
				errMu.Lock()
				errs = multierror.Append(errs, errors.Wrap(err, p.Name()))
				errMu.Unlock()
				return nil
			}

			results[i] = skills
			return nil
		})
	}

	_ = g.Wait()

	r.mu.Lock()
	r.lastErrs = errs.ErrorOrNil()
	r.mu.Unlock()

	var merged []types.Skill
	for _, skills := range results {
		merged = append(merged, skills...)
	}

	return merged, nil
}

// LastErrors returns the per-provider errors collected by the most recent
// ListAll, or nil when every provider succeeded. Callers that need to tell
// "empty" apart from "errored" check here.
func (r *Reader) LastErrors() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErrs
}

// Search returns the skills matching the predicate. It performs a full
// listing followed by a linear scan, which is appropriate for the
// tens-to-low-hundreds of skills typically installed.
func (r *Reader) Search(ctx context.Context, predicate func(types.Skill) bool) ([]types.Skill, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []types.Skill
	for _, skill := range all {
		if predicate(skill) {
			matched = append(matched, skill)
		}
	}
	return matched, nil
}
