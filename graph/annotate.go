/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package graph

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/whence/classify"
)

// Annotate classifies every dependency edge of result in place. Alias tags
// go in front of the edge's existing dependency types; stale alias tags are
// dropped and duplicates removed. Modules are processed in parallel, at most
// concurrency at a time (unbounded when concurrency <= 0). Module and edge
// order is unchanged.
func Annotate(ctx context.Context, result *Result, c *classify.Classifier, concurrency int) error {
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i := range result.Modules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			annotateModule(&result.Modules[i], c)
			return nil
		})
	}
	return g.Wait()
}

// annotateModule only writes to m's own edges.
func annotateModule(m *Module, c *classify.Classifier) {
	for j := range m.Dependencies {
		dep := &m.Dependencies[j]
		var tags []string
		if !dep.CoreModule {
			tags = c.Classify(dep.Module, dep.Resolved)
		}
		dep.DependencyTypes = mergeTypes(tags, dep.DependencyTypes)
	}
}

func mergeTypes(aliasTags, existing []string) []string {
	merged := make([]string, 0, len(aliasTags)+len(existing))
	merged = append(merged, aliasTags...)
	for _, t := range existing {
		if classify.IsAliasTag(t) || slices.Contains(merged, t) {
			continue
		}
		merged = append(merged, t)
	}
	return merged
}

// Aliased returns the number of edges carrying an alias tag.
func (r *Result) Aliased() int {
	n := 0
	for _, m := range r.Modules {
		for _, d := range m.Dependencies {
			if slices.ContainsFunc(d.DependencyTypes, classify.IsAliasTag) {
				n++
			}
		}
	}
	return n
}
