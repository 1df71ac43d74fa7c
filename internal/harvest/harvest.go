// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest drives a full catalog run: list package identifiers,
// fetch each package, map it, and collect the Dataset records in source
// order. Individual fetch failures are logged and skipped; only a failed
// identifier listing aborts the run.
package harvest

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/dataset-bridge/internal/ckan"
	"github.com/pdiddy/dataset-bridge/internal/mapper"
	"github.com/pdiddy/dataset-bridge/pkg/types"
)

// Result holds the outcome of a harvest run.
type Result struct {
	// Datasets are the mapped records, ordered as the catalog listed them.
	Datasets []types.Dataset

	// Harvested counts packages successfully fetched and mapped.
	Harvested int

	// Failed counts packages whose fetch failed and were skipped.
	Failed int

	// Failures lists the identifiers that failed, in encounter order.
	Failures []string
}

// Total returns the number of identifiers processed.
func (r Result) Total() int {
	return r.Harvested + r.Failed
}

// HasFailures reports whether any package fetch failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Run harvests the whole catalog behind client. Fetching is sequential with
// an optional delay between requests; a failed package is logged and skipped
// so one broken record cannot abort the batch.
func Run(ctx context.Context, client *ckan.Client, cfg types.HarvestConfig, log logrus.FieldLogger) (Result, error) {
	log.WithField("catalog", client.BaseURL()).Info("fetching package list")

	ids, err := client.PackageList(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetching package list: %w", err)
	}
	if len(ids) == 0 {
		log.Warn("catalog returned no packages")
		return Result{}, nil
	}
	if cfg.Limit > 0 && len(ids) > cfg.Limit {
		log.WithField("limit", cfg.Limit).Info("limiting run")
		ids = ids[:cfg.Limit]
	}

	var result Result
	for i, id := range ids {
		if i > 0 && cfg.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(cfg.RequestDelay):
			}
		}

		log.WithField("package", id).Debug("fetching package")
		pkg, err := client.PackageShow(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			log.WithField("package", id).WithError(err).Warn("fetch failed, skipping")
			result.Failed++
			result.Failures = append(result.Failures, id)
			continue
		}

		result.Datasets = append(result.Datasets, mapper.MapPackage(pkg, client.BaseURL()))
		result.Harvested++
	}

	log.WithFields(logrus.Fields{
		"harvested": result.Harvested,
		"failed":    result.Failed,
	}).Info("harvest complete")

	return result, nil
}
