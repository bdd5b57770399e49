package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/localizerc/pkg/artifact"
	"github.com/walteh/localizerc/pkg/inline"
	"gitlab.com/tozd/go/errors"
)

// Inline implements Operator.Inline
func (o *operator) Inline(ctx context.Context) (bool, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("staging", o.config.StagingDir).Msg("starting locale inlining")

	// Load the build manifest
	manifest, err := artifact.LoadManifest(ctx, o.config.Manifest)
	if err != nil {
		return false, errors.Errorf("loading manifest: %w", err)
	}

	// Classify artifacts into transform candidates
	scripts := artifact.Classify(manifest.Artifacts, o.config.ExcludeEntries)
	logger.Debug().
		Int("artifacts", len(manifest.Artifacts)).
		Int("scripts", len(scripts)).
		Msg("classified artifacts")

	consumer, err := artifact.NewConsumer(o.config.StagingDir)
	if err != nil {
		return false, errors.Errorf("creating consumer: %w", err)
	}

	pool, err := inline.NewPool(o.engine, o.workers)
	if err != nil {
		return false, errors.Errorf("creating transform pool: %w", err)
	}
	defer pool.Release()

	o.reporter.StartOperation(ctx, len(scripts))

	// Consume every candidate before any transform runs, so no copy can
	// race a delete later
	requests := make([]inline.Request, 0, len(scripts))
	for _, art := range scripts {
		req, err := consumer.Consume(ctx, art)
		if err != nil {
			o.reporter.FinishOperation(ctx, false)
			return false, errors.Errorf("consuming artifacts: %w", err)
		}
		req.OutputRoot = o.config.OutputDir
		requests = append(requests, req)
	}

	// Transform and report diagnostics as results arrive
	results := pool.SubmitAll(ctx, requests)
	success := o.aggregate(ctx, results)

	// Untouched staging files ship to every locale even when the verdict
	// is already false
	if err := o.reconcile(ctx, consumer.Consumed()); err != nil {
		o.reporter.FinishOperation(ctx, false)
		return false, errors.Errorf("reconciling untouched files: %w", err)
	}

	o.reporter.FinishOperation(ctx, success)
	return success, nil
}
