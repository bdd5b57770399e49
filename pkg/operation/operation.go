package operation

import (
	"context"

	"github.com/walteh/localizerc/pkg/config"
	"github.com/walteh/localizerc/pkg/inline"
	"github.com/walteh/localizerc/pkg/status"
	"github.com/walteh/localizerc/pkg/translate"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operator defines the main interface for localizerc operations
type Operator interface {
	// Inline runs the full pipeline: classify, consume, transform,
	// reconcile. The bool is the verdict: true iff no fatal error occurred
	// and no error-severity diagnostic was emitted.
	Inline(ctx context.Context) (bool, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the localizerc configuration
	Config *config.Config
	// Reporter narrates progress and diagnostics
	Reporter *status.Reporter
	// Targets are the locale targets to produce, usually from
	// config.ResolveTargets
	Targets []translate.Target
	// Engine overrides the default translation engine
	Engine inline.Engine
	// Workers caps concurrent transforms, defaulting to Config.Concurrency
	Workers int
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if len(opts.Targets) == 0 {
		return nil, errors.Errorf("at least one locale target is required")
	}

	engine := opts.Engine
	if engine == nil {
		policy, err := translate.ParsePolicy(opts.Config.MissingTranslation)
		if err != nil {
			return nil, errors.Errorf("parsing missing-translation policy: %w", err)
		}
		engine, err = translate.New(translate.Options{
			Targets:            opts.Targets,
			LegacyMarkers:      opts.Config.LegacyMarkers,
			MissingTranslation: policy,
		})
		if err != nil {
			return nil, errors.Errorf("building translation engine: %w", err)
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = opts.Config.Concurrency
	}
	if workers < 1 {
		workers = 1
	}

	return &operator{
		config:   opts.Config,
		reporter: opts.Reporter,
		targets:  opts.Targets,
		engine:   engine,
		workers:  workers,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config   *config.Config
	reporter *status.Reporter
	targets  []translate.Target
	engine   inline.Engine
	workers  int
}

// Inline method is implemented in inline.go
