package build

import (
	"errors"
	"time"
)

// Option defines a functional option for configuring a Builder.
type Option func(*Builder) error

// WithLogger sets the progress logger.
//
// Debug level: per-asset copies, reused outputs, stale-file removal
// Info level: per-page and per-listing progress, build summary
// Warn level: skipped pages, unreadable manifests, stale-removal failures.
func WithLogger(logger Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}

		b.logger = logger

		return nil
	}
}

// WithClock replaces the time source used for page timestamps and build
// duration. Tests use it to pin output.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) error {
		if now == nil {
			return errors.New("clock must not be nil")
		}

		b.now = now

		return nil
	}
}

// WithIncremental keeps the output directory in place and reuses outputs
// recorded in the previous build manifest whose sources are unchanged.
// Without it every build starts from a cleaned output directory.
func WithIncremental() Option {
	return func(b *Builder) error {
		b.incremental = true

		return nil
	}
}

// WithLinkCheck resolves the link destinations collected while rendering
// and reports broken ones as warnings on the build result.
func WithLinkCheck() Option {
	return func(b *Builder) error {
		b.checkLinks = true

		return nil
	}
}
