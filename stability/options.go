package stability

import "log/slog"

// DefaultValidation controls whether Check validates its inputs before any
// computation begins. Validation is O(n²) against the exponential search
// that follows, so it stays on unless explicitly disabled.
const DefaultValidation = true

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	log      *slog.Logger
	validate bool
}

// WithLogger routes diagnostics through l: the blocking-coalition report
// and any rejected subset index. A nil logger (the default) keeps the
// checker silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.log = l }
}

// WithoutValidation skips input validation. Use only when the caller has
// already established the preconditions: a square win matrix and tiers
// that exactly partition {0..n-1}. With validation off, violated
// preconditions are undefined behavior, not reported errors.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
}

// gatherOptions applies user setters on top of documented defaults;
// last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		log:      nil,
		validate: DefaultValidation,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
