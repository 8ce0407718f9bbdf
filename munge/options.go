package munge

import "log"

// WarnFunc receives advisory diagnostics. Warnings never stop processing.
type WarnFunc func(format string, args ...any)

// ProgressFunc is invoked after each completed outer-index plane with the
// number of planes done and the total. It has no effect on the result.
type ProgressFunc func(done, total int)

type config struct {
	warn     WarnFunc
	progress ProgressFunc
	kernel   Kernel

	bins    int
	rule    BinRule
	histMin float64
	histMax float64
	ranged  bool
	poisson bool
}

func defaultConfig() config {
	return config{
		warn:   log.Printf,
		kernel: KernelTophat,
		bins:   30,
		rule:   BinFixed,
	}
}

func (c config) applied(opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// Option configures a munge operation.
type Option func(*config)

// WithWarnFunc routes advisory diagnostics to fn instead of the standard
// logger. Passing nil keeps the current sink.
func WithWarnFunc(fn WarnFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.warn = fn
		}
	}
}

// WithProgress installs a progress callback for long-running grid loops.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithKernel selects the spectral smoothing kernel used by Smooth.
func WithKernel(k Kernel) Option {
	return func(c *config) {
		c.kernel = k
	}
}

// WithBins sets the histogram bin count for the fixed-count binning rule.
func WithBins(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bins = n
		}
	}
}

// WithBinRule selects how MassFunction chooses its histogram bins.
func WithBinRule(r BinRule) Option {
	return func(c *config) {
		c.rule = r
	}
}

// WithRange restricts MassFunction to samples in [lo, hi].
func WithRange(lo, hi float64) Option {
	return func(c *config) {
		if lo < hi {
			c.histMin, c.histMax = lo, hi
			c.ranged = true
		}
	}
}

// WithPoissonUncert adds Poisson uncertainties to the MassFunction output.
func WithPoissonUncert() Option {
	return func(c *config) {
		c.poisson = true
	}
}
