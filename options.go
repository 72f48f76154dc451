package lambda

// Option configures a Reducer.
type Option interface{ apply(cfg *config) }

type config struct {
	logfn    func(mess string, args ...interface{})
	maxSteps int
	delta    bool
	rename   interface{}
}

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(cfg *config) {
	for _, opt := range opts {
		opt.apply(cfg)
	}
}

// WithLogf sets a printf-style function to trace each reduction step.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithMaxSteps limits Reducer.Normalize to n steps; n <= 0 means no limit.
func WithMaxSteps(n int) Option { return maxStepsOption(n) }

// WithDelta enables reduction of constant applications by Value.Combine.
func WithDelta(enabled bool) Option { return deltaOption(enabled) }

// WithRenamer sets the Renamer used to avoid variable capture. It is ignored by
// a Reducer whose symbol type differs from S.
func WithRenamer[S comparable](rename Renamer[S]) Option { return renameOption[S](rename) }

type withLogfn func(mess string, args ...interface{})
type maxStepsOption int
type deltaOption bool
type renameOption[S comparable] Renamer[S]

func (logfn withLogfn) apply(cfg *config)    { cfg.logfn = logfn }
func (n maxStepsOption) apply(cfg *config)   { cfg.maxSteps = max(int(n), 0) }
func (d deltaOption) apply(cfg *config)      { cfg.delta = bool(d) }
func (fn renameOption[S]) apply(cfg *config) { cfg.rename = Renamer[S](fn) }
