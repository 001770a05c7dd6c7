package graphqltemplate

import "github.com/go-kit/log"

type (
	Option func(*options)

	options struct {
		logger log.Logger
	}
)

func newOptions(opts []Option) *options {
	o := &options{}
	for _, optionFunc := range opts {
		optionFunc(o)
	}
	if o.logger == nil {
		o.logger = log.NewNopLogger()
	}
	return o
}

// WithLogger sets the logger a payload build is reported to.
//
//	Build(q, vars, WithLogger(log.NewLogfmtLogger(os.Stderr)))
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
