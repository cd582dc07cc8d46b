package dial

import "github.com/sirupsen/logrus"

// options holds Dial's construction-time configuration.
type options struct {
	logger *logrus.Logger
}

// Option configures a Dial at construction time.
type Option func(*options)

// WithLogger attaches a logrus.Logger that receives Debug-level
// tracing of source additions, vertex visits, and bucket-ring
// cycling. Passing a nil logger is equivalent to omitting the option.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
