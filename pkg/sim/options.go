package sim

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gottacatchenall/WorkshopGOL/pkg/sim"

// Option configures a Simulator.
type Option func(*options)

type options struct {
	workers int
	tracer  trace.Tracer
}

func defaultOptions() options {
	return options{workers: 1}
}

// WithWorkers sets how many goroutines evaluate the rows of one timestep.
// Values below one mean one.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithTracer overrides the tracer used for simulation spans. The global
// otel tracer provider is used otherwise.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	return o
}
