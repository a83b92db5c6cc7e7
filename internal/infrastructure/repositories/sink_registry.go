package repositories

import (
	"fmt"
	"io"
	"slices"

	domainRepos "github.com/rios0rios0/mvnupdate/internal/domain/repositories"
	"github.com/rios0rios0/mvnupdate/internal/infrastructure/repositories/sinks"
)

// SinkFactory creates a diagnostic sink writing to out.
type SinkFactory func(out io.Writer) domainRepos.DiagnosticSink

// SinkRegistry maps --output formats to diagnostic sinks.
type SinkRegistry struct {
	factories map[string]SinkFactory
}

// NewSinkRegistry creates an empty sink registry.
func NewSinkRegistry() *SinkRegistry {
	return &SinkRegistry{
		factories: make(map[string]SinkFactory),
	}
}

// NewDefaultSinkRegistry creates a registry holding every output format.
// The log format ignores out and reports through the logger.
func NewDefaultSinkRegistry() *SinkRegistry {
	reg := NewSinkRegistry()
	reg.Register(sinks.FormatText, func(out io.Writer) domainRepos.DiagnosticSink {
		return sinks.NewTextSink(out)
	})
	reg.Register(sinks.FormatJSON, func(out io.Writer) domainRepos.DiagnosticSink {
		return sinks.NewJSONSink(out)
	})
	reg.Register(sinks.FormatLog, func(io.Writer) domainRepos.DiagnosticSink {
		return sinks.NewLogSink()
	})
	return reg
}

// Register adds a sink factory under its format name.
func (r *SinkRegistry) Register(format string, factory SinkFactory) {
	r.factories[format] = factory
}

// Get returns a sink for the format writing to out.
func (r *SinkRegistry) Get(format string, out io.Writer) (domainRepos.DiagnosticSink, error) {
	factory, ok := r.factories[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q (known: %v)", format, r.Names())
	}
	return factory(out), nil
}

// Names returns the sorted list of registered formats.
func (r *SinkRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
