package buildsys

import (
	"context"
	"fmt"

	"github.com/scaffoldly/serverless-angular/internal/architect"
	"github.com/scaffoldly/serverless-angular/internal/service"
)

// Controls how a strategy schedules a build.
type ScheduleOptions struct {
	Configuration string // Named configuration overlay (e.g., "production").
	Watch         bool   // Keep the build running and rebuild on source changes.
}

// Capabilities of one supported build system.
//
// A strategy is stateless with respect to individual builds; the same value
// serves every hook invocation within a process.
type Strategy interface {

	// Returns the identifier of the build system this strategy drives.
	System() System

	// Computes the absolute directory the delegated builder must write
	// its artifacts into for the given service.
	ResolveOutputPath(svc *service.Service) (string, error)

	// Schedules one execution of the service's build target and returns
	// the run handle. The handle is live when this returns.
	Schedule(ctx context.Context, svc *service.Service, opts ScheduleOptions) (architect.Run, error)
}

// Returns the strategy for the given build system.
//
// The sink receives the delegated builder's log entries. Extending the
// plugin to another build system starts here.
func For(sys System, sink architect.Sink) (Strategy, error) {
	switch sys {
	case SystemAngular:
		return &Angular{Sink: sink}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, sys)
	}
}
