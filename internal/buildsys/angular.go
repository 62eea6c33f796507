package buildsys

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/scaffoldly/serverless-angular/internal/architect"
	"github.com/scaffoldly/serverless-angular/internal/service"
)

// Name of the build target scheduled for every service.
const buildTarget = "build"

// Drives the Angular build system.
//
// Artifacts are written where the companion bundler packages from: the
// bundler's working and build folders under the service root, plus the
// plugin's own output subfolder. The build itself is delegated to an
// execution host constructed from the service's workspace file.
type Angular struct {

	// Receives the delegated builder's log entries.
	Sink architect.Sink

	// Overrides execution-host construction. When nil, a host is built
	// from the service's workspace configuration file at scheduling time.
	// Tests substitute a fake scheduler here.
	Scheduler architect.Scheduler
}

// Returns the identifier of the Angular build system.
func (a *Angular) System() System {
	return SystemAngular
}

// Computes the absolute artifact destination for the service.
//
// The plugin has a hard dependency on the companion bundler's conventions:
// when its configuration block is absent entirely there is no fallback
// destination and resolution fails.
func (a *Angular) ResolveOutputPath(svc *service.Service) (string, error) {
	webpack, ok := svc.Webpack()
	if !ok {
		return "", fmt.Errorf("%w: the serverless-webpack configuration block is required", ErrUnknownDestination)
	}

	return filepath.Join(
		svc.Path,
		webpack.WorkFolder(),
		webpack.BuildFolder(),
		svc.Angular().OutputFolder(),
	), nil
}

// Schedules one execution of the service's build target.
//
// The workspace configuration file is read at this point; failure to read
// or parse it propagates unchanged. The returned run is owned by the
// caller for the duration of one build invocation.
func (a *Angular) Schedule(ctx context.Context, svc *service.Service, opts ScheduleOptions) (architect.Run, error) {
	output, err := a.ResolveOutputPath(svc)
	if err != nil {
		return nil, err
	}

	cfg := svc.Angular()

	scheduler := a.Scheduler
	if scheduler == nil {
		host, err := architect.NewHost(filepath.Join(svc.Path, cfg.WorkspaceFile()), svc.Path, a.Sink)
		if err != nil {
			return nil, err
		}
		scheduler = host
	}

	return scheduler.Schedule(ctx, architect.Target{
		Project:       cfg.Project,
		Target:        buildTarget,
		Configuration: opts.Configuration,
	}, architect.Options{
		OutputPath: output,
		Watch:      opts.Watch,
	})
}
