package plugin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/scaffoldly/serverless-angular/internal/architect"
	"github.com/scaffoldly/serverless-angular/internal/buildsys"
	"github.com/scaffoldly/serverless-angular/internal/workspace"
)

// Named workspace configurations used per hook.
const (
	ConfigurationProduction  = "production"
	ConfigurationDevelopment = "development"
)

// Produces one production build of the application.
//
// The call suspends until the delegated builder reports completion. A
// failed build is fatal: the delegated error message is printed through
// the bridge's error channel and returned.
func (p *Plugin) Build(ctx context.Context) error {
	return p.build(ctx, ConfigurationProduction)
}

// Produces one build with the given configuration name.
func (p *Plugin) build(ctx context.Context, configuration string) error {
	run, err := p.schedule(ctx, configuration, false)
	if err != nil {
		p.bridge.Error("%v", err)
		return err
	}

	result, err := run.Wait(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrBuild, err)
		p.bridge.Error("%v", err)
		return err
	}

	if !result.Success {
		err := fmt.Errorf("%w: %s", ErrBuild, result.Error)
		p.bridge.Error("%v", err)
		return err
	}

	slog.Debug("build succeeded", "run", run.ID(), "configuration", configuration)
	return nil
}

// Starts a development build that rebuilds on source changes.
//
// The hook's part is done once the subscription is established: the method
// returns and incremental results are consumed in the background for the
// lifetime of the context. Failed increments are warnings, not errors; a
// compile error mid-edit must not terminate the watch session.
func (p *Plugin) Watch(ctx context.Context) error {
	run, err := p.schedule(ctx, ConfigurationDevelopment, true)
	if err != nil {
		p.bridge.Error("%v", err)
		return err
	}

	go p.consume(run)

	return nil
}

// Validates preconditions, resolves the build system, and schedules the
// build target.
//
// No scheduling call is made unless a project is configured. Errors are
// classified here: configuration and workspace problems keep their
// identity, everything else from the scheduler is a build error.
func (p *Plugin) schedule(ctx context.Context, configuration string, watch bool) (architect.Run, error) {
	if p.svc.Angular().Project == "" {
		return nil, fmt.Errorf("%w: project is required", ErrConfiguration)
	}

	strategy, err := p.resolveStrategy()
	if err != nil {
		return nil, err
	}

	run, err := strategy.Schedule(ctx, p.svc, buildsys.ScheduleOptions{
		Configuration: configuration,
		Watch:         watch,
	})
	if err != nil {
		return nil, classify(err)
	}

	return run, nil
}

// Resolves the build-system strategy for the service, once.
//
// Detection and the dependency check both surface as configuration errors;
// neither has a retry path.
func (p *Plugin) resolveStrategy() (buildsys.Strategy, error) {
	if p.strategy != nil {
		return p.strategy, nil
	}

	cfg := p.svc.Angular()

	sys, err := buildsys.Detect(cfg, p.svc.NodeModules())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	if err := buildsys.VerifyDependencies(sys, p.svc.NodeModules()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	strategy, err := buildsys.For(sys, p.bridge)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	slog.Debug("build system resolved", "system", sys)

	p.strategy = strategy
	return strategy, nil
}

// Consumes incremental results from a watch run until its stream closes.
//
// Each failed increment is reported as exactly one warning; successful
// increments produce no output.
func (p *Plugin) consume(run architect.Run) {
	for result := range run.Results() {
		if !result.Success {
			p.bridge.Warning("build failed: %s", result.Error)
		}
	}
}

// Maps a scheduling error onto the plugin's error taxonomy.
//
// Workspace read failures propagate unchanged. Destination and
// project/target resolution problems are configuration errors. Anything
// else is a build error.
func classify(err error) error {
	switch {
	case errors.Is(err, workspace.ErrRead):
		return err
	case errors.Is(err, buildsys.ErrUnknownDestination),
		errors.Is(err, workspace.ErrProjectNotFound),
		errors.Is(err, workspace.ErrTargetNotFound):
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	default:
		return fmt.Errorf("%w: %w", ErrBuild, err)
	}
}
