package plugin

import (
	"context"
	"fmt"

	"github.com/scaffoldly/serverless-angular/internal/buildsys"
	"github.com/scaffoldly/serverless-angular/internal/logbridge"
	"github.com/scaffoldly/serverless-angular/internal/service"
)

// Lifecycle hooks the plugin attaches to.
const (
	HookInitialize         = "initialize"
	HookBeforeOfflineStart = "before:offline:start"
	HookBeforePackage      = "before:package:createDeploymentArtifacts"
)

// One lifecycle hook implementation.
//
// The host awaits each hook to completion before proceeding to its next
// lifecycle phase; hooks are never invoked concurrently.
type Hook func(ctx context.Context) error

// Controls plugin construction.
type Options struct {

	// Host logging surface. Nil selects the console fallback.
	Logger logbridge.HostLogger

	// Overrides build-system resolution. When nil, the build system is
	// detected from configuration and the service's dependency directory
	// on first use. Tests substitute a strategy with a fake scheduler.
	Strategy buildsys.Strategy
}

// The build-orchestration adapter.
type Plugin struct {
	svc      *service.Service
	bridge   *logbridge.Bridge
	strategy buildsys.Strategy
}

// Creates a plugin for the given service.
func New(svc *service.Service, opts Options) *Plugin {
	return &Plugin{
		svc:      svc,
		bridge:   logbridge.New(opts.Logger),
		strategy: opts.Strategy,
	}
}

// Returns the lifecycle hooks the plugin attaches to, keyed by hook name.
func (p *Plugin) Hooks() map[string]Hook {
	return map[string]Hook{
		HookInitialize:         p.initialize,
		HookBeforeOfflineStart: p.beforeOfflineStart,
		HookBeforePackage:      p.beforePackage,
	}
}

// Runs the named lifecycle hook.
func (p *Plugin) Run(ctx context.Context, hook string) error {
	h, ok := p.Hooks()[hook]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHook, hook)
	}
	return h(ctx)
}

// The initialize hook does nothing; all work happens in the pre-offline
// and pre-packaging hooks.
func (p *Plugin) initialize(ctx context.Context) error {
	p.bridge.Verbose("initialized")
	return nil
}

// Builds the application before local emulation starts.
//
// With the reload handler enabled the build keeps watching for source
// changes and the hook returns as soon as the subscription is established,
// letting the host tool's startup proceed while compilation continues in
// the background.
func (p *Plugin) beforeOfflineStart(ctx context.Context) error {
	if p.svc.Angular().ReloadHandler {
		return p.Watch(ctx)
	}
	return p.build(ctx, ConfigurationDevelopment)
}

// Builds the application before deployment artifacts are packaged.
func (p *Plugin) beforePackage(ctx context.Context) error {
	return p.Build(ctx)
}
