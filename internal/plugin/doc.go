// Package plugin adapts the Angular builder to the serverless lifecycle.
//
// The plugin attaches to three host lifecycle hooks. Before local emulation
// starts it produces a development build, watching for source changes when
// the reload handler is enabled; before deployment packaging it produces a
// production build. In both cases the artifacts land where the companion
// bundler's packaging step expects them, so by the time the host tool
// packages or serves the service, the application bundle already exists.
//
// Compilation is delegated: the plugin resolves configuration, detects the
// build system, computes the artifact destination, and schedules a named
// build target, surfacing the delegated builder's output through the log
// bridge.
//
// Example usage:
//
//	p := plugin.New(svc, plugin.Options{Logger: logger})
//
//	if err := p.Run(ctx, plugin.HookBeforePackage); err != nil {
//	    return err
//	}
package plugin
