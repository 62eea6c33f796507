// Package architect schedules build targets against the Angular toolchain.
//
// A [Host] is a workspace-aware execution host constructed from a workspace
// configuration file. Scheduling a target validates that the project and
// target exist, then delegates the actual compilation to the Angular CLI
// installed in the service's node_modules. The plugin never compiles
// anything itself; it only owns the run handle for the duration of one
// invocation.
//
// A scheduled run produces either a single final [Result] (one-shot mode)
// or a stream of incremental results (watch mode, re-triggered on source
// changes). Builder output is translated line by line into leveled
// [Entry] values and emitted synchronously through the [Sink] supplied at
// construction.
//
// Example usage:
//
//	host, err := architect.NewHost("angular.json", ".", sink)
//	if err != nil {
//	    return err
//	}
//
//	run, err := host.Schedule(ctx, architect.Target{
//	    Project:       "app",
//	    Target:        "build",
//	    Configuration: "production",
//	}, architect.Options{OutputPath: "dist"})
//	if err != nil {
//	    return err
//	}
//
//	result, err := run.Wait(ctx)
//	if err != nil {
//	    return err
//	}
package architect
