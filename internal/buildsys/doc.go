// Package buildsys selects and drives the underlying build system.
//
// Which build system a service uses is either named explicitly in the
// plugin configuration or detected by probing the service's dependency
// installation directory for marker packages. Detection is a read-only
// existence check; nothing on disk is modified.
//
// Each supported build system is a [Strategy]: it knows where its artifacts
// must land and how to schedule a build target. Angular is the only variant
// implemented today; adding another build system means implementing
// Strategy for it and extending [For] and [Detect] with its identifier and
// markers.
//
// Example usage:
//
//	sys, err := buildsys.Detect(cfg, svc.NodeModules())
//	if err != nil {
//	    return err
//	}
//
//	strategy, err := buildsys.For(sys, sink)
//	if err != nil {
//	    return err
//	}
//
//	out, err := strategy.ResolveOutputPath(svc)
package buildsys
