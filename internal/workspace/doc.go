// Package workspace reads the build system's workspace configuration file.
//
// A workspace describes one or more projects, each with named build targets.
// For the Angular build system this is the angular.json file at the service
// root. Only the fields the plugin needs are modeled: project roots and the
// target map. Both the modern "targets" spelling and the legacy "architect"
// spelling of the target map are accepted.
//
// Example usage:
//
//	ws, err := workspace.Load("angular.json")
//	if err != nil {
//	    return err
//	}
//
//	target, err := ws.Target("app", "build")
//	if err != nil {
//	    return err
//	}
package workspace
