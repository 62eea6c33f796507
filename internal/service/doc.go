// Package service models the host tool's service configuration.
//
// A service is described by a serverless.yml file. The plugin reads two
// blocks from the service's custom section: its own settings under
// custom.angular, and the companion bundler's settings under custom.webpack.
// The companion block is consumed read-only; it exists solely to compute
// where build artifacts must land so the bundler's packaging step finds
// them.
//
// Example usage:
//
//	svc, err := service.Load("serverless.yml")
//	if err != nil {
//	    return err
//	}
//
//	cfg := svc.Angular()
//	if cfg.Project == "" {
//	    return errors.New("project is required")
//	}
package service
