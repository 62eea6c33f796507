package buildsys

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scaffoldly/serverless-angular/internal/service"
)

// Identifies a supported build system.
type System string

// The Angular build system, driven through the Angular CLI and devkit.
const SystemAngular System = "angular"

// Package whose presence marks a service as using the Angular build system.
const angularDetectionMarker = "@angular-devkit/build-angular"

// Packages the Angular build system cannot run without.
var angularRequiredPackages = []string{
	"@angular/compiler",
	"@angular/compiler-cli",
}

// Determines which build system the service uses.
//
// An explicit buildSystem setting wins and the filesystem is never
// consulted. Otherwise the dependency directory is probed for a detection
// marker. When neither yields a system, resolution fails.
func Detect(cfg service.Config, nodeModules string) (System, error) {
	if cfg.BuildSystem != "" {
		switch System(strings.ToLower(cfg.BuildSystem)) {
		case SystemAngular:
			return SystemAngular, nil
		default:
			return "", fmt.Errorf("%w: %q", ErrUnsupported, cfg.BuildSystem)
		}
	}

	if packageInstalled(nodeModules, angularDetectionMarker) {
		return SystemAngular, nil
	}

	return "", fmt.Errorf("%w: no marker packages found in %s and no buildSystem configured", ErrUndetected, nodeModules)
}

// Verifies that the packages the selected build system depends on are
// installed, naming every missing one.
func VerifyDependencies(sys System, nodeModules string) error {
	var required []string
	switch sys {
	case SystemAngular:
		required = angularRequiredPackages
	default:
		return fmt.Errorf("%w: %q", ErrUnsupported, sys)
	}

	var missing []string
	for _, pkg := range required {
		if !packageInstalled(nodeModules, pkg) {
			missing = append(missing, pkg)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingDependencies, strings.Join(missing, ", "))
	}

	return nil
}

// Whether a package directory exists under the dependency directory.
func packageInstalled(nodeModules, pkg string) bool {
	info, err := os.Stat(filepath.Join(nodeModules, filepath.FromSlash(pkg)))
	return err == nil && info.IsDir()
}
