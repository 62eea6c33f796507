package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	pluginName = "serverless-angular"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for runtime files (PIDs, session state).
//
//	Linux:   $XDG_RUNTIME_DIR/serverless-angular or /run/user/<uid>/serverless-angular
//	macOS:   ~/Library/Caches/serverless-angular/run
func Runtime() string {
	if xdg.RuntimeDir != "" {
		return filepath.Join(xdg.RuntimeDir, pluginName)
	}
	return filepath.Join(xdg.CacheHome, pluginName, "run")
}

// Default path to the PID file written by a watch session.
//
//	Linux:   $XDG_RUNTIME_DIR/serverless-angular/watch.pid
//	macOS:   ~/Library/Caches/serverless-angular/run/watch.pid
func WatchPIDFile() string {
	return filepath.Join(Runtime(), "watch.pid")
}
