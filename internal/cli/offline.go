package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/scaffoldly/serverless-angular/internal/paths"
	"github.com/scaffoldly/serverless-angular/internal/plugin"
)

// Represents the 'serverless-angular offline' command.
type OfflineCmd struct{}

// Executes the pre-emulation hook.
//
// With the reload handler enabled, the hook returns once the watch
// subscription is established; the command then records its PID and blocks
// until the context is cancelled (e.g. via SIGINT or SIGTERM) so the watch
// session stays alive.
func (c *OfflineCmd) Run(ctx context.Context) error {
	p, svc, err := loadPlugin()
	if err != nil {
		return err
	}

	if err := p.Run(ctx, plugin.HookBeforeOfflineStart); err != nil {
		return err
	}

	if !svc.Angular().ReloadHandler {
		return nil
	}

	if err := writeWatchPID(); err != nil {
		slog.Warn("failed to write PID file", "error", err)
	}

	slog.Info("watching for source changes")

	<-ctx.Done()

	slog.Info("shutting down")
	os.Remove(paths.WatchPIDFile())
	return nil
}

// Writes the watch session PID so stray watchers are discoverable.
func writeWatchPID() error {
	if err := os.MkdirAll(paths.Runtime(), paths.DefaultDirMode); err != nil {
		return err
	}
	return os.WriteFile(paths.WatchPIDFile(), []byte(fmt.Sprintf("%d", os.Getpid())), paths.DefaultFileMode)
}
