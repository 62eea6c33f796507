package cli

import (
	"context"

	"github.com/scaffoldly/serverless-angular/internal/plugin"
)

// Represents the 'serverless-angular hook' command.
type HookCmd struct {
	Name string `arg:"" help:"Host lifecycle hook name (e.g., before:package:createDeploymentArtifacts)."`
}

// Runs the named lifecycle hook.
//
// The pre-emulation hook is dispatched through the offline command so a
// watch session outlives the hook call instead of dying with the process.
func (c *HookCmd) Run(ctx context.Context) error {
	if c.Name == plugin.HookBeforeOfflineStart {
		offline := OfflineCmd{}
		return offline.Run(ctx)
	}

	p, _, err := loadPlugin()
	if err != nil {
		return err
	}
	return p.Run(ctx, c.Name)
}
