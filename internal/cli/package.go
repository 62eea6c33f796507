package cli

import (
	"context"

	"github.com/scaffoldly/serverless-angular/internal/plugin"
)

// Represents the 'serverless-angular package' command.
type PackageCmd struct{}

// Executes the pre-packaging hook: one production build, awaited to
// completion.
func (c *PackageCmd) Run(ctx context.Context) error {
	p, _, err := loadPlugin()
	if err != nil {
		return err
	}
	return p.Run(ctx, plugin.HookBeforePackage)
}
