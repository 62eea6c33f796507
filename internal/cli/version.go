package cli

import (
	"context"
	"fmt"

	"github.com/scaffoldly/serverless-angular/internal"
)

// Represents the 'serverless-angular version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
