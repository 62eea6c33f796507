package cli

import (
	"context"
	"fmt"

	"github.com/scaffoldly/serverless-angular/internal/buildsys"
)

// Represents the 'serverless-angular detect' command.
type DetectCmd struct{}

// Resolves and prints the build system and artifact destination without
// building anything.
func (c *DetectCmd) Run(ctx context.Context) error {
	_, svc, err := loadPlugin()
	if err != nil {
		return err
	}

	sys, err := buildsys.Detect(svc.Angular(), svc.NodeModules())
	if err != nil {
		return err
	}

	strategy, err := buildsys.For(sys, nil)
	if err != nil {
		return err
	}

	output, err := strategy.ResolveOutputPath(svc)
	if err != nil {
		return err
	}

	fmt.Printf("build system: %s\n", sys)
	fmt.Printf("output path:  %s\n", output)

	if err := buildsys.VerifyDependencies(sys, svc.NodeModules()); err != nil {
		return err
	}

	return nil
}
