package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/scaffoldly/serverless-angular/internal"
	"github.com/scaffoldly/serverless-angular/internal/logbridge"
	"github.com/scaffoldly/serverless-angular/internal/plugin"
	"github.com/scaffoldly/serverless-angular/internal/service"
)

// Represents the root command for the plugin.
var RootCmd struct {
	Quiet   bool   `short:"q" help:"Suppress informational output."`
	Verbose bool   `short:"v" help:"Enable verbose output."`
	Debug   bool   `short:"d" help:"Enable debug output."`
	Config  string `short:"c" help:"Path to the service configuration file." default:"serverless.yml" placeholder:"PATH"`

	Offline OfflineCmd `cmd:"" help:"Build before local emulation starts, watching when the reload handler is enabled."`
	Package PackageCmd `cmd:"" help:"Build before deployment artifacts are packaged."`
	Hook    HookCmd    `cmd:"" help:"Run a host lifecycle hook by name."`
	Detect  DetectCmd  `cmd:"" help:"Show the resolved build system and artifact destination."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds an Angular application into the bundle the serverless packager deploys."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	level := slog.LevelInfo
	if debug || verbose {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).WithGroup(internal.Name))
}

// Loads the service and constructs the plugin over the host logging surface.
func loadPlugin() (*plugin.Plugin, *service.Service, error) {
	svc, err := service.Load(RootCmd.Config)
	if err != nil {
		return nil, nil, err
	}

	p := plugin.New(svc, plugin.Options{
		Logger: logbridge.Slog(slog.Default()),
	})

	return p, svc, nil
}
