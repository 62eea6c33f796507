package architect

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/scaffoldly/serverless-angular/internal/workspace"
)

// Identifies one build-target execution to schedule.
type Target struct {
	Project       string // Name of the project owning the target.
	Target        string // Target name (e.g., "build").
	Configuration string // Named configuration overlay (e.g., "production"). Optional.
}

// Returns the "project:target[:configuration]" form used by the CLI.
func (t Target) String() string {
	s := t.Project + ":" + t.Target
	if t.Configuration != "" {
		s += ":" + t.Configuration
	}
	return s
}

// Controls how a scheduled target runs.
type Options struct {
	OutputPath string // Directory the builder writes artifacts into.
	Watch      bool   // Re-run the target on source changes.
	Progress   bool   // Show builder progress output.
}

// Outcome of one build-target execution.
type Result struct {
	Success bool   // Whether the builder reported success.
	Error   string // Builder error message when Success is false.
}

// Schedules build targets and returns run handles.
//
// [Host] is the production implementation; tests substitute fakes.
type Scheduler interface {
	Schedule(ctx context.Context, target Target, opts Options) (Run, error)
}

// An opaque handle for one scheduled build-target execution.
//
// One-shot runs deliver exactly one final result, available through Wait or
// as a single element on Results. Watch runs deliver a stream of incremental
// results on Results for as long as the scheduling context lives; Wait is
// not meaningful for them.
type Run interface {

	// Returns the unique identifier of this run.
	ID() string

	// Blocks until the final result is available or the context is done.
	Wait(ctx context.Context) (Result, error)

	// Returns the stream of results. The channel is closed when the run
	// ends or its context is cancelled.
	Results() <-chan Result
}

// A workspace-aware execution host for the Angular toolchain.
type Host struct {
	ws   *workspace.Workspace // Parsed workspace configuration.
	root string               // Service root, for resolving the CLI binary and sources.
	sink Sink                 // Receives builder log entries.
}

// Creates an execution host from a workspace configuration file.
//
// The file is read and parsed immediately; failure to do so is fatal and
// propagates unchanged. The sink receives all builder output produced by
// runs scheduled on this host.
func NewHost(configPath, root string, sink Sink) (*Host, error) {
	ws, err := workspace.Load(configPath)
	if err != nil {
		return nil, err
	}

	return &Host{
		ws:   ws,
		root: root,
		sink: sink,
	}, nil
}

// Schedules one execution of a build target.
//
// The project and target are validated against the workspace before
// anything is spawned, so a typo surfaces here rather than as an opaque
// failure inside the toolchain. The returned handle is live: one-shot runs
// are already executing, and watch runs are already subscribed to source
// changes. The run ends when the context is cancelled.
func (h *Host) Schedule(ctx context.Context, target Target, opts Options) (Run, error) {
	project, err := h.ws.Project(target.Project)
	if err != nil {
		return nil, err
	}
	if _, err := h.ws.Target(target.Project, target.Target); err != nil {
		return nil, err
	}

	id := uuid.NewString()

	slog.Debug("scheduling target",
		"run", id,
		"target", target.String(),
		"output", opts.OutputPath,
		"watch", opts.Watch,
	)

	if opts.Watch {
		return h.newWatchRun(ctx, id, target, opts, project.SourceDir(h.root))
	}

	return h.newExecRun(ctx, id, target, opts), nil
}

// Returns the path to the Angular CLI binary installed in the service's
// dependency directory.
func (h *Host) binary() string {
	return filepath.Join(h.root, "node_modules", ".bin", "ng")
}

// Returns the CLI arguments for one execution of the target.
func (h *Host) arguments(target Target, opts Options) []string {
	args := []string{"run", target.String()}
	if opts.OutputPath != "" {
		args = append(args, "--output-path", opts.OutputPath)
	}
	if !opts.Progress {
		args = append(args, "--progress=false")
	}
	return args
}

// Emits an entry to the sink, tolerating a nil sink.
func (h *Host) emit(level Level, format string, a ...any) {
	if h.sink == nil {
		return
	}
	h.sink.Emit(Entry{Level: level, Message: fmt.Sprintf(format, a...)})
}
