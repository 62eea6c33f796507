package architect

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Quiet period after the last source change before a rebuild starts.
// Editors often emit several events per save.
const watchDebounce = 400 * time.Millisecond

// A continuous run of a build target.
//
// The target is rebuilt whenever a source file changes, and each rebuild
// delivers one incremental result on the stream. The run has no natural end;
// it stops when the scheduling context is cancelled, at which point the
// stream is closed.
type watchRun struct {
	id      string
	results chan Result
}

// Starts a watch run of the target rooted at the given source directory.
//
// An initial build runs immediately so the stream always opens with a
// result. The handle is returned once the filesystem subscription is
// established; the caller is not expected to wait for watching to end.
func (h *Host) newWatchRun(ctx context.Context, id string, target Target, opts Options, sourceDir string) (*watchRun, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatch, err)
	}

	if err := watchRecursive(watcher, sourceDir); err != nil {
		watcher.Close()
		return nil, err
	}

	r := &watchRun{
		id:      id,
		results: make(chan Result, 1),
	}

	go h.watchLoop(ctx, r, watcher, target, opts)

	slog.Debug("watching for source changes", "run", id, "dir", sourceDir)

	return r, nil
}

// Returns the unique identifier of this run.
func (r *watchRun) ID() string {
	return r.id
}

// Watch runs have no final result; Wait blocks until the context is done.
func (r *watchRun) Wait(ctx context.Context) (Result, error) {
	<-ctx.Done()
	return Result{}, ctx.Err()
}

// Returns the stream of incremental results.
func (r *watchRun) Results() <-chan Result {
	return r.results
}

// Rebuilds the target on debounced source changes until the context is
// cancelled.
//
// One-shot execution semantics apply to each increment: a failed rebuild
// produces a failed result on the stream and watching continues. Newly
// created directories are added to the subscription so files in them
// trigger rebuilds too.
func (h *Host) watchLoop(ctx context.Context, r *watchRun, watcher *fsnotify.Watcher, target Target, opts Options) {
	defer watcher.Close()
	defer close(r.results)

	// Rebuilds never watch themselves; the builder handles one pass.
	once := opts
	once.Watch = false

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	if !r.deliver(ctx, h.execute(ctx, target, once)) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevantEvent(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					watcher.Add(event.Name)
				}
			}
			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", "run", r.id, "error", err)

		case <-debounce.C:
			slog.Debug("source change detected, rebuilding", "run", r.id)
			if !r.deliver(ctx, h.execute(ctx, target, once)) {
				return
			}
		}
	}
}

// Sends a result on the stream unless the context ends first. Returns false
// when the loop should stop.
func (r *watchRun) deliver(ctx context.Context, result Result) bool {
	select {
	case r.results <- result:
		return true
	case <-ctx.Done():
		return false
	}
}

// Whether a filesystem event should trigger a rebuild.
func relevantEvent(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return true
}

// Subscribes to a directory and all of its subdirectories.
//
// Hidden directories and dependency installations are skipped; watching
// node_modules would trigger rebuild storms during installs.
func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
			return fs.SkipDir
		}

		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWatch, root, err)
	}
	return nil
}
