package architect

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Number of trailing error-level lines retained for the result message.
const errorTailLines = 5

// A one-shot run of a build target.
//
// The target executes in a background goroutine started at scheduling time.
// Exactly one final result is delivered, after which the channel is closed.
type execRun struct {
	id      string
	results chan Result
}

// Starts a one-shot run of the target.
func (h *Host) newExecRun(ctx context.Context, id string, target Target, opts Options) *execRun {
	r := &execRun{
		id:      id,
		results: make(chan Result, 1),
	}

	go func() {
		defer close(r.results)
		r.results <- h.execute(ctx, target, opts)
	}()

	return r
}

// Returns the unique identifier of this run.
func (r *execRun) ID() string {
	return r.id
}

// Blocks until the final result is available or the context is done.
func (r *execRun) Wait(ctx context.Context) (Result, error) {
	select {
	case result := <-r.results:
		return result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Returns the stream carrying the single final result.
func (r *execRun) Results() <-chan Result {
	return r.results
}

// Executes the target once via the toolchain CLI and reports the outcome.
//
// Builder output is forwarded line by line to the sink as it is produced.
// A non-zero exit is not an error at this layer; it becomes a failed
// [Result] and the caller decides whether that is fatal.
func (h *Host) execute(ctx context.Context, target Target, opts Options) Result {
	cmd := exec.CommandContext(ctx, h.binary(), h.arguments(target, opts)...)
	cmd.Dir = h.root
	cmd.Env = mergeEnv(os.Environ(), []string{
		"NG_CLI_ANALYTICS=false",
		"FORCE_COLOR=0",
	})

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{Error: err.Error()}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{Error: err.Error()}
	}

	if err := cmd.Start(); err != nil {
		h.emit(LevelFatal, "failed to start builder: %v", err)
		return Result{Error: err.Error()}
	}

	tail := newTail(errorTailLines)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		h.forwardLines(stdout, false, tail)
	}()
	go func() {
		defer wg.Done()
		h.forwardLines(stderr, true, tail)
	}()
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		msg := tail.String()
		if msg == "" {
			msg = err.Error()
		}
		return Result{Error: msg}
	}

	return Result{Success: true}
}

// Reads builder output line by line, classifying each line and emitting it
// to the sink. Error-level lines are also recorded in the tail so a failed
// run can report what went wrong.
func (h *Host) forwardLines(r io.Reader, stderr bool, tail *tail) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" {
			continue
		}

		level := classifyLine(line, stderr)
		if level >= LevelError {
			tail.add(line)
		}

		h.emit(level, "%s", line)
	}
}

// Retains the last n lines added to it.
type tail struct {
	mu    sync.Mutex
	limit int
	lines []string
}

// Creates a tail retaining at most limit lines.
func newTail(limit int) *tail {
	return &tail{limit: limit}
}

// Appends a line, discarding the oldest once the limit is reached.
func (t *tail) add(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = append(t.lines, line)
	if len(t.lines) > t.limit {
		t.lines = t.lines[len(t.lines)-t.limit:]
	}
}

// Returns the retained lines joined with newlines.
func (t *tail) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.lines, "\n")
}

// Merges override env vars on top of a base env slice.
func mergeEnv(base, overrides []string) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}
	for _, entry := range overrides {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}

	result := make([]string, 0, len(merged))
	for k, v := range merged {
		result = append(result, k+"="+v)
	}
	return result
}
