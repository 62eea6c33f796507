package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// A parsed workspace configuration file.
type Workspace struct {
	Version  int                `json:"version"`  // Workspace schema version.
	Projects map[string]Project `json:"projects"` // Projects keyed by name.

	// Absolute path to the file the workspace was loaded from.
	Path string `json:"-"`
}

// A single project within a workspace.
type Project struct {
	Root        string            `json:"root"`        // Project root, relative to the workspace.
	SourceRoot  string            `json:"sourceRoot"`  // Source directory, relative to the workspace.
	ProjectType string            `json:"projectType"` // "application" or "library".
	Targets     map[string]Target `json:"targets"`     // Build targets keyed by name.

	// Legacy spelling of the target map. Merged into Targets on load.
	Architect map[string]Target `json:"architect"`
}

// A named, configurable unit of work within a project.
type Target struct {
	Builder        string                    `json:"builder"`        // Builder implementation identifier.
	Options        map[string]any            `json:"options"`        // Default builder options.
	Configurations map[string]map[string]any `json:"configurations"` // Named option overlays.
}

// Loads a workspace configuration from the given path.
//
// Read or parse failures are fatal; the plugin has no way to schedule a
// build target without a workspace.
func Load(path string) (*Workspace, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var ws Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, abs, err)
	}

	ws.Path = abs

	for name, project := range ws.Projects {
		if project.Targets == nil {
			project.Targets = project.Architect
		}
		project.Architect = nil
		ws.Projects[name] = project
	}

	return &ws, nil
}

// Returns the named project.
func (w *Workspace) Project(name string) (Project, error) {
	project, ok := w.Projects[name]
	if !ok {
		return Project{}, fmt.Errorf("%w: %q", ErrProjectNotFound, name)
	}
	return project, nil
}

// Returns the named target of the named project.
//
// Both the project and the target must exist; an unknown name is reported
// here rather than surfacing as an opaque failure inside the delegated
// builder.
func (w *Workspace) Target(project, target string) (Target, error) {
	p, err := w.Project(project)
	if err != nil {
		return Target{}, err
	}

	t, ok := p.Targets[target]
	if !ok {
		return Target{}, fmt.Errorf("%w: %q has no target %q", ErrTargetNotFound, project, target)
	}

	return t, nil
}

// Returns the project's source directory resolved against the given root,
// falling back to the project root when sourceRoot is unset.
func (p Project) SourceDir(root string) string {
	if p.SourceRoot != "" {
		return filepath.Join(root, filepath.FromSlash(p.SourceRoot))
	}
	return filepath.Join(root, filepath.FromSlash(p.Root))
}
