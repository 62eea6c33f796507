package service

// Default workspace configuration filename when configFile is not set.
const DefaultConfigFile = "angular.json"

// Default output subfolder, derived from the plugin identifier.
const DefaultOutputFolder = ".angular"

const (

	// Default working folder of the companion bundler.
	defaultOutputWorkFolder = ".webpack"

	// Default build folder of the companion bundler.
	defaultOutputBuildFolder = "service"
)

// Plugin settings read from the custom.angular block.
//
// All fields are optional except Project, which is validated lazily at
// build time. The struct is populated once when the service is loaded and
// never mutated afterwards.
type Config struct {
	BuildSystem     string `yaml:"buildSystem"`     // Overrides build-system auto-detection.
	OutputDirectory string `yaml:"outputDirectory"` // Overrides the default output subfolder name.
	ReloadHandler   bool   `yaml:"reloadHandler"`   // Enables watch mode during the development hook.
	ConfigFile      string `yaml:"configFile"`      // Overrides the default workspace configuration filename.
	Project         string `yaml:"project"`         // Identifier of the build target's owning project.
}

// Returns the workspace configuration filename, defaulted when unset.
func (c Config) WorkspaceFile() string {
	if c.ConfigFile != "" {
		return c.ConfigFile
	}
	return DefaultConfigFile
}

// Returns the output subfolder name, defaulted when unset.
func (c Config) OutputFolder() string {
	if c.OutputDirectory != "" {
		return c.OutputDirectory
	}
	return DefaultOutputFolder
}

// Companion bundler settings read from the custom.webpack block.
//
// Only the two folder names are consumed; the plugin never invokes the
// bundler itself.
type WebpackConfig struct {
	OutputWorkFolder  string `yaml:"outputWorkFolder"`  // Working folder relative to the service root.
	OutputBuildFolder string `yaml:"outputBuildFolder"` // Build folder under the working folder.
}

// Returns the working folder name, defaulted when unset.
func (w WebpackConfig) WorkFolder() string {
	if w.OutputWorkFolder != "" {
		return w.OutputWorkFolder
	}
	return defaultOutputWorkFolder
}

// Returns the build folder name, defaulted when unset.
func (w WebpackConfig) BuildFolder() string {
	if w.OutputBuildFolder != "" {
		return w.OutputBuildFolder
	}
	return defaultOutputBuildFolder
}
