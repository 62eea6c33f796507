package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// A deployed service as described by its serverless.yml.
type Service struct {
	Name      string `yaml:"service"`   // Service name.
	UseDotenv bool   `yaml:"useDotenv"` // Whether to load a sibling .env file.
	Custom    Custom `yaml:"custom"`    // Per-plugin custom settings.

	// Absolute path to the service root (the directory containing the
	// configuration file). Not part of the YAML document.
	Path string `yaml:"-"`
}

// Per-plugin settings under the custom key.
type Custom struct {
	Angular *Config        `yaml:"angular"` // This plugin's settings.
	Webpack *WebpackConfig `yaml:"webpack"` // Companion bundler settings, consumed read-only.
}

// Loads a service configuration from the given serverless.yml path.
//
// The service root is the directory containing the file. When useDotenv is
// set, a sibling .env file is loaded into the process environment before
// returning, matching the host tool's own behavior. Existing environment
// variables are not overridden.
func Load(path string) (*Service, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var svc Service
	if err := yaml.Unmarshal(data, &svc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, abs, err)
	}

	svc.Path = filepath.Dir(abs)

	if svc.UseDotenv {
		if err := loadDotenv(svc.Path); err != nil {
			return nil, err
		}
	}

	return &svc, nil
}

// Returns the plugin settings, or a zero-value Config when the
// custom.angular block is absent.
func (s *Service) Angular() Config {
	if s.Custom.Angular == nil {
		return Config{}
	}
	return *s.Custom.Angular
}

// Returns the companion bundler settings and whether the custom.webpack
// block is present. Callers must treat absence as fatal when resolving the
// artifact destination; there is no fallback.
func (s *Service) Webpack() (WebpackConfig, bool) {
	if s.Custom.Webpack == nil {
		return WebpackConfig{}, false
	}
	return *s.Custom.Webpack, true
}

// Returns the dependency installation directory of the service.
func (s *Service) NodeModules() string {
	return filepath.Join(s.Path, "node_modules")
}

// Loads a .env file from the service root into the process environment.
//
// A missing .env file is not an error; the host tool treats it the same way.
func loadDotenv(root string) error {
	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	slog.Debug("dotenv loaded", "path", path)
	return nil
}
