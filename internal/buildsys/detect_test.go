package buildsys

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scaffoldly/serverless-angular/internal/service"
)

// Creates a package directory under a dependency directory.
func installPackage(t *testing.T, nodeModules, pkg string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(nodeModules, filepath.FromSlash(pkg)), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		explicit  string
		installed []string
		want      System
		wantErr   error
	}{
		{
			name:     "explicit setting skips probing",
			explicit: "angular",
			want:     SystemAngular,
		},
		{
			name:     "explicit setting is case-insensitive",
			explicit: "Angular",
			want:     SystemAngular,
		},
		{
			name:     "explicit unknown system",
			explicit: "gulp",
			wantErr:  ErrUnsupported,
		},
		{
			name:      "marker package detected",
			installed: []string{"@angular-devkit/build-angular"},
			want:      SystemAngular,
		},
		{
			name:      "unrelated packages do not detect",
			installed: []string{"lodash", "@angular/core"},
			wantErr:   ErrUndetected,
		},
		{
			name:    "empty dependency directory",
			wantErr: ErrUndetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodeModules := filepath.Join(t.TempDir(), "node_modules")
			for _, pkg := range tt.installed {
				installPackage(t, nodeModules, pkg)
			}

			got, err := Detect(service.Config{BuildSystem: tt.explicit}, nodeModules)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Detect() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVerifyDependencies(t *testing.T) {
	tests := []struct {
		name        string
		installed   []string
		wantMissing []string
	}{
		{
			name:      "all required packages present",
			installed: []string{"@angular/compiler", "@angular/compiler-cli"},
		},
		{
			name:        "one package missing",
			installed:   []string{"@angular/compiler"},
			wantMissing: []string{"@angular/compiler-cli"},
		},
		{
			name:        "all packages missing",
			wantMissing: []string{"@angular/compiler", "@angular/compiler-cli"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodeModules := filepath.Join(t.TempDir(), "node_modules")
			for _, pkg := range tt.installed {
				installPackage(t, nodeModules, pkg)
			}

			err := VerifyDependencies(SystemAngular, nodeModules)

			if len(tt.wantMissing) == 0 {
				if err != nil {
					t.Fatalf("VerifyDependencies() error = %v", err)
				}
				return
			}

			if !errors.Is(err, ErrMissingDependencies) {
				t.Fatalf("VerifyDependencies() error = %v, want %v", err, ErrMissingDependencies)
			}
			for _, pkg := range tt.wantMissing {
				if !strings.Contains(err.Error(), pkg) {
					t.Errorf("error %q does not name missing package %q", err, pkg)
				}
			}
		})
	}
}

func TestVerifyDependenciesUnknownSystem(t *testing.T) {
	err := VerifyDependencies(System("gulp"), t.TempDir())
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("VerifyDependencies() error = %v, want %v", err, ErrUnsupported)
	}
}

func TestFor(t *testing.T) {
	strategy, err := For(SystemAngular, nil)
	if err != nil {
		t.Fatalf("For() error = %v", err)
	}
	if strategy.System() != SystemAngular {
		t.Fatalf("System() = %q, want %q", strategy.System(), SystemAngular)
	}

	if _, err := For(System("gulp"), nil); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("For() error = %v, want %v", err, ErrUnsupported)
	}
}
