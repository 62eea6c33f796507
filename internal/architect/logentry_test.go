package architect

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelFatal, "fatal"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		stderr bool
		want   Level
	}{
		{
			name: "webpack error marker",
			line: "ERROR in src/app/app.component.ts:4:12",
			want: LevelError,
		},
		{
			name: "error prefix",
			line: "Error: Could not find module",
			want: LevelError,
		},
		{
			name: "webpack warning marker",
			line: "WARNING in budgets: exceeded maximum",
			want: LevelWarn,
		},
		{
			name: "warning prefix",
			line: "Warning: bundle size",
			want: LevelWarn,
		},
		{
			name: "plain stdout is informational",
			line: "Build at: 2024-01-01T00:00:00Z - Hash: abc123",
			want: LevelInfo,
		},
		{
			name:   "plain stderr is a warning",
			line:   "something on stderr",
			stderr: true,
			want:   LevelWarn,
		},
		{
			name:   "error marker wins over stderr",
			line:   "ERROR in main.ts",
			stderr: true,
			want:   LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLine(tt.line, tt.stderr); got != tt.want {
				t.Fatalf("classifyLine(%q, %v) = %v, want %v", tt.line, tt.stderr, got, tt.want)
			}
		})
	}
}
