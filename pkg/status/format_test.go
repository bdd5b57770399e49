package status

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func disableColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

// 🧪 TestFormatFileResult tests the aligned per-file result line
func TestFormatFileResult(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name        string
		file        string
		errs        int
		warns       int
		wantPrefix  string
		wantStatus  string
		description string
	}{
		{
			name:        "clean_file",
			file:        "main.js",
			wantPrefix:  "✓",
			wantStatus:  "inlined",
			description: "a file without diagnostics shows the success symbol",
		},
		{
			name:        "file_with_warnings",
			file:        "vendor.js",
			warns:       2,
			wantPrefix:  "⚠",
			wantStatus:  "warnings",
			description: "warnings alone show the warning symbol",
		},
		{
			name:        "file_with_errors",
			file:        "chunk-7f3a.js",
			errs:        1,
			wantPrefix:  "✗",
			wantStatus:  "failed",
			description: "errors show the failure symbol",
		},
		{
			name:        "errors_outrank_warnings",
			file:        "main.js",
			errs:        1,
			warns:       5,
			wantPrefix:  "✗",
			wantStatus:  "failed",
			description: "the worst severity wins the line color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FormatFileResult(tt.file, tt.errs, tt.warns)

			assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", fileIndent)+tt.wantPrefix), tt.description)
			assert.Contains(t, line, tt.file, "line should name the file")
			assert.Contains(t, line, tt.wantStatus, "line should carry the status word")
		})
	}

	t.Run("long_names_are_truncated_from_the_left", func(t *testing.T) {
		file := "assets/generated/really/deep/tree/with/a/long/chunk-name.js"
		line := FormatFileResult(file, 0, 0)

		assert.Contains(t, line, "...", "truncated names keep an ellipsis")
		assert.Contains(t, line, "chunk-name.js", "the tail of the path survives truncation")
		assert.NotContains(t, line, "assets/generated", "the head of the path is dropped")
	})
}

// 🧪 TestFormatProgress tests the spinner progress text
func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		want  string
	}{
		{
			name:  "zero_of_zero",
			done:  0,
			total: 0,
			want:  "Inlining locales 0/0 (0%)",
		},
		{
			name:  "halfway",
			done:  5,
			total: 10,
			want:  "Inlining locales 5/10 (50%)",
		},
		{
			name:  "complete",
			done:  4,
			total: 4,
			want:  "Inlining locales 4/4 (100%)",
		},
		{
			name:  "done_without_total",
			done:  2,
			total: 0,
			want:  "Inlining locales 2/0 (100%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatProgress(tt.done, tt.total), "progress text should match")
		})
	}
}

// 🧪 TestFormatSummary tests the verdict line
func TestFormatSummary(t *testing.T) {
	disableColor(t)

	tests := []struct {
		name  string
		files int
		errs  int
		warns int
		want  string
	}{
		{
			name:  "clean_run",
			files: 3,
			want:  "3 files processed",
		},
		{
			name:  "single_file",
			files: 1,
			want:  "1 file processed",
		},
		{
			name:  "errors_only",
			files: 2,
			errs:  1,
			want:  "2 files processed, 1 error",
		},
		{
			name:  "warnings_only",
			files: 2,
			warns: 4,
			want:  "2 files processed, 4 warnings",
		},
		{
			name:  "errors_and_warnings",
			files: 5,
			errs:  2,
			warns: 1,
			want:  "5 files processed, 2 errors, 1 warning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSummary(tt.files, tt.errs, tt.warns), "summary should match")
		})
	}
}
